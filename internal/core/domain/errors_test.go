package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrDocumentNotFound", ErrDocumentNotFound},
		{"ErrNoExtractableText", ErrNoExtractableText},
		{"ErrNoChunks", ErrNoChunks},
		{"ErrNoVectors", ErrNoVectors},
		{"ErrDimensionMismatch", ErrDimensionMismatch},
		{"ErrEmbeddingUnavailable", ErrEmbeddingUnavailable},
		{"ErrLLMUnavailable", ErrLLMUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrNoVectors_DistinctFromProviderErrors verifies that the
// configuration error kind never matches a provider error kind.
func TestErrNoVectors_DistinctFromProviderErrors(t *testing.T) {
	assert.True(t, errors.Is(ErrNoVectors, ErrNoVectors))
	assert.False(t, errors.Is(ErrNoVectors, ErrEmbeddingUnavailable))
	assert.False(t, errors.Is(ErrEmbeddingUnavailable, ErrNoVectors))
}

// TestErrors_Wrapping tests that wrapped sentinels survive errors.Is
func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("build index: %w", ErrNoVectors)
	assert.True(t, errors.Is(wrapped, ErrNoVectors))
	assert.False(t, errors.Is(wrapped, ErrNoChunks))
}

// Package textfile extracts page text from plain text documents.
// Form feed characters mark page boundaries; a file without them is a
// single page.
package textfile

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/custodia-labs/murshid/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.PageExtractor = (*Extractor)(nil)

// Extractor extracts page text from plain text files.
type Extractor struct{}

// New creates a plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor identifier.
func (e *Extractor) Name() string {
	return "textfile"
}

// Pages reads the file and splits it on form feed characters.
func (e *Extractor) Pages(_ context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	return strings.Split(string(data), "\f"), nil
}

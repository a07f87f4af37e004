package driven

import (
	"context"

	"github.com/custodia-labs/murshid/internal/core/domain"
)

// CorpusStore caches the chunked, embedded corpus between runs so an
// unchanged document does not have to be re-embedded at startup.
// The cache is keyed by the document fingerprint; a fingerprint change
// invalidates the cached corpus.
type CorpusStore interface {
	// Save persists the chunks and their embeddings under the fingerprint,
	// replacing any previously cached corpus.
	Save(ctx context.Context, fingerprint string, chunks []domain.Chunk, vectors [][]float32) error

	// Load returns the cached chunks and embeddings for the fingerprint.
	// Returns domain.ErrNotFound when no corpus is cached under it.
	Load(ctx context.Context, fingerprint string) ([]domain.Chunk, [][]float32, error)

	// Close releases resources.
	Close() error
}

package driving

import (
	"context"

	"github.com/custodia-labs/murshid/internal/core/domain"
)

// IngestService builds the retrievable corpus from the source document.
// Ingestion is a one-time, blocking startup operation; the service is not
// ready to answer questions until it completes.
type IngestService interface {
	// Ingest extracts, normalises, chunks and embeds the source document
	// and builds the vector index. Fatal on any startup error: the caller
	// must not serve queries after a failed ingest.
	Ingest(ctx context.Context) (*domain.Corpus, error)
}

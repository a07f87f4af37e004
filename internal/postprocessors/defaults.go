package postprocessors

import (
	"github.com/custodia-labs/murshid/internal/core/domain"
	"github.com/custodia-labs/murshid/internal/core/ports/driven"
	"github.com/custodia-labs/murshid/internal/postprocessors/semantic"
)

// DefaultPipeline builds the standard chunking pipeline: a single
// semantic chunker configured from the application settings.
//
// The settings service resolves the similarity threshold against its
// default before it reaches here, so the value is applied as-is:
// zero and negative thresholds are legal and mean "never split".
func DefaultPipeline(embedder driven.EmbeddingService, settings domain.ChunkerSettings) *Pipeline {
	opts := []semantic.Option{
		semantic.WithSimilarityThreshold(settings.SimilarityThreshold),
	}
	if settings.BatchSize > 0 {
		opts = append(opts, semantic.WithBatchSize(settings.BatchSize))
	}

	return NewPipeline(semantic.New(embedder, opts...))
}

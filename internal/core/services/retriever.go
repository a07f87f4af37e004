package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/murshid/internal/core/domain"
	"github.com/custodia-labs/murshid/internal/core/ports/driven"
	"github.com/custodia-labs/murshid/internal/logger"
)

// DefaultTopK is the default number of chunks retrieved per question.
const DefaultTopK = 3

// Retriever finds the chunks most relevant to a question.
//
// Retrieval is fail-soft: an embedding or index failure degrades to an
// empty result set instead of an error, and the caller proceeds with no
// context. Only the corpus being absent is a programming error.
type Retriever struct {
	embedder driven.EmbeddingService
	index    driven.VectorSearcher
	chunks   []domain.Chunk
	topK     int
}

// NewRetriever creates a retriever over the given corpus chunks and their
// index. topK values below 1 fall back to DefaultTopK.
func NewRetriever(
	embedder driven.EmbeddingService,
	index driven.VectorSearcher,
	chunks []domain.Chunk,
	topK int,
) *Retriever {
	if topK < 1 {
		topK = DefaultTopK
	}
	return &Retriever{
		embedder: embedder,
		index:    index,
		chunks:   chunks,
		topK:     topK,
	}
}

// Retrieve returns up to topK chunks ordered by descending similarity to
// the question. Provider failures return an empty slice, never an error.
func (r *Retriever) Retrieve(ctx context.Context, question string) []domain.SearchResult {
	question = strings.TrimSpace(question)
	if question == "" {
		return []domain.SearchResult{}
	}

	if r.embedder == nil || r.index == nil {
		logger.Warn("Retrieval unavailable: embedding or index missing")
		return []domain.SearchResult{}
	}

	embedding, err := r.embedder.Embed(ctx, question)
	if err != nil {
		logger.Warn("Question embedding failed, returning no context: %v", err)
		return []domain.SearchResult{}
	}

	hits, err := r.index.Search(ctx, embedding, r.topK)
	if err != nil {
		logger.Warn("Vector search failed, returning no context: %v", err)
		return []domain.SearchResult{}
	}

	results := make([]domain.SearchResult, 0, len(hits))
	for _, hit := range hits {
		if hit.Position < 0 || hit.Position >= len(r.chunks) {
			continue
		}
		results = append(results, domain.SearchResult{
			Chunk:      r.chunks[hit.Position],
			Similarity: domain.SimilarityFromDistance(hit.Distance),
		})
	}

	logger.Debug("Retrieved %d chunks for question", len(results))
	return results
}

package domain

// SearchResult represents a single retrieved chunk with its similarity
// to the query.
type SearchResult struct {
	// Chunk is the matched chunk.
	Chunk Chunk

	// Similarity is 1/(1+d) where d is the squared Euclidean distance
	// between the query and chunk embeddings. Strictly decreasing in d,
	// bounded in (0, 1].
	Similarity float64
}

// SimilarityFromDistance converts an index distance to a similarity score.
func SimilarityFromDistance(distance float64) float64 {
	return 1.0 / (1.0 + distance)
}

// ServiceStatus describes the state of a running service instance.
type ServiceStatus struct {
	// Ready is true once ingestion completed and queries can be served.
	Ready bool

	// DocumentPath is the ingested document location.
	DocumentPath string

	// ChunkCount is the number of indexed chunks.
	ChunkCount int

	// EmbeddingModel is the configured embedding model name.
	EmbeddingModel string

	// LLMModel is the configured generation model name.
	LLMModel string
}

// Answer is the final outcome of one pass through the answer pipeline.
type Answer struct {
	// Text is the generated answer (or a diagnostic string when the
	// generation provider failed).
	Text string

	// Sources are the retrieved chunks the answer was grounded on,
	// ordered by descending similarity.
	Sources []SearchResult

	// FollowUp is a clarifying question to show the user when the answer
	// was judged insufficient. Empty when no follow-up is needed.
	FollowUp string
}

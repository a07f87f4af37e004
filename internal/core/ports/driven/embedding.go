package driven

import "context"

// EmbeddingService generates vector embeddings from text.
// The embedding dimension is fixed corpus-wide: every vector an
// implementation returns must have the same length.
//
// Calls are single-attempt. Implementations must not retry internally;
// callers degrade per their own policy when a call fails.
//
// Implementations may include:
//   - Gemini (Google Generative Language embedding models)
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
//   - Ollama (nomic-embed-text, all-minilm)
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts in one request
	// where the provider supports it. The result is ordered like the input.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g., 768, 1536).
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

package driven

import "context"

// VectorSearcher answers nearest-neighbour queries over the chunk
// embeddings. The index behind it is built once at startup and is
// immutable afterwards, so implementations must be safe for concurrent
// read-only access without locking.
type VectorSearcher interface {
	// Search finds up to k nearest entries to the query vector by squared
	// Euclidean distance, ascending. Ties are broken by insertion order
	// (lower position first).
	Search(ctx context.Context, query []float32, k int) ([]VectorHit, error)

	// Dimensions returns the index dimension, fixed by the first vector
	// at build time.
	Dimensions() int

	// Len returns the number of indexed entries. Always equal to the
	// corpus chunk count after a successful build.
	Len() int
}

// VectorHit represents a nearest-neighbour search result.
type VectorHit struct {
	// Position is the chunk position the vector was inserted under.
	Position int

	// Distance is the squared Euclidean distance to the query.
	Distance float64
}

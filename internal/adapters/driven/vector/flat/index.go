// Package flat provides an exact nearest-neighbour index over a fixed set
// of embeddings, using brute-force squared Euclidean distance.
//
// The corpus is small (one document), so an exact flat scan is both
// simpler and more predictable than an approximate structure. The index
// is immutable after Build and safe for concurrent read-only access.
package flat

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/murshid/internal/core/domain"
	"github.com/custodia-labs/murshid/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorSearcher = (*Index)(nil)

// Index is a flat squared-L2 nearest-neighbour index.
type Index struct {
	dimensions int
	vectors    [][]float32
}

// Build creates an index over the given vectors, in insertion order.
// The index dimension is fixed by the first vector; every vector must
// share that length. Building with no vectors is a configuration error
// (domain.ErrNoVectors).
func Build(vectors [][]float32) (*Index, error) {
	if len(vectors) == 0 {
		return nil, domain.ErrNoVectors
	}

	dimensions := len(vectors[0])
	if dimensions == 0 {
		return nil, fmt.Errorf("%w: first vector is empty", domain.ErrNoVectors)
	}

	stored := make([][]float32, len(vectors))
	for i, v := range vectors {
		if len(v) != dimensions {
			return nil, fmt.Errorf("%w: vector %d has %d dimensions, index has %d",
				domain.ErrDimensionMismatch, i, len(v), dimensions)
		}
		// Copy so later mutation of the caller's slices cannot reach the index.
		stored[i] = append([]float32(nil), v...)
	}

	return &Index{
		dimensions: dimensions,
		vectors:    stored,
	}, nil
}

// Search finds up to k nearest entries to the query vector by squared
// Euclidean distance, ascending. Ties are broken by insertion order.
func (idx *Index) Search(_ context.Context, query []float32, k int) ([]driven.VectorHit, error) {
	if len(query) != idx.dimensions {
		return nil, fmt.Errorf("%w: query has %d dimensions, index has %d",
			domain.ErrDimensionMismatch, len(query), idx.dimensions)
	}
	if k <= 0 {
		return nil, nil
	}

	hits := make([]driven.VectorHit, len(idx.vectors))
	for i, v := range idx.vectors {
		hits[i] = driven.VectorHit{
			Position: i,
			Distance: squaredL2(query, v),
		}
	}

	// Stable sort keeps insertion order for equal distances.
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Distance < hits[b].Distance
	})

	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k], nil
}

// Dimensions returns the index dimension.
func (idx *Index) Dimensions() int {
	return idx.dimensions
}

// Len returns the number of indexed vectors.
func (idx *Index) Len() int {
	return len(idx.vectors)
}

// squaredL2 computes the squared Euclidean distance between two vectors
// of equal length.
func squaredL2(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

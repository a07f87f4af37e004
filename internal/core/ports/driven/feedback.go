package driven

import (
	"context"

	"github.com/custodia-labs/murshid/internal/core/domain"
)

// FeedbackStore persists user ratings of past answers.
// The store is append-only: records are never mutated or deleted.
type FeedbackStore interface {
	// Append persists a record synchronously before returning.
	// Appends are serialised; concurrent submissions must not collide.
	Append(ctx context.Context, record domain.FeedbackRecord) error

	// All returns every record in persisted (chronological) order.
	All(ctx context.Context) ([]domain.FeedbackRecord, error)

	// Negatives returns the records rating an answer as unsatisfactory,
	// in persisted order.
	Negatives(ctx context.Context) ([]domain.FeedbackRecord, error)
}

package driving

import (
	"context"

	"github.com/custodia-labs/murshid/internal/core/domain"
)

// FeedbackService records and lists user ratings of past answers.
type FeedbackService interface {
	// Submit validates and persists a feedback record.
	Submit(ctx context.Context, record domain.FeedbackRecord) error

	// List returns all persisted records in chronological order.
	List(ctx context.Context) ([]domain.FeedbackRecord, error)
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/murshid/internal/core/domain"
	"github.com/custodia-labs/murshid/internal/core/ports/driven"
	"github.com/custodia-labs/murshid/internal/core/ports/driving"
	"github.com/custodia-labs/murshid/internal/logger"
)

// Ensure FeedbackService implements the interface.
var _ driving.FeedbackService = (*FeedbackService)(nil)

// FeedbackService records user ratings of past answers.
type FeedbackService struct {
	store driven.FeedbackStore
}

// NewFeedbackService creates a feedback service.
func NewFeedbackService(store driven.FeedbackStore) *FeedbackService {
	return &FeedbackService{store: store}
}

// Submit validates and persists a feedback record. The record is written
// synchronously; when Submit returns nil the record is durable.
func (s *FeedbackService) Submit(ctx context.Context, record domain.FeedbackRecord) error {
	if record.Query == "" {
		return fmt.Errorf("feedback query is empty: %w", domain.ErrInvalidInput)
	}
	if record.Answer == "" {
		return fmt.Errorf("feedback answer is empty: %w", domain.ErrInvalidInput)
	}

	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	if err := s.store.Append(ctx, record); err != nil {
		return fmt.Errorf("append feedback: %w", err)
	}

	logger.Debug("Feedback recorded: helpful=%t", record.Helpful)
	return nil
}

// List returns all persisted records in chronological order.
func (s *FeedbackService) List(ctx context.Context) ([]domain.FeedbackRecord, error) {
	records, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return records, nil
}

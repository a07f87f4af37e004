package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/murshid/internal/core/domain"
)

func TestSubmit_PersistsRecord(t *testing.T) {
	store := &mockFeedbackStore{}
	s := NewFeedbackService(store)

	record := domain.FeedbackRecord{
		Query:   "سؤال",
		Answer:  "إجابة",
		Helpful: true,
		Comment: "ممتاز",
	}

	err := s.Submit(context.Background(), record)
	require.NoError(t, err)
	require.Len(t, store.records, 1)
	assert.Equal(t, "سؤال", store.records[0].Query)
	assert.False(t, store.records[0].Timestamp.IsZero(), "zero timestamp must be filled in")
}

func TestSubmit_KeepsExplicitTimestamp(t *testing.T) {
	store := &mockFeedbackStore{}
	s := NewFeedbackService(store)

	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	err := s.Submit(context.Background(), domain.FeedbackRecord{
		Query:     "سؤال",
		Answer:    "إجابة",
		Timestamp: ts,
	})
	require.NoError(t, err)
	assert.Equal(t, ts, store.records[0].Timestamp)
}

func TestSubmit_ValidatesInput(t *testing.T) {
	s := NewFeedbackService(&mockFeedbackStore{})

	err := s.Submit(context.Background(), domain.FeedbackRecord{Answer: "إجابة"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = s.Submit(context.Background(), domain.FeedbackRecord{Query: "سؤال"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmit_StoreFailurePropagates(t *testing.T) {
	s := NewFeedbackService(&mockFeedbackStore{err: errors.New("disk full")})

	err := s.Submit(context.Background(), domain.FeedbackRecord{Query: "سؤال", Answer: "إجابة"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "append feedback")
}

func TestList_ReturnsAllRecords(t *testing.T) {
	store := &mockFeedbackStore{records: []domain.FeedbackRecord{
		negativeRecord(1),
		negativeRecord(2),
	}}
	s := NewFeedbackService(store)

	records, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "سؤال 1", records[0].Query)
	assert.Equal(t, "سؤال 2", records[1].Query)
}

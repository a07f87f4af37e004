package cli

import (
	"context"

	"github.com/custodia-labs/murshid/internal/core/domain"
)

// mockQueryService is a test double for driving.QueryService and
// driving.StatusService.
type mockQueryService struct {
	answer *domain.Answer
	err    error
	asked  []string
}

func (m *mockQueryService) Ask(_ context.Context, question string) (*domain.Answer, error) {
	m.asked = append(m.asked, question)
	if m.err != nil {
		return nil, m.err
	}
	return m.answer, nil
}

func (m *mockQueryService) Status(_ context.Context) domain.ServiceStatus {
	return domain.ServiceStatus{Ready: true}
}

// mockFeedbackService is a test double for driving.FeedbackService.
type mockFeedbackService struct {
	records   []domain.FeedbackRecord
	submitErr error
	listErr   error
}

func (m *mockFeedbackService) Submit(_ context.Context, record domain.FeedbackRecord) error {
	if m.submitErr != nil {
		return m.submitErr
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockFeedbackService) List(_ context.Context) ([]domain.FeedbackRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.records, nil
}

// setupTestServices installs mock services and returns a cleanup func.
func setupTestServices(query *mockQueryService, feedback *mockFeedbackService) func() {
	oldQuery := queryService
	oldStatus := statusService
	oldFeedback := feedbackService

	queryService = query
	statusService = query
	feedbackService = feedback

	return func() {
		queryService = oldQuery
		statusService = oldStatus
		feedbackService = oldFeedback
	}
}

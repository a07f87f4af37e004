package driving

import (
	"context"

	"github.com/custodia-labs/murshid/internal/core/domain"
)

// QueryService answers questions against the ingested document.
type QueryService interface {
	// Ask runs the question through the full answer pipeline and returns
	// the answer, its sources, and an optional follow-up question.
	Ask(ctx context.Context, question string) (*domain.Answer, error)
}

// StatusService reports service readiness for the status endpoint.
type StatusService interface {
	// Status returns the current service status.
	Status(ctx context.Context) domain.ServiceStatus
}

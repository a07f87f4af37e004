package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/murshid/internal/core/domain"
	"github.com/custodia-labs/murshid/internal/core/ports/driven"
	"github.com/custodia-labs/murshid/internal/core/ports/driving"
	"github.com/custodia-labs/murshid/internal/logger"
)

// Ensure QueryService implements the interfaces.
var (
	_ driving.QueryService  = (*QueryService)(nil)
	_ driving.StatusService = (*QueryService)(nil)
)

// feedbackNotesLimit is the number of most recent negative comments the
// analysis stage attaches to the pipeline state.
const feedbackNotesLimit = 3

// pipelineStage transforms the pipeline state. Stages never fail the
// pipeline: degraded collaborators shrink the state, they do not abort it.
type pipelineStage func(ctx context.Context, state domain.PipelineState) domain.PipelineState

// QueryService answers questions by folding the pipeline state through a
// fixed sequence of stages: load context, analyze feedback, generate the
// answer, decide on a follow-up. The stage order is linear and static.
type QueryService struct {
	retriever *Retriever
	composer  *PromptComposer
	feedback  driven.FeedbackStore
	status    domain.ServiceStatus
	stages    []pipelineStage
}

// NewQueryService creates a query service over an ingested corpus.
// The status snapshot describes the corpus the service answers from.
func NewQueryService(
	retriever *Retriever,
	composer *PromptComposer,
	feedback driven.FeedbackStore,
	status domain.ServiceStatus,
) *QueryService {
	s := &QueryService{
		retriever: retriever,
		composer:  composer,
		feedback:  feedback,
		status:    status,
	}
	s.stages = []pipelineStage{
		s.loadContext,
		s.analyzeFeedback,
		s.generateAnswer,
		s.generateFollowUp,
	}
	return s
}

// Ask runs the question through the pipeline and returns the answer.
func (s *QueryService) Ask(ctx context.Context, question string) (*domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("empty question: %w", domain.ErrInvalidInput)
	}

	logger.Section("Answer Pipeline")
	logger.Debug("Question: %q", question)

	state := domain.PipelineState{Question: question}
	for _, stage := range s.stages {
		state = stage(ctx, state)
	}

	return &domain.Answer{
		Text:     state.AnswerText,
		Sources:  state.Sources,
		FollowUp: state.FollowUp,
	}, nil
}

// Status returns the service status snapshot.
func (s *QueryService) Status(_ context.Context) domain.ServiceStatus {
	return s.status
}

// loadContext retrieves the most relevant chunks and joins their text
// into the generation context. Retrieval failures leave the context
// empty; the pipeline continues.
func (s *QueryService) loadContext(ctx context.Context, state domain.PipelineState) domain.PipelineState {
	results := s.retriever.Retrieve(ctx, state.Question)

	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, r.Chunk.Content)
	}

	logger.Debug("Context: %d chunks", len(results))
	return state.WithContext(strings.Join(parts, "\n"), results)
}

// analyzeFeedback attaches the most recent negative comments to the
// state. The notes are informational; the composer reads its own
// feedback window independently.
func (s *QueryService) analyzeFeedback(ctx context.Context, state domain.PipelineState) domain.PipelineState {
	if s.feedback == nil {
		return state.WithFeedbackNotes(nil)
	}

	negatives, err := s.feedback.Negatives(ctx)
	if err != nil {
		logger.Warn("Feedback analysis failed: %v", err)
		return state.WithFeedbackNotes(nil)
	}

	start := len(negatives) - feedbackNotesLimit
	if start < 0 {
		start = 0
	}

	notes := make([]string, 0, len(negatives)-start)
	for _, record := range negatives[start:] {
		notes = append(notes, record.Comment)
	}

	return state.WithFeedbackNotes(notes)
}

// generateAnswer produces the answer text via the composer. Generation
// failures surface as a diagnostic answer, never as a pipeline error.
func (s *QueryService) generateAnswer(ctx context.Context, state domain.PipelineState) domain.PipelineState {
	return state.WithAnswer(s.composer.Answer(ctx, state.Question, state.Context))
}

// generateFollowUp attaches the fixed clarifying question when the
// answer is a refusal or too short to be useful.
func (s *QueryService) generateFollowUp(_ context.Context, state domain.PipelineState) domain.PipelineState {
	if domain.NeedsFollowUp(state.AnswerText) {
		logger.Debug("Answer judged insufficient, attaching follow-up")
		return state.WithFollowUp(domain.FollowUpQuestion)
	}
	return state
}

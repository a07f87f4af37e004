package domain

import "strings"

// RefusalPhrase is the fixed phrase the model is instructed to answer with
// when the supplied context is insufficient.
const RefusalPhrase = "لا معلومات متاحة"

// FollowUpQuestion is the fixed clarifying question shown when an answer
// is judged insufficient.
const FollowUpQuestion = "هل ترغب في توضيح إضافي أو إعادة صياغة السؤال؟"

// MinAnswerTokens is the whitespace-token count below which an answer is
// considered too short and triggers a follow-up.
const MinAnswerTokens = 30

// PipelineState is the per-question record folded through the answer
// pipeline. Stages never mutate it in place; each stage returns an
// extended copy.
type PipelineState struct {
	// Question is the user's question. Set before the pipeline runs.
	Question string

	// Context is the newline-joined text of the retrieved chunks.
	Context string

	// Sources are the retrieval results the context was built from.
	Sources []SearchResult

	// FeedbackNotes holds the comments of the most recent negative
	// feedback records, informational only.
	FeedbackNotes []string

	// AnswerText is the generated answer.
	AnswerText string

	// FollowUp is the clarifying question, empty when none is needed.
	FollowUp string
}

// WithContext returns a copy of the state with retrieval results attached.
func (s PipelineState) WithContext(context string, sources []SearchResult) PipelineState {
	s.Context = context
	s.Sources = sources
	return s
}

// WithFeedbackNotes returns a copy of the state with feedback notes attached.
func (s PipelineState) WithFeedbackNotes(notes []string) PipelineState {
	s.FeedbackNotes = notes
	return s
}

// WithAnswer returns a copy of the state with the generated answer attached.
func (s PipelineState) WithAnswer(answer string) PipelineState {
	s.AnswerText = answer
	return s
}

// WithFollowUp returns a copy of the state with a follow-up attached.
func (s PipelineState) WithFollowUp(followUp string) PipelineState {
	s.FollowUp = followUp
	return s
}

// NeedsFollowUp reports whether an answer warrants the fixed clarifying
// question: it contains the refusal phrase, or it is shorter than
// MinAnswerTokens whitespace-separated tokens.
func NeedsFollowUp(answer string) bool {
	if strings.Contains(answer, RefusalPhrase) {
		return true
	}
	return len(strings.Fields(answer)) < MinAnswerTokens
}

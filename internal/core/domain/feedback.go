package domain

import "time"

// FeedbackRecord is a user rating of a past answer.
// Records are append-only: once persisted they are never mutated or deleted.
type FeedbackRecord struct {
	// Query is the question the answer was produced for.
	Query string

	// Answer is the answer that was rated.
	Answer string

	// Helpful is the rating. False marks the answer as unsatisfactory.
	Helpful bool

	// Comment is an optional free-text note from the reviewer.
	Comment string

	// Timestamp is when the feedback was submitted.
	Timestamp time.Time
}

// IsNegative returns true if the record rates the answer as unsatisfactory.
func (r FeedbackRecord) IsNegative() bool {
	return !r.Helpful
}

// Package interview owns the interview session lifecycle: creation,
// sequential question delivery, per-answer evaluation, completion with
// weighted aggregation, and single-question retry with recomputation.
package interview

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidInput indicates a malformed or out-of-range argument, rejected
// before any side effect.
type ErrInvalidInput struct {
	Field   string
	Message string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a referenced session, question, resume or candidate
// is absent.
type ErrNotFound struct {
	Kind string
	ID   uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ErrForbidden indicates an ownership mismatch between the caller and the
// referenced entity.
type ErrForbidden struct{}

func (e *ErrForbidden) Error() string {
	return "session does not belong to caller"
}

// ErrAlreadyAnswered indicates a duplicate submission against a question
// that already has an answer. The normal flow is strictly forward-only.
type ErrAlreadyAnswered struct {
	QuestionID uuid.UUID
}

func (e *ErrAlreadyAnswered) Error() string {
	return fmt.Sprintf("question already answered: %s", e.QuestionID)
}

// ErrAlreadyCompleted indicates an operation against a completed session.
type ErrAlreadyCompleted struct {
	SessionID uuid.UUID
}

func (e *ErrAlreadyCompleted) Error() string {
	return fmt.Sprintf("session already completed: %s", e.SessionID)
}

// ErrQuotaExceeded indicates the candidate's interview-attempt counter has
// reached their tier limit. Recoverable by upgrade.
type ErrQuotaExceeded struct {
	Count int
	Max   int
}

func (e *ErrQuotaExceeded) Error() string {
	return fmt.Sprintf("interview limit reached: %d of %d used", e.Count, e.Max)
}

// ErrIncompleteSession indicates completion was attempted with no scorable
// questions.
type ErrIncompleteSession struct {
	SessionID uuid.UUID
}

func (e *ErrIncompleteSession) Error() string {
	return fmt.Sprintf("session has no scored questions: %s", e.SessionID)
}

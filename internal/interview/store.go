package interview

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/types"
)

// Store is the persistence contract the session service requires. Lookups
// return (nil, nil) when the entity does not exist; the service translates
// that into the user-visible NotFound error.
type Store interface {
	GetCandidate(ctx context.Context, id uuid.UUID) (*types.Candidate, error)
	// IncrementInterviewCount adds one to the candidate's lifetime counter.
	// Called exactly once per completed session.
	IncrementInterviewCount(ctx context.Context, candidateID uuid.UUID) error
	// ConfidenceScores returns the confidence scores of all prior recorded
	// answers for a candidate, used to select question difficulty.
	ConfidenceScores(ctx context.Context, candidateID uuid.UUID) ([]int, error)

	GetResume(ctx context.Context, id uuid.UUID) (*types.ResumeDocument, error)

	CreateSession(ctx context.Context, session *types.Session) error
	GetSession(ctx context.Context, id uuid.UUID) (*types.Session, error)
	UpdateSession(ctx context.Context, session *types.Session) error
	DeleteSession(ctx context.Context, id uuid.UUID) error
	ListSessions(ctx context.Context, candidateID uuid.UUID) ([]types.Session, error)
	// LatestCompletedSession returns the most recently completed session for
	// a candidate, or (nil, nil) if there is none.
	LatestCompletedSession(ctx context.Context, candidateID uuid.UUID) (*types.Session, error)

	CreateQuestions(ctx context.Context, questions []types.Question) error
	GetQuestion(ctx context.Context, id uuid.UUID) (*types.Question, error)
	UpdateQuestion(ctx context.Context, question *types.Question) error
	ListQuestions(ctx context.Context, sessionID uuid.UUID) ([]types.Question, error)
	// NextUnanswered returns the lowest-order unanswered question in a
	// session, or (nil, nil) when every question has been answered.
	NextUnanswered(ctx context.Context, sessionID uuid.UUID) (*types.Question, error)
}

package interview

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/types"
)

// Review is the detailed view of a completed session.
type Review struct {
	Session   *types.Session   `json:"session"`
	Questions []types.Question `json:"questions"`
	Readiness string           `json:"readiness_status"`
	Color     string           `json:"color"`
}

// GetReview returns the full review of a completed session with every
// question, answer and evaluation. Sessions still in progress cannot be
// reviewed.
func (s *Service) GetReview(ctx context.Context, candidateID, sessionID uuid.UUID) (*Review, error) {
	session, err := s.ownedSession(ctx, candidateID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != types.StatusCompleted {
		return nil, &ErrInvalidInput{Field: "session", Message: "session is not completed yet"}
	}

	questions, err := s.store.ListQuestions(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	return &Review{
		Session:   session,
		Questions: questions,
		Readiness: session.ReadinessStatus(),
		Color:     session.ScoreColor(),
	}, nil
}

// History returns all of a candidate's sessions, most recent first.
func (s *Service) History(ctx context.Context, candidateID uuid.UUID) ([]types.Session, error) {
	sessions, err := s.store.ListSessions(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// Delete removes a session and all of its questions.
func (s *Service) Delete(ctx context.Context, candidateID, sessionID uuid.UUID) error {
	if _, err := s.ownedSession(ctx, candidateID, sessionID); err != nil {
		return err
	}
	if err := s.store.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *Service) ownedSession(ctx context.Context, candidateID, sessionID uuid.UUID) (*types.Session, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, &ErrNotFound{Kind: "session", ID: sessionID}
	}
	if session.CandidateID != candidateID {
		return nil, &ErrForbidden{}
	}
	return session, nil
}

package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/interview-coach/internal/types"
)

const sessionColumns = `id, candidate_id, resume_id, type, language, status,
	total_questions, questions_answered,
	overall_score, technical_score, communication_score, confidence_score, star_score,
	feedback, created_at, started_at, completed_at, duration_seconds`

// CreateSession inserts a session record.
func (db *DB) CreateSession(ctx context.Context, s *types.Session) error {
	feedback, err := feedbackJSON(s.Feedback)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO sessions (`+sessionColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		s.ID, s.CandidateID, s.ResumeID, s.Type, s.Language, s.Status,
		s.TotalQuestions, s.QuestionsAnswered,
		s.OverallScore, s.TechnicalScore, s.CommunicationScore, s.ConfidenceScore, s.StarScore,
		feedback, s.CreatedAt, s.StartedAt, s.CompletedAt, s.DurationSeconds,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// UpdateSession writes the mutable session fields back to storage.
func (db *DB) UpdateSession(ctx context.Context, s *types.Session) error {
	feedback, err := feedbackJSON(s.Feedback)
	if err != nil {
		return err
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE sessions SET
			status = $1, questions_answered = $2,
			overall_score = $3, technical_score = $4, communication_score = $5,
			confidence_score = $6, star_score = $7,
			feedback = $8, completed_at = $9, duration_seconds = $10
		 WHERE id = $11`,
		s.Status, s.QuestionsAnswered,
		s.OverallScore, s.TechnicalScore, s.CommunicationScore,
		s.ConfidenceScore, s.StarScore,
		feedback, s.CompletedAt, s.DurationSeconds,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session not found: %s", s.ID)
	}
	return nil
}

// GetSession retrieves a session by ID. Returns (nil, nil) when absent.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID) (*types.Session, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE id = $1`, id)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// DeleteSession removes a session; its questions cascade.
func (db *DB) DeleteSession(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session not found: %s", id)
	}
	return nil
}

// ListSessions retrieves all sessions for a candidate, most recent first.
func (db *DB) ListSessions(ctx context.Context, candidateID uuid.UUID) ([]types.Session, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+sessionColumns+` FROM sessions
		 WHERE candidate_id = $1 ORDER BY created_at DESC`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []types.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

// LatestCompletedSession returns the most recently completed session for a
// candidate, or (nil, nil) when there is none.
func (db *DB) LatestCompletedSession(ctx context.Context, candidateID uuid.UUID) (*types.Session, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM sessions
		 WHERE candidate_id = $1 AND status = $2
		 ORDER BY completed_at DESC LIMIT 1`,
		candidateID, types.StatusCompleted,
	)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest completed session: %w", err)
	}
	return s, nil
}

// scanSession reads one session row. The feedback column is stored as JSON.
func scanSession(row pgx.Row) (*types.Session, error) {
	var s types.Session
	var feedback []byte
	err := row.Scan(
		&s.ID, &s.CandidateID, &s.ResumeID, &s.Type, &s.Language, &s.Status,
		&s.TotalQuestions, &s.QuestionsAnswered,
		&s.OverallScore, &s.TechnicalScore, &s.CommunicationScore, &s.ConfidenceScore, &s.StarScore,
		&feedback, &s.CreatedAt, &s.StartedAt, &s.CompletedAt, &s.DurationSeconds,
	)
	if err != nil {
		return nil, err
	}
	if len(feedback) > 0 {
		s.Feedback = &types.FeedbackSummary{}
		if err := json.Unmarshal(feedback, s.Feedback); err != nil {
			return nil, fmt.Errorf("failed to decode feedback: %w", err)
		}
	}
	return &s, nil
}

func feedbackJSON(f *types.FeedbackSummary) ([]byte, error) {
	if f == nil {
		return nil, nil
	}
	payload, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal feedback: %w", err)
	}
	return payload, nil
}

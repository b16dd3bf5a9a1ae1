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

const questionColumns = `id, session_id, question_order, text,
	answer, time_taken_seconds, score, evaluation, asked_at, answered_at`

// CreateQuestions inserts a session's question set in one transaction so a
// partially materialized session is never visible.
func (db *DB) CreateQuestions(ctx context.Context, questions []types.Question) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	for _, q := range questions {
		evaluation, err := evaluationJSON(q.Evaluation)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO questions (`+questionColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			q.ID, q.SessionID, q.Order, q.Text,
			q.Answer, q.TimeTakenSeconds, q.Score, evaluation, q.AskedAt, q.AnsweredAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create question %d: %w", q.Order, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit questions: %w", err)
	}
	return nil
}

// GetQuestion retrieves a question by ID. Returns (nil, nil) when absent.
func (db *DB) GetQuestion(ctx context.Context, id uuid.UUID) (*types.Question, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE id = $1`, id)
	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return q, nil
}

// UpdateQuestion writes the answer, score and evaluation back to storage.
func (db *DB) UpdateQuestion(ctx context.Context, q *types.Question) error {
	evaluation, err := evaluationJSON(q.Evaluation)
	if err != nil {
		return err
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE questions SET
			answer = $1, time_taken_seconds = $2, score = $3, evaluation = $4, answered_at = $5
		 WHERE id = $6`,
		q.Answer, q.TimeTakenSeconds, q.Score, evaluation, q.AnsweredAt, q.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question not found: %s", q.ID)
	}
	return nil
}

// ListQuestions retrieves a session's questions in delivery order.
func (db *DB) ListQuestions(ctx context.Context, sessionID uuid.UUID) ([]types.Question, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+questionColumns+` FROM questions
		 WHERE session_id = $1 ORDER BY question_order ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var questions []types.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, *q)
	}
	return questions, rows.Err()
}

// NextUnanswered returns the lowest-order unanswered question in a session,
// or (nil, nil) when every question has been answered.
func (db *DB) NextUnanswered(ctx context.Context, sessionID uuid.UUID) (*types.Question, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+questionColumns+` FROM questions
		 WHERE session_id = $1 AND answer IS NULL
		 ORDER BY question_order ASC LIMIT 1`,
		sessionID,
	)
	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get next question: %w", err)
	}
	return q, nil
}

func scanQuestion(row pgx.Row) (*types.Question, error) {
	var q types.Question
	var evaluation []byte
	err := row.Scan(
		&q.ID, &q.SessionID, &q.Order, &q.Text,
		&q.Answer, &q.TimeTakenSeconds, &q.Score, &evaluation, &q.AskedAt, &q.AnsweredAt,
	)
	if err != nil {
		return nil, err
	}
	if len(evaluation) > 0 {
		q.Evaluation = &types.Evaluation{}
		if err := json.Unmarshal(evaluation, q.Evaluation); err != nil {
			return nil, fmt.Errorf("failed to decode evaluation: %w", err)
		}
	}
	return &q, nil
}

func evaluationJSON(e *types.Evaluation) ([]byte, error) {
	if e == nil {
		return nil, nil
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal evaluation: %w", err)
	}
	return payload, nil
}

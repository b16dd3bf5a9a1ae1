package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/interview-coach/internal/types"
)

// GetCandidate retrieves a candidate by ID. Returns (nil, nil) when absent.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*types.Candidate, error) {
	var c types.Candidate
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, tier, interview_count, max_interviews, created_at
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Tier, &c.InterviewCount, &c.MaxInterviews, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return &c, nil
}

// CreateCandidate inserts a candidate record.
func (db *DB) CreateCandidate(ctx context.Context, c *types.Candidate) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO candidates (id, name, tier, interview_count, max_interviews, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Tier, c.InterviewCount, c.MaxInterviews, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

// IncrementInterviewCount adds one to the candidate's lifetime counter.
func (db *DB) IncrementInterviewCount(ctx context.Context, candidateID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE candidates SET interview_count = interview_count + 1 WHERE id = $1`,
		candidateID,
	)
	if err != nil {
		return fmt.Errorf("failed to increment interview count: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", candidateID)
	}
	return nil
}

// ConfidenceScores returns the confidence scores of a candidate's recorded
// video answers, oldest first.
func (db *DB) ConfidenceScores(ctx context.Context, candidateID uuid.UUID) ([]int, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT confidence_score FROM video_answers
		 WHERE candidate_id = $1 AND confidence_score IS NOT NULL
		 ORDER BY created_at ASC`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list confidence scores: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("failed to scan confidence score: %w", err)
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

// RecordVideoAnswer stores the face-analysis outcome of a video answer
// together with its mapped confidence score.
func (db *DB) RecordVideoAnswer(ctx context.Context, candidateID uuid.UUID, totalFrames, framesWithFace int, facePercentage float64, confidenceScore int) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO video_answers (id, candidate_id, total_frames, frames_with_face, face_percentage, confidence_score, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
		uuid.New(), candidateID, totalFrames, framesWithFace, facePercentage, confidenceScore,
	)
	if err != nil {
		return fmt.Errorf("failed to record video answer: %w", err)
	}
	return nil
}

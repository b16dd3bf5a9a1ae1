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

// CreateResume inserts a resume document. The structured parse, profile and
// scoring result are stored as JSON.
func (db *DB) CreateResume(ctx context.Context, r *types.ResumeDocument) error {
	sections, err := json.Marshal(r.Sections)
	if err != nil {
		return fmt.Errorf("failed to marshal sections: %w", err)
	}
	profile, err := json.Marshal(r.Profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	var result []byte
	if r.Result != nil {
		if result, err = json.Marshal(r.Result); err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resumes (id, candidate_id, text, sections, profile, result, parent_id, created_at, scored_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		r.ID, r.CandidateID, r.Text, sections, profile, result, r.ParentID, r.CreatedAt, r.ScoredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}
	return nil
}

// GetResume retrieves a resume by ID. Returns (nil, nil) when absent.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*types.ResumeDocument, error) {
	var r types.ResumeDocument
	var sections, profile, result []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, candidate_id, text, sections, profile, result, parent_id, created_at, scored_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.CandidateID, &r.Text, &sections, &profile, &result, &r.ParentID, &r.CreatedAt, &r.ScoredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := json.Unmarshal(sections, &r.Sections); err != nil {
		return nil, fmt.Errorf("failed to decode sections: %w", err)
	}
	if err := json.Unmarshal(profile, &r.Profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if len(result) > 0 {
		r.Result = &types.AtsResult{}
		if err := json.Unmarshal(result, r.Result); err != nil {
			return nil, fmt.Errorf("failed to decode result: %w", err)
		}
	}
	return &r, nil
}

// UpdateResumeResult stores a recomputed scoring result in place. The
// resume text itself is immutable.
func (db *DB) UpdateResumeResult(ctx context.Context, id uuid.UUID, result *types.AtsResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE resumes SET result = $1, scored_at = NOW() WHERE id = $2`,
		payload, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update resume result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}

// LatestResumeProfile returns the profile of the candidate's most recent
// original (non-variant) resume, or (nil, nil) when there is none.
func (db *DB) LatestResumeProfile(ctx context.Context, candidateID uuid.UUID) (*types.ResumeProfile, error) {
	var profile []byte
	err := db.pool.QueryRow(ctx,
		`SELECT profile FROM resumes
		 WHERE candidate_id = $1 AND parent_id IS NULL
		 ORDER BY created_at DESC LIMIT 1`,
		candidateID,
	).Scan(&profile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume profile: %w", err)
	}

	var p types.ResumeProfile
	if err := json.Unmarshal(profile, &p); err != nil {
		return nil, fmt.Errorf("failed to decode resume profile: %w", err)
	}
	return &p, nil
}

package ranking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-coach/internal/types"
)

// maxConcurrentRanks bounds the parallel store lookups when ranking a
// candidate pool.
const maxConcurrentRanks = 8

// Store is the persistence contract the ranker requires.
type Store interface {
	// LatestResumeProfile returns the candidate's most recent resume
	// profile, or (nil, nil) if the candidate has no resume.
	LatestResumeProfile(ctx context.Context, candidateID uuid.UUID) (*types.ResumeProfile, error)
	// LatestCompletedSession returns the candidate's most recently
	// completed session, or (nil, nil) if there is none.
	LatestCompletedSession(ctx context.Context, candidateID uuid.UUID) (*types.Session, error)
}

// Ranker ranks candidate pools against the store.
type Ranker struct {
	store Store
}

// NewRanker creates a Ranker backed by the given store.
func NewRanker(store Store) *Ranker {
	return &Ranker{store: store}
}

// RankCandidate scores a single candidate from stored data.
func (r *Ranker) RankCandidate(ctx context.Context, candidateID uuid.UUID) (Rank, error) {
	profile, err := r.store.LatestResumeProfile(ctx, candidateID)
	if err != nil {
		return Rank{}, fmt.Errorf("failed to load resume profile: %w", err)
	}
	latest, err := r.store.LatestCompletedSession(ctx, candidateID)
	if err != nil {
		return Rank{}, fmt.Errorf("failed to load latest session: %w", err)
	}
	return ScoreCandidate(candidateID, profile, latest), nil
}

// RankCandidates scores a pool of candidates concurrently, preserving input
// order in the result.
func (r *Ranker) RankCandidates(ctx context.Context, candidateIDs []uuid.UUID) ([]Rank, error) {
	ranks := make([]Rank, len(candidateIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRanks)
	for i, id := range candidateIDs {
		g.Go(func() error {
			rank, err := r.RankCandidate(ctx, id)
			if err != nil {
				return err
			}
			ranks[i] = rank
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ranks, nil
}

package ranking

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/types"
)

func fullProfile() *types.ResumeProfile {
	return &types.ResumeProfile{
		FullName:        "Jordan Doe",
		Role:            "Software Engineer",
		Degree:          "BSc Computer Science",
		Institution:     "State University",
		TechnicalSkills: "Go, Python, SQL",
		ProjectTitle:    "Inventory Tracker",
		Experience:      "3 years backend development",
	}
}

func completedSession(score int) *types.Session {
	return &types.Session{Status: types.StatusCompleted, OverallScore: &score}
}

func TestScoreResume_AllFieldsFilled(t *testing.T) {
	assert.Equal(t, 35, ScoreResume(fullProfile()))
}

func TestScoreResume_PartialProfile(t *testing.T) {
	profile := &types.ResumeProfile{FullName: "Jordan Doe", Role: "Engineer"}
	assert.Equal(t, 10, ScoreResume(profile))
}

func TestScoreResume_NilProfile(t *testing.T) {
	assert.Equal(t, 0, ScoreResume(nil))
}

func TestClassify_Thresholds(t *testing.T) {
	assert.Equal(t, ClassRecommended, Classify(80))
	assert.Equal(t, ClassRecommended, Classify(135))
	assert.Equal(t, ClassMaybe, Classify(79))
	assert.Equal(t, ClassMaybe, Classify(60))
	assert.Equal(t, ClassRejected, Classify(59))
	assert.Equal(t, ClassRejected, Classify(0))
}

func TestScoreCandidate_CombinesResumeAndInterview(t *testing.T) {
	candidateID := uuid.New()

	rank := ScoreCandidate(candidateID, fullProfile(), completedSession(75))

	assert.Equal(t, candidateID, rank.CandidateID)
	assert.Equal(t, 35, rank.ResumeScore)
	assert.Equal(t, 75, rank.InterviewScore)
	assert.Equal(t, 110, rank.TotalScore)
	assert.Equal(t, ClassRecommended, rank.Classification)
}

func TestScoreCandidate_NoCompletedSession(t *testing.T) {
	rank := ScoreCandidate(uuid.New(), fullProfile(), nil)

	assert.Equal(t, 0, rank.InterviewScore)
	assert.Equal(t, 35, rank.TotalScore)
	assert.Equal(t, ClassRejected, rank.Classification)
}

func TestScoreCandidate_UnscoredSessionContributesZero(t *testing.T) {
	rank := ScoreCandidate(uuid.New(), fullProfile(), &types.Session{Status: types.StatusCompleted})
	assert.Equal(t, 0, rank.InterviewScore)
}

// fakeRankStore serves canned profiles and sessions per candidate.
type fakeRankStore struct {
	profiles map[uuid.UUID]*types.ResumeProfile
	sessions map[uuid.UUID]*types.Session
	err      error
}

func (f *fakeRankStore) LatestResumeProfile(_ context.Context, id uuid.UUID) (*types.ResumeProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[id], nil
}

func (f *fakeRankStore) LatestCompletedSession(_ context.Context, id uuid.UUID) (*types.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sessions[id], nil
}

func TestRankCandidate_MissingDataScoresZero(t *testing.T) {
	ranker := NewRanker(&fakeRankStore{})

	rank, err := ranker.RankCandidate(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 0, rank.TotalScore)
	assert.Equal(t, ClassRejected, rank.Classification)
}

func TestRankCandidates_PreservesInputOrder(t *testing.T) {
	strong, weak := uuid.New(), uuid.New()
	store := &fakeRankStore{
		profiles: map[uuid.UUID]*types.ResumeProfile{strong: fullProfile()},
		sessions: map[uuid.UUID]*types.Session{strong: completedSession(90)},
	}
	ranker := NewRanker(store)

	ranks, err := ranker.RankCandidates(context.Background(), []uuid.UUID{weak, strong})
	require.NoError(t, err)
	require.Len(t, ranks, 2)

	assert.Equal(t, weak, ranks[0].CandidateID)
	assert.Equal(t, ClassRejected, ranks[0].Classification)
	assert.Equal(t, strong, ranks[1].CandidateID)
	assert.Equal(t, 125, ranks[1].TotalScore)
	assert.Equal(t, ClassRecommended, ranks[1].Classification)
}

func TestRankCandidates_PropagatesStoreError(t *testing.T) {
	ranker := NewRanker(&fakeRankStore{err: fmt.Errorf("connection refused")})

	_, err := ranker.RankCandidates(context.Background(), []uuid.UUID{uuid.New()})
	assert.Error(t, err)
}

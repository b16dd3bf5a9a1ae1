// Package ranking classifies candidates for hiring readiness by combining
// resume completeness signals with the most recent interview result.
package ranking

import (
	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/types"
)

// pointsPerField is awarded for each non-empty tracked resume field.
// Seven fields are tracked, so the resume contribution maxes out at 35.
const pointsPerField = 5

// Candidate classifications
const (
	ClassRecommended = "Recommended"
	ClassMaybe       = "Maybe"
	ClassRejected    = "Rejected"
)

// Rank is the combined readiness score for one candidate.
type Rank struct {
	CandidateID    uuid.UUID `json:"candidate_id"`
	ResumeScore    int       `json:"resume_score"`
	InterviewScore int       `json:"interview_score"`
	TotalScore     int       `json:"total_score"`
	Classification string    `json:"classification"`
}

// ScoreResume awards points for each filled tracked field of the resume
// profile. A nil profile scores zero.
func ScoreResume(profile *types.ResumeProfile) int {
	if profile == nil {
		return 0
	}
	fields := []string{
		profile.FullName,
		profile.Role,
		profile.Degree,
		profile.Institution,
		profile.TechnicalSkills,
		profile.ProjectTitle,
		profile.Experience,
	}
	score := 0
	for _, f := range fields {
		if f != "" {
			score += pointsPerField
		}
	}
	return score
}

// Classify buckets a total score into a hiring classification.
func Classify(total int) string {
	switch {
	case total >= 80:
		return ClassRecommended
	case total >= 60:
		return ClassMaybe
	default:
		return ClassRejected
	}
}

// ScoreCandidate combines a resume profile with the latest completed
// session. A candidate with no completed session contributes zero interview
// points.
func ScoreCandidate(candidateID uuid.UUID, profile *types.ResumeProfile, latest *types.Session) Rank {
	resumeScore := ScoreResume(profile)

	interviewScore := 0
	if latest != nil && latest.OverallScore != nil {
		interviewScore = *latest.OverallScore
	}

	total := resumeScore + interviewScore
	return Rank{
		CandidateID:    candidateID,
		ResumeScore:    resumeScore,
		InterviewScore: interviewScore,
		TotalScore:     total,
		Classification: Classify(total),
	}
}

package types

import (
	"time"

	"github.com/google/uuid"
)

// Candidate tiers
const (
	TierFree = "free"
	TierPro  = "pro"
)

// Candidate is the owner of resumes and interview sessions. Account
// management lives outside this system; only the fields the evaluation core
// needs are carried here.
type Candidate struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Tier           string    `json:"tier"`
	InterviewCount int       `json:"interview_count"`
	MaxInterviews  int       `json:"max_interviews"`
	CreatedAt      time.Time `json:"created_at"`
}

// CanStartInterview reports whether the candidate has interview attempts
// left. Pro tier candidates are unlimited.
func (c *Candidate) CanStartInterview() bool {
	if c.Tier == TierPro {
		return true
	}
	return c.InterviewCount < c.MaxInterviews
}

package types

import (
	"time"

	"github.com/google/uuid"
)

// SessionType identifies the kind of interview being run
type SessionType string

// Supported session types
const (
	SessionBehavioral SessionType = "behavioral"
	SessionTechnical  SessionType = "technical"
	SessionGeneral    SessionType = "general"
)

// Valid reports whether the session type is one of the supported kinds.
func (t SessionType) Valid() bool {
	switch t {
	case SessionBehavioral, SessionTechnical, SessionGeneral:
		return true
	}
	return false
}

// SessionStatus is the lifecycle state of an interview session
type SessionStatus string

// Session lifecycle states. Completed sessions never transition back.
const (
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
	StatusAbandoned  SessionStatus = "abandoned"
)

// Session is an interview session owned by a single candidate. Questions are
// materialized at start and delivered strictly in order.
type Session struct {
	ID          uuid.UUID   `json:"id"`
	CandidateID uuid.UUID   `json:"candidate_id"`
	ResumeID    *uuid.UUID  `json:"resume_id,omitempty"`
	Type        SessionType `json:"type"`
	Language    string      `json:"language,omitempty"` // technical sessions only

	Status            SessionStatus `json:"status"`
	TotalQuestions    int           `json:"total_questions"`
	QuestionsAnswered int           `json:"questions_answered"`

	OverallScore       *int `json:"overall_score,omitempty"`
	TechnicalScore     *int `json:"technical_score,omitempty"`
	CommunicationScore *int `json:"communication_score,omitempty"`
	ConfidenceScore    *int `json:"confidence_score,omitempty"`
	StarScore          *int `json:"star_score,omitempty"`

	Feedback *FeedbackSummary `json:"feedback,omitempty"`

	CreatedAt       time.Time  `json:"created_at"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	DurationSeconds *int       `json:"duration_seconds,omitempty"`
}

// Readiness labels derived from the overall session score
const (
	ReadinessInterviewReady = "interview_ready"
	ReadinessAlmostReady    = "almost_ready"
	ReadinessNeedsPractice  = "needs_practice"
)

// ReadinessStatus buckets the overall score into a coarse readiness label.
// Returns an empty string for sessions that have not been scored yet.
func (s *Session) ReadinessStatus() string {
	if s.OverallScore == nil {
		return ""
	}
	switch {
	case *s.OverallScore >= 85:
		return ReadinessInterviewReady
	case *s.OverallScore >= 70:
		return ReadinessAlmostReady
	default:
		return ReadinessNeedsPractice
	}
}

// ScoreColor maps the overall score to a display color for clients.
func (s *Session) ScoreColor() string {
	if s.OverallScore == nil {
		return "gray"
	}
	switch {
	case *s.OverallScore >= 85:
		return "green"
	case *s.OverallScore >= 70:
		return "yellow"
	default:
		return "red"
	}
}

// Question is owned exclusively by one session. Order is unique within the
// session and defines delivery sequence. Answer, Score and Evaluation stay
// nil until the question is answered and evaluated.
type Question struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	Order     int       `json:"order"`
	Text      string    `json:"text"`

	Answer           *string     `json:"answer,omitempty"`
	TimeTakenSeconds *int        `json:"time_taken_seconds,omitempty"`
	Score            *int        `json:"score,omitempty"`
	Evaluation       *Evaluation `json:"evaluation,omitempty"`

	AskedAt    time.Time  `json:"asked_at"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
}

// Answered reports whether the question has received an answer.
func (q *Question) Answered() bool { return q.Answer != nil }

// StarComponents is the four-flag structuredness breakdown of an answer.
type StarComponents struct {
	Situation bool `json:"situation"`
	Task      bool `json:"task"`
	Action    bool `json:"action"`
	Result    bool `json:"result"`
}

// Count returns the number of components present in the answer.
func (s StarComponents) Count() int {
	n := 0
	for _, set := range []bool{s.Situation, s.Task, s.Action, s.Result} {
		if set {
			n++
		}
	}
	return n
}

// Evaluation is the structured grading record for a single answer.
// TechnicalScore and CommunicationScore are optional; aggregation falls back
// to the answer's own score when they are absent.
type Evaluation struct {
	Score              int            `json:"score"`
	TechnicalScore     *int           `json:"technical_score,omitempty"`
	CommunicationScore *int           `json:"communication_score,omitempty"`
	Strengths          []string       `json:"strengths"`
	Improvements       []string       `json:"improvements"`
	Star               StarComponents `json:"star_components"`
	ModelAnswer        string         `json:"model_answer,omitempty"`
}

// FeedbackSummary is the aggregate feedback generated when a session
// completes.
type FeedbackSummary struct {
	OverallAssessment string   `json:"overall_assessment"`
	ReadinessLevel    string   `json:"readiness_level"`
	Strengths         []string `json:"strengths"`
	Improvements      []string `json:"improvements"`
	WeakAreas         []string `json:"weak_areas"`
	QuestionsMastered int      `json:"questions_mastered"`
	QuestionsNeedWork int      `json:"questions_need_work"`
}

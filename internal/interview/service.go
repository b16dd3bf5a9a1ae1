package interview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/confidence"
	"github.com/jonathan/interview-coach/internal/resolver"
	"github.com/jonathan/interview-coach/internal/types"
)

// Service drives the interview session state machine. All operations are
// request-scoped and synchronous; the only cross-session state is the
// candidate's lifetime interview counter.
type Service struct {
	store        Store
	resolver     *resolver.Resolver
	locks        *sessionLocks
	maxQuestions int
}

// Option configures a Service
type Option func(*Service)

// WithMaxQuestions overrides the number of questions generated per session.
func WithMaxQuestions(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxQuestions = n
		}
	}
}

// NewService creates the session service.
func NewService(store Store, res *resolver.Resolver, opts ...Option) *Service {
	s := &Service{
		store:        store,
		resolver:     res,
		locks:        newSessionLocks(),
		maxQuestions: resolver.DefaultMaxQuestions,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartResult is returned from Start: the created session and its first
// question. Source records which engine generated the questions; it is for
// operators and tests, not candidates.
type StartResult struct {
	Session       *types.Session
	FirstQuestion *types.Question
	Difficulty    confidence.Difficulty
	Source        resolver.Source
}

// Start creates a new interview session. It checks the candidate's quota,
// fixes question difficulty from confidence history, materializes the full
// question set up front at order 1..N, and returns the first question.
func (s *Service) Start(ctx context.Context, candidateID uuid.UUID, sessionType types.SessionType, resumeID *uuid.UUID, language string) (*StartResult, error) {
	if !sessionType.Valid() {
		return nil, &ErrInvalidInput{Field: "type", Message: fmt.Sprintf("unknown session type %q", sessionType)}
	}

	candidate, err := s.store.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate: %w", err)
	}
	if candidate == nil {
		return nil, &ErrNotFound{Kind: "candidate", ID: candidateID}
	}
	if !candidate.CanStartInterview() {
		return nil, &ErrQuotaExceeded{Count: candidate.InterviewCount, Max: candidate.MaxInterviews}
	}

	var skills, projects []string
	if resumeID != nil {
		resume, err := s.store.GetResume(ctx, *resumeID)
		if err != nil {
			return nil, fmt.Errorf("failed to load resume: %w", err)
		}
		if resume == nil {
			return nil, &ErrNotFound{Kind: "resume", ID: *resumeID}
		}
		if resume.CandidateID != candidateID {
			return nil, &ErrForbidden{}
		}
		skills = resume.Profile.SkillList()
		if resume.Profile.ProjectTitle != "" {
			projects = append(projects, resume.Profile.ProjectTitle)
		}
	}

	history, err := s.store.ConfidenceScores(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load confidence history: %w", err)
	}
	difficulty := confidence.SelectDifficulty(history)

	gen := s.resolver.GenerateQuestions(ctx, resolver.GenerationInput{
		Type:         sessionType,
		Language:     language,
		Difficulty:   difficulty,
		Skills:       skills,
		Projects:     projects,
		MaxQuestions: s.maxQuestions,
	})

	now := time.Now().UTC()
	session := &types.Session{
		ID:             uuid.New(),
		CandidateID:    candidateID,
		ResumeID:       resumeID,
		Type:           sessionType,
		Language:       language,
		Status:         types.StatusInProgress,
		TotalQuestions: len(gen.Questions),
		CreatedAt:      now,
		StartedAt:      &now,
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	questions := make([]types.Question, len(gen.Questions))
	for i, text := range gen.Questions {
		questions[i] = types.Question{
			ID:        uuid.New(),
			SessionID: session.ID,
			Order:     i + 1,
			Text:      text,
			AskedAt:   now,
		}
	}
	if err := s.store.CreateQuestions(ctx, questions); err != nil {
		return nil, fmt.Errorf("failed to create questions: %w", err)
	}

	return &StartResult{
		Session:       session,
		FirstQuestion: &questions[0],
		Difficulty:    difficulty,
		Source:        gen.Source,
	}, nil
}

// Progress reports how far a session has advanced.
type Progress struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

// SubmitResult is returned from SubmitAnswer. Exactly one of NextQuestion
// or Completed is set: NextQuestion while unanswered questions remain,
// Completed once the last answer finishes the session.
type SubmitResult struct {
	Evaluation   types.Evaluation
	Source       resolver.Source
	Progress     Progress
	NextQuestion *types.Question
	Completed    *types.Session
}

// SubmitAnswer evaluates and records an answer to an unanswered question.
// The AlreadyAnswered check runs under the session lock, so a racing
// duplicate submission is rejected rather than silently overwriting scores.
func (s *Service) SubmitAnswer(ctx context.Context, candidateID, questionID uuid.UUID, answer string, timeTakenSeconds int) (*SubmitResult, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, &ErrInvalidInput{Field: "answer", Message: "answer text is required"}
	}
	if timeTakenSeconds < 0 {
		return nil, &ErrInvalidInput{Field: "time_taken", Message: "time taken must be non-negative"}
	}

	question, session, err := s.ownedQuestion(ctx, candidateID, questionID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.acquire(session.ID)
	defer unlock()

	// Re-read question and session under the lock: the pre-lock reads raced
	// with submissions to other questions of the same session.
	question, session, err = s.lockedState(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.Answered() {
		return nil, &ErrAlreadyAnswered{QuestionID: questionID}
	}
	if session.Status == types.StatusCompleted {
		return nil, &ErrAlreadyCompleted{SessionID: session.ID}
	}

	eval := s.resolver.EvaluateAnswer(ctx, resolver.EvaluationInput{
		Question: question.Text,
		Answer:   answer,
		Type:     session.Type,
	})

	now := time.Now().UTC()
	question.Answer = &answer
	question.TimeTakenSeconds = &timeTakenSeconds
	question.Score = &eval.Evaluation.Score
	question.Evaluation = &eval.Evaluation
	question.AnsweredAt = &now
	if err := s.store.UpdateQuestion(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to save answer: %w", err)
	}

	if session.QuestionsAnswered < session.TotalQuestions {
		session.QuestionsAnswered++
	}
	if err := s.store.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session progress: %w", err)
	}

	result := &SubmitResult{
		Evaluation: eval.Evaluation,
		Source:     eval.Source,
		Progress:   Progress{Answered: session.QuestionsAnswered, Total: session.TotalQuestions},
	}

	next, err := s.store.NextUnanswered(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load next question: %w", err)
	}
	if next != nil {
		result.NextQuestion = next
		return result, nil
	}

	if err := s.complete(ctx, session); err != nil {
		return nil, err
	}
	result.Completed = session
	return result, nil
}

// complete aggregates per-question scores into session-level scores and
// seals the session. Idempotent: a session that is already completed is
// left untouched and the candidate counter is not incremented again.
func (s *Service) complete(ctx context.Context, session *types.Session) error {
	if session.Status == types.StatusCompleted {
		return nil
	}

	questions, err := s.store.ListQuestions(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("failed to list questions: %w", err)
	}

	agg, ok := computeAggregates(questions)
	if !ok {
		return &ErrIncompleteSession{SessionID: session.ID}
	}

	now := time.Now().UTC()
	session.OverallScore = &agg.Overall
	session.TechnicalScore = agg.Technical
	session.CommunicationScore = agg.Communication
	session.StarScore = agg.Star
	session.Status = types.StatusCompleted
	session.CompletedAt = &now
	if session.StartedAt != nil {
		duration := int(now.Sub(*session.StartedAt).Seconds())
		session.DurationSeconds = &duration
	}
	session.Feedback = buildFeedback(questions, agg.Overall)

	if err := s.store.UpdateSession(ctx, session); err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}
	if err := s.store.IncrementInterviewCount(ctx, session.CandidateID); err != nil {
		return fmt.Errorf("failed to increment interview count: %w", err)
	}
	return nil
}

// RetryResult is returned from Retry with the re-evaluated question and the
// session carrying recomputed scores.
type RetryResult struct {
	Question *types.Question
	Session  *types.Session
	Source   resolver.Source
}

// Retry re-answers a single question in place. This is the one operation
// permitted to overwrite an already-scored question: it re-runs evaluation,
// replaces the answer, score and evaluation, and recomputes the session's
// overall and category scores over all currently-scored questions.
// TotalQuestions and the candidate counter are untouched. A question that
// has never been answered cannot be retried; it goes through SubmitAnswer,
// which is what advances the session toward completion.
func (s *Service) Retry(ctx context.Context, candidateID, questionID uuid.UUID, answer string) (*RetryResult, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, &ErrInvalidInput{Field: "answer", Message: "answer text is required"}
	}

	question, session, err := s.ownedQuestion(ctx, candidateID, questionID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.acquire(session.ID)
	defer unlock()

	// Re-read question and session under the lock so the overwrite and the
	// recomputation see the latest state.
	question, session, err = s.lockedState(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if !question.Answered() {
		return nil, &ErrInvalidInput{Field: "question", Message: "question has not been answered yet"}
	}

	eval := s.resolver.EvaluateAnswer(ctx, resolver.EvaluationInput{
		Question: question.Text,
		Answer:   answer,
		Type:     session.Type,
	})

	now := time.Now().UTC()
	question.Answer = &answer
	question.Score = &eval.Evaluation.Score
	question.Evaluation = &eval.Evaluation
	question.AnsweredAt = &now
	if err := s.store.UpdateQuestion(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to save retried answer: %w", err)
	}

	questions, err := s.store.ListQuestions(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	agg, ok := computeAggregates(questions)
	if !ok {
		return nil, &ErrIncompleteSession{SessionID: session.ID}
	}
	session.OverallScore = &agg.Overall
	session.TechnicalScore = agg.Technical
	session.CommunicationScore = agg.Communication
	session.StarScore = agg.Star
	if err := s.store.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session scores: %w", err)
	}

	return &RetryResult{Question: question, Session: session, Source: eval.Source}, nil
}

// lockedState reloads a question and its session. Callers hold the session
// lock, so the returned session carries a current QuestionsAnswered count
// and no concurrent submission can lose an increment.
func (s *Service) lockedState(ctx context.Context, questionID uuid.UUID) (*types.Question, *types.Session, error) {
	question, err := s.store.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load question: %w", err)
	}
	if question == nil {
		return nil, nil, &ErrNotFound{Kind: "question", ID: questionID}
	}
	session, err := s.store.GetSession(ctx, question.SessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, nil, &ErrNotFound{Kind: "session", ID: question.SessionID}
	}
	return question, session, nil
}

// ownedQuestion loads a question and its session and verifies ownership.
func (s *Service) ownedQuestion(ctx context.Context, candidateID, questionID uuid.UUID) (*types.Question, *types.Session, error) {
	question, err := s.store.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load question: %w", err)
	}
	if question == nil {
		return nil, nil, &ErrNotFound{Kind: "question", ID: questionID}
	}

	session, err := s.store.GetSession(ctx, question.SessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, nil, &ErrNotFound{Kind: "session", ID: question.SessionID}
	}
	if session.CandidateID != candidateID {
		return nil, nil, &ErrForbidden{}
	}
	return question, session, nil
}

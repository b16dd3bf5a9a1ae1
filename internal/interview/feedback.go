package interview

import (
	"github.com/jonathan/interview-coach/internal/types"
)

// Score buckets for aggregate feedback
const (
	lowScoreBelow  = 70
	highScoreFrom  = 85
	readyFrom      = 85
	almostReadyFrm = 70
)

// Weak-area tags derived from structuredness flags most often missing
// among low-scoring answers.
const (
	weakAreaResults = "result_oriented_answers"
	weakAreaContext = "context_setting"
)

// buildFeedback generates the aggregate feedback summary for a session from
// its scored questions and overall score.
func buildFeedback(questions []types.Question, overall int) *types.FeedbackSummary {
	var low, high []types.Question
	for _, q := range questions {
		if q.Score == nil {
			continue
		}
		switch {
		case *q.Score < lowScoreBelow:
			low = append(low, q)
		case *q.Score >= highScoreFrom:
			high = append(high, q)
		}
	}

	weakAreas := make([]string, 0, 2)
	seen := make(map[string]bool)
	for _, q := range low {
		if q.Evaluation == nil {
			continue
		}
		if !q.Evaluation.Star.Result && !seen[weakAreaResults] {
			seen[weakAreaResults] = true
			weakAreas = append(weakAreas, weakAreaResults)
		}
		if !q.Evaluation.Star.Situation && !seen[weakAreaContext] {
			seen[weakAreaContext] = true
			weakAreas = append(weakAreas, weakAreaContext)
		}
	}

	var assessment, readiness string
	switch {
	case overall >= readyFrom:
		assessment = "Excellent performance! You're interview-ready."
		readiness = types.ReadinessInterviewReady
	case overall >= almostReadyFrm:
		assessment = "Good performance with room for improvement."
		readiness = types.ReadinessAlmostReady
	default:
		assessment = "Needs more practice before live interviews."
		readiness = types.ReadinessNeedsPractice
	}

	var strengths []string
	if len(high) > len(low) {
		strengths = append(strengths, "Consistently strong answers")
	}
	if len(strengths) == 0 {
		strengths = []string{"Answer quality was adequate"}
	}

	var improvements []string
	if seen[weakAreaResults] {
		improvements = append(improvements, "Add measurable results and outcomes to your answers")
	}
	if seen[weakAreaContext] {
		improvements = append(improvements, "Provide more context at the beginning of your answers")
	}
	if len(improvements) == 0 {
		improvements = append(improvements, "Continue practicing to maintain consistency")
	}

	return &types.FeedbackSummary{
		OverallAssessment: assessment,
		ReadinessLevel:    readiness,
		Strengths:         strengths,
		Improvements:      improvements,
		WeakAreas:         weakAreas,
		QuestionsMastered: len(high),
		QuestionsNeedWork: len(low),
	}
}

package resolver

import (
	"context"
	"strings"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/prompts"
	"github.com/jonathan/interview-coach/internal/schemas"
	"github.com/jonathan/interview-coach/internal/types"
)

// EvaluateAnswer resolves an evaluation record for a submitted answer. The
// primary service response must pass schema validation; any violation,
// transport error or timeout falls back to the deterministic length-band
// evaluator. A well-formed evaluation is always returned.
func (r *Resolver) EvaluateAnswer(ctx context.Context, in EvaluationInput) EvaluationResult {
	if r.client != nil {
		if eval, err := r.evaluateFromAI(ctx, in); err == nil {
			return EvaluationResult{Source: SourceAI, Evaluation: *eval}
		}
	}

	return EvaluationResult{Source: SourceFallback, Evaluation: fallbackEvaluation(in.Answer)}
}

func (r *Resolver) evaluateFromAI(ctx context.Context, in EvaluationInput) (*types.Evaluation, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.client.GenerateJSON(ctx, evaluationPrompt(in), llm.TierStandard)
	if err != nil {
		return nil, err
	}

	return schemas.DecodeEvaluation(llm.CleanJSONBlock(raw))
}

// evaluationPrompt builds the grading prompt for the session type.
func evaluationPrompt(in EvaluationInput) string {
	key := "evaluate_general"
	switch in.Type {
	case types.SessionBehavioral:
		key = "evaluate_behavioral"
	case types.SessionTechnical:
		key = "evaluate_technical"
	}

	return prompts.Format(prompts.MustGet("interview.json", key), map[string]string{
		"Question": in.Question,
		"Answer":   in.Answer,
	})
}

// fallbackEvaluation scores purely from answer length bands. Structuredness
// flags default to false; the candidate gets generic but actionable
// improvement text.
func fallbackEvaluation(answer string) types.Evaluation {
	words := len(strings.Fields(answer))

	var score int
	var feedback string
	switch {
	case words < 30:
		score = 50
		feedback = "Answer is too brief. Provide more detail."
	case words < 80:
		score = 65
		feedback = "Good start, but could be more comprehensive."
	case words < 150:
		score = 75
		feedback = "Solid answer with good detail."
	default:
		score = 70
		feedback = "Comprehensive but could be more concise."
	}

	return types.Evaluation{
		Score:        score,
		Strengths:    []string{"Answer provided"},
		Improvements: []string{feedback},
		ModelAnswer:  "A strong answer would include specific examples and measurable results.",
	}
}

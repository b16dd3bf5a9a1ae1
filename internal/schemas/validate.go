// Package schemas provides JSON Schema validation for the ad hoc payloads
// returned by the primary intelligent service. Any schema violation is a
// fallback trigger for the caller, never a crash.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/interview-coach/internal/types"
)

//go:embed evaluation.json
var evaluationSchema string

// evaluationPayload mirrors the JSON shape the evaluation prompt asks for.
// Optional fields are pointers so missing keys can be default-filled.
type evaluationPayload struct {
	Score              float64               `json:"score"`
	TechnicalScore     *float64              `json:"technical_score"`
	CommunicationScore *float64              `json:"communication_score"`
	Star               *types.StarComponents `json:"star_components"`
	Strengths          []string              `json:"strengths"`
	Improvements       []string              `json:"improvements"`
	ModelAnswer        string                `json:"model_answer"`
}

// DecodeEvaluation validates raw JSON against the evaluation schema and
// decodes it into a domain Evaluation, filling defaults for missing
// optional keys. Returns an error on any schema violation; callers treat
// that as a fallback trigger.
func DecodeEvaluation(raw string) (*types.Evaluation, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(evaluationSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("evaluation payload is not valid JSON: %w", err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, fmt.Errorf("evaluation payload failed schema validation: %s", strings.Join(problems, "; "))
	}

	var payload evaluationPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode evaluation payload: %w", err)
	}

	eval := &types.Evaluation{
		Score:        clampScore(payload.Score),
		Strengths:    payload.Strengths,
		Improvements: payload.Improvements,
		ModelAnswer:  payload.ModelAnswer,
	}
	if payload.TechnicalScore != nil {
		v := clampScore(*payload.TechnicalScore)
		eval.TechnicalScore = &v
	}
	if payload.CommunicationScore != nil {
		v := clampScore(*payload.CommunicationScore)
		eval.CommunicationScore = &v
	}
	if payload.Star != nil {
		eval.Star = *payload.Star
	}

	// Default-fill qualitative fields so downstream display never sees nil
	if len(eval.Strengths) == 0 {
		eval.Strengths = []string{"Answer provided"}
	}
	if len(eval.Improvements) == 0 {
		eval.Improvements = []string{"Could be more specific"}
	}

	return eval, nil
}

func clampScore(f float64) int {
	if f < 0 {
		return 0
	}
	if f > 100 {
		return 100
	}
	return int(math.Round(f))
}

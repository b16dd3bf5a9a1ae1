package resolver

import (
	"context"
	"strconv"
	"strings"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/prompts"
	"github.com/jonathan/interview-coach/internal/types"
)

// minAIQuestions is the validation floor for a primary-service question
// set; anything smaller triggers fallback.
const minAIQuestions = 2

// GenerateQuestions resolves a question set for a new session. The primary
// service is attempted first; any transport error, timeout or validation
// failure falls back to the static bank. The result is never empty and
// never carries an error.
func (r *Resolver) GenerateQuestions(ctx context.Context, in GenerationInput) GenerationResult {
	if in.MaxQuestions <= 0 {
		in.MaxQuestions = DefaultMaxQuestions
	}

	if r.client != nil {
		if questions, err := r.generateFromAI(ctx, in); err == nil {
			return GenerationResult{Source: SourceAI, Questions: questions}
		}
	}

	return GenerationResult{Source: SourceFallback, Questions: fallbackQuestions(in)}
}

// generateFromAI calls the primary service and parses its newline-delimited
// response. Requires at least minAIQuestions question-like lines.
func (r *Resolver) generateFromAI(ctx context.Context, in GenerationInput) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.client.GenerateContent(ctx, generationPrompt(in), llm.TierStandard)
	if err != nil {
		return nil, err
	}

	questions := parseQuestionLines(raw, in.MaxQuestions)
	if len(questions) < minAIQuestions {
		return nil, errTooFewQuestions
	}
	return questions, nil
}

var errTooFewQuestions = &insufficientOutputError{}

type insufficientOutputError struct{}

func (*insufficientOutputError) Error() string {
	return "primary service returned too few usable questions"
}

// generationPrompt builds the task-specific prompt from structured inputs.
func generationPrompt(in GenerationInput) string {
	key := "generate_general"
	switch in.Type {
	case types.SessionBehavioral:
		key = "generate_behavioral"
	case types.SessionTechnical:
		key = "generate_technical"
	}

	language := in.Language
	if language == "" {
		language = "general programming"
	}
	experience := strings.Join(in.Projects, "; ")
	if experience == "" {
		experience = "entry level"
	}

	return prompts.Format(prompts.MustGet("interview.json", key), map[string]string{
		"Count":      strconv.Itoa(in.MaxQuestions),
		"Skills":     strings.Join(in.Skills, ", "),
		"Projects":   strings.Join(in.Projects, ", "),
		"Experience": experience,
		"Language":   language,
		"Difficulty": string(in.Difficulty),
	})
}

// parseQuestionLines extracts question-like lines from a free-text
// response: newline-delimited, containing a question mark, with list
// numbering and bullets stripped.
func parseQuestionLines(raw string, max int) []string {
	var questions []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		line = strings.TrimLeft(line, "0123456789.) ")
		if line == "" || !strings.Contains(line, "?") {
			continue
		}
		if seen[line] {
			continue
		}
		seen[line] = true
		questions = append(questions, line)
		if len(questions) == max {
			break
		}
	}
	return questions
}

package resolver

import (
	"strings"

	"github.com/jonathan/interview-coach/internal/confidence"
	"github.com/jonathan/interview-coach/internal/types"
)

// technicalBank indexes technical fallback questions by difficulty tier and
// skill. Skill keys are matched case-insensitively against the candidate's
// declared skills and technical language.
var technicalBank = map[confidence.Difficulty]map[string][]string{
	confidence.Basic: {
		"python": {
			"What is the difference between a list and a tuple in Python?",
			"What are Python's main data structures and when would you use each?",
		},
		"javascript": {
			"What is the difference between var, let, and const?",
			"What is the difference between == and ===?",
		},
		"java": {
			"What are the main principles of OOP?",
			"Explain the difference between ArrayList and LinkedList.",
		},
	},
	confidence.Medium: {
		"python": {
			"How does Python handle memory management?",
			"What is a generator in Python and how is it different from a regular function?",
		},
		"flask": {
			"How does Flask handle routing?",
			"Explain Flask Blueprints.",
		},
		"javascript": {
			"Explain closures in JavaScript with an example.",
			"Explain promises and async/await.",
		},
		"java": {
			"Explain Java's memory model (heap vs stack).",
			"How does garbage collection work in Java?",
		},
		"linux": {
			"What is a process in Linux?",
			"Explain chmod and chown.",
		},
	},
	confidence.Hard: {
		"python": {
			"Explain Python decorators with real use cases.",
			"How would you optimize Python code for performance?",
		},
		"flask": {
			"Explain the Flask request lifecycle.",
			"How would you design a scalable Flask application?",
		},
		"javascript": {
			"What is the event loop and how does it work?",
			"How does prototypal inheritance work?",
		},
		"linux": {
			"How does Linux manage processes internally?",
			"Explain signals and process states in Linux.",
		},
	},
}

// behavioralBank holds behavioral fallback questions in delivery order.
var behavioralBank = []string{
	"Tell me about yourself and your background.",
	"Why are you interested in this role?",
	"Describe a time when you faced a significant challenge at work. How did you handle it?",
	"Tell me about a time you had a conflict with a coworker. How did you resolve it?",
	"Describe a situation where you showed leadership.",
	"What's your greatest professional achievement?",
	"Tell me about a time you failed and what you learned.",
	"How do you prioritize tasks when you have multiple deadlines?",
	"Describe a time when you had to work with a difficult team member.",
	"Where do you see yourself in 5 years?",
}

// generalBank holds mock-interview fallback questions.
var generalBank = []string{
	"Walk me through your resume.",
	"What interests you about this position?",
	"Describe your most recent project in detail.",
	"What are your technical strengths?",
	"How do you stay updated with new technologies?",
	"Describe a time you had to learn something new quickly.",
	"What's your approach to debugging complex issues?",
	"Tell me about a project you're proud of.",
}

// genericTechnical is used when no declared skill matches the bank.
var genericTechnical = []string{
	"Introduce yourself and describe your technical background.",
	"Explain your main project and the design decisions behind it.",
	"What subjects are you most comfortable with?",
}

// fallbackQuestions selects questions from the static bank. It always
// returns at least one question.
func fallbackQuestions(in GenerationInput) []string {
	max := in.MaxQuestions
	if max <= 0 {
		max = DefaultMaxQuestions
	}

	var questions []string
	switch in.Type {
	case types.SessionBehavioral:
		questions = behavioralBank
	case types.SessionTechnical:
		questions = technicalFallback(in)
	default:
		questions = generalBank
	}

	if len(questions) > max {
		questions = questions[:max]
	}
	return questions
}

// technicalFallback matches declared skills (and the session language)
// against the bank at the requested difficulty, then the generic set.
func technicalFallback(in GenerationInput) []string {
	bank := technicalBank[in.Difficulty]

	keys := make([]string, 0, len(in.Skills)+1)
	if in.Language != "" {
		keys = append(keys, in.Language)
	}
	keys = append(keys, in.Skills...)

	var questions []string
	seen := make(map[string]bool)
	for _, key := range keys {
		skill := strings.ToLower(strings.TrimSpace(key))
		for _, q := range bank[skill] {
			if !seen[q] {
				seen[q] = true
				questions = append(questions, q)
			}
		}
	}

	if len(questions) == 0 {
		return genericTechnical
	}
	return questions
}

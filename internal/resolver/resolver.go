// Package resolver implements the hybrid resolution strategy shared by
// question generation and answer evaluation: attempt the primary intelligent
// service under a bounded timeout, and on any failure fall back to a
// deterministic local engine that is guaranteed to produce usable output.
// Upstream failures never escape the resolver boundary.
package resolver

import (
	"time"

	"github.com/jonathan/interview-coach/internal/confidence"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/types"
)

// Source records which engine produced a result
type Source string

// Result provenance values. Callers and tests can distinguish provenance;
// candidates never see it.
const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// DefaultTimeout bounds every call to the primary service so a hung
// dependency cannot block a session.
const DefaultTimeout = 20 * time.Second

// DefaultMaxQuestions is the question count requested per session.
const DefaultMaxQuestions = 10

// Resolver resolves generation and evaluation requests through the
// primary-with-fallback strategy. A nil client skips the primary stage
// entirely and every result is fallback-sourced.
type Resolver struct {
	client  llm.Client
	timeout time.Duration
}

// Option configures a Resolver
type Option func(*Resolver)

// WithTimeout overrides the primary-service timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) { r.timeout = d }
}

// New creates a resolver. client may be nil when no primary service is
// configured.
func New(client llm.Client, opts ...Option) *Resolver {
	r := &Resolver{client: client, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GenerationInput carries the structured inputs for question generation.
type GenerationInput struct {
	Type         types.SessionType
	Language     string
	Difficulty   confidence.Difficulty
	Skills       []string
	Projects     []string
	MaxQuestions int
}

// GenerationResult is the resolved question set with provenance.
type GenerationResult struct {
	Source    Source
	Questions []string
}

// EvaluationInput carries the structured inputs for answer evaluation.
type EvaluationInput struct {
	Question string
	Answer   string
	Type     types.SessionType
}

// EvaluationResult is the resolved evaluation record with provenance.
type EvaluationResult struct {
	Source     Source
	Evaluation types.Evaluation
}

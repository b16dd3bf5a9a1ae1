package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/interview-coach/internal/ats"
	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/ranking"
	"github.com/jonathan/interview-coach/internal/resolver"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	db         *db.DB
	llmClient  llm.Client
	scorer     *ats.Scorer
	interviews *interview.Service
	ranker     *ranking.Ranker
	validate   *validator.Validate
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string
	APIKey       string // empty disables the primary intelligent service
	Timeout      time.Duration
	MaxQuestions int
}

// New creates a new server instance
func New(ctx context.Context, cfg Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// The primary intelligent service is optional: without an API key every
	// resolution goes straight to the deterministic fallback.
	var client llm.Client
	if cfg.APIKey != "" {
		client, err = llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	}

	var opts []resolver.Option
	if cfg.Timeout > 0 {
		opts = append(opts, resolver.WithTimeout(cfg.Timeout))
	}
	res := resolver.New(client, opts...)

	s := &Server{
		db:         database,
		llmClient:  client,
		scorer:     ats.NewScorer(),
		interviews: interview.NewService(database, res, interview.WithMaxQuestions(cfg.MaxQuestions)),
		ranker:     ranking.NewRanker(database),
		validate:   validator.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /interviews", s.handleStartInterview)
	mux.HandleFunc("POST /answers", s.handleSubmitAnswer)
	mux.HandleFunc("POST /questions/{id}/retry", s.handleRetryQuestion)
	mux.HandleFunc("GET /interviews/{id}/review", s.handleGetReview)
	mux.HandleFunc("GET /interviews", s.handleListInterviews)
	mux.HandleFunc("DELETE /interviews/{id}", s.handleDeleteInterview)

	mux.HandleFunc("POST /resumes", s.handleCreateResume)
	mux.HandleFunc("POST /resumes/{id}/analyze", s.handleAnalyzeResume)
	mux.HandleFunc("POST /candidates", s.handleCreateCandidate)
	mux.HandleFunc("GET /candidates/{id}/ranking", s.handleCandidateRanking)
	mux.HandleFunc("POST /video-answers", s.handleRecordVideoAnswer)

	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Start runs the server until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}

	s.db.Close()
	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("failed to close LLM client: %v", err)
		}
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/jonathan/interview-coach/internal/resolver"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Print the feedback summary of a completed interview",
	Long:  "Loads a completed interview session from the database and prints its per-question scores and aggregate feedback summary.",
	RunE:  runReview,
}

var (
	reviewInterviewID string
	reviewCandidateID string
)

func init() {
	reviewCmd.Flags().StringVarP(&reviewInterviewID, "interview", "i", "", "Interview session ID (required)")
	reviewCmd.Flags().StringVarP(&reviewCandidateID, "candidate", "c", "", "Candidate ID that owns the session (required)")

	for _, flag := range []string{"interview", "candidate"} {
		if err := reviewCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(reviewCmd)
}

func runReview(_ *cobra.Command, _ []string) error {
	sessionID, err := uuid.Parse(reviewInterviewID)
	if err != nil {
		return fmt.Errorf("invalid interview id: %w", err)
	}
	candidateID, err := uuid.Parse(reviewCandidateID)
	if err != nil {
		return fmt.Errorf("invalid candidate id: %w", err)
	}

	cfg := config.FromEnv()
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	svc := interview.NewService(database, resolver.New(nil))
	review, err := svc.GetReview(ctx, candidateID, sessionID)
	if err != nil {
		return err
	}

	if review.Session.OverallScore != nil {
		fmt.Printf("Overall: %d / 100 (%s)\n", *review.Session.OverallScore, review.Readiness)
	}
	for _, q := range review.Questions {
		if q.Score != nil {
			fmt.Printf("  Q%d: %d\n", q.Order, *q.Score)
		}
	}
	fmt.Println()

	observability.NewPrinter(os.Stdout).PrintFeedback(review.Session.Feedback)
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/ats"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume file against ATS heuristics",
	Long:  "Runs the deterministic ATS scorer over a plain-text resume file and prints the score breakdown, issues and suggestions. With an API key set, also generates an AI narrative.",
	RunE:  runAnalyze,
}

var (
	analyzeFile    string
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to plain-text resume file (required)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted breakdown instead of JSON")

	if err := analyzeCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(analyzeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	text := string(data)

	ctx := context.Background()

	scorer := ats.NewScorer()
	sections := ats.ParseSections(text)
	result := scorer.Score(text, sections)

	// Narrative is best-effort: no key means a purely deterministic run.
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to create LLM client: %v\n", err)
		} else {
			defer func() { _ = client.Close() }()
			result.Narrative = ats.Narrate(ctx, client, text, result)
		}
	}

	if analyzeVerbose {
		observability.NewPrinter(os.Stdout).PrintAtsResult(&result)
		return nil
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

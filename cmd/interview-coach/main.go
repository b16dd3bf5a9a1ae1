// Package main provides the entry point for the Interview Coach server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview-coach",
	Short: "Interview Coach hiring-readiness server",
	Long:  "Interview Coach scores resumes against ATS heuristics, runs adaptive mock interview sessions with AI evaluation and deterministic fallback, and ranks candidates via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAtsResult outputs a human-readable summary of a resume scoring result.
func (p *Printer) PrintAtsResult(result *types.AtsResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall Score:  %d / 100\n\n", result.Score))
	sb.WriteString(fmt.Sprintf("Keywords:       %d\n", result.Breakdown.Keywords))
	sb.WriteString(fmt.Sprintf("Formatting:     %d\n", result.Breakdown.Formatting))
	sb.WriteString(fmt.Sprintf("Completeness:   %d\n", result.Breakdown.Completeness))
	sb.WriteString(fmt.Sprintf("Length:         %d\n", result.Breakdown.Length))

	if len(result.Issues) > 0 {
		sb.WriteString("\nIssues:\n")
		for _, issue := range result.Issues {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", issue.Severity, issue.Message))
		}
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range result.Suggestions {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("ATS Analysis", strings.TrimRight(sb.String(), "\n"))

	if result.Narrative != "" {
		p.printBox("AI Feedback", result.Narrative)
	}
}

// PrintFeedback outputs a session's aggregate feedback summary.
func (p *Printer) PrintFeedback(feedback *types.FeedbackSummary) {
	if feedback == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(feedback.OverallAssessment + "\n")
	sb.WriteString(fmt.Sprintf("Readiness: %s\n", feedback.ReadinessLevel))
	sb.WriteString(fmt.Sprintf("Mastered: %d   Need work: %d\n", feedback.QuestionsMastered, feedback.QuestionsNeedWork))

	if len(feedback.Improvements) > 0 {
		sb.WriteString("\nImprovements:\n")
		for _, imp := range feedback.Improvements {
			sb.WriteString(fmt.Sprintf("  • %s\n", imp))
		}
	}

	p.printBox("Interview Feedback", strings.TrimRight(sb.String(), "\n"))
}

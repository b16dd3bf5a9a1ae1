package ats

import (
	"fmt"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// identifyIssues derives the fixable issue list by thresholding each
// sub-score against the configured cutoffs.
func (s *Scorer) identifyIssues(kw, fmtScore, comp, length float64, text string, sections types.ParsedSections) []types.Issue {
	var issues []types.Issue

	if kw < float64(s.weights.KeywordIssueBelow) {
		issues = append(issues, types.Issue{
			Category: types.IssueKeywords,
			Severity: types.SeverityHigh,
			Message:  "Missing industry-relevant keywords",
		})
	}

	if fmtScore < float64(s.weights.FormattingIssueBelow) {
		issues = append(issues, types.Issue{
			Category: types.IssueFormatting,
			Severity: types.SeverityMedium,
			Message:  "Inconsistent formatting detected",
		})
	}

	if comp < float64(s.weights.CompletenessIssueBelow) {
		var missing []string
		if !sections.HasSkills() {
			missing = append(missing, "Skills")
		}
		if !sections.HasExperience() {
			missing = append(missing, "Experience")
		}
		if !sections.HasEducation() {
			missing = append(missing, "Education")
		}
		if len(missing) > 0 {
			issues = append(issues, types.Issue{
				Category: types.IssueCompleteness,
				Severity: types.SeverityHigh,
				Message:  fmt.Sprintf("Missing sections: %s", strings.Join(missing, ", ")),
			})
		}
	}

	if length < float64(s.weights.LengthIssueBelow) {
		words := len(strings.Fields(text))
		if words < s.weights.IdealMinWords {
			issues = append(issues, types.Issue{
				Category: types.IssueLength,
				Severity: types.SeverityMedium,
				Message:  "Resume is too short (under 1 page)",
			})
		} else if words > s.weights.LongWords {
			issues = append(issues, types.Issue{
				Category: types.IssueLength,
				Severity: types.SeverityLow,
				Message:  "Resume is too long (over 2 pages)",
			})
		}
	}

	return issues
}

// suggestions maps each issue to one actionable sentence. The mapping is
// fixed so repeated scoring yields repeated advice.
func (s *Scorer) suggestions(issues []types.Issue) []string {
	var out []string
	for _, issue := range issues {
		switch issue.Category {
		case types.IssueKeywords:
			out = append(out, "Add relevant technical keywords like 'API development', 'cloud computing', 'agile methodologies'")
		case types.IssueFormatting:
			out = append(out, "Use consistent date format throughout (e.g., 'Jan 2023 - Present')")
		case types.IssueCompleteness:
			if idx := strings.Index(issue.Message, ": "); idx >= 0 {
				out = append(out, fmt.Sprintf("Add missing section: %s", issue.Message[idx+2:]))
			}
		case types.IssueLength:
			if strings.Contains(issue.Message, "short") {
				out = append(out, "Expand experience descriptions with specific achievements and metrics")
			} else {
				out = append(out, "Condense content to 1-2 pages by removing redundant information")
			}
		}
	}
	return out
}

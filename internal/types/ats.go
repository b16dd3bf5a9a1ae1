package types

// Severity levels for resume issues
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Issue categories reported by the ATS scorer
const (
	IssueKeywords     = "keywords"
	IssueFormatting   = "formatting"
	IssueCompleteness = "completeness"
	IssueLength       = "length"
)

// Issue represents a single fixable problem found in a resume
type Issue struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// AtsBreakdown maps the four scoring categories to their rounded sub-scores
type AtsBreakdown struct {
	Keywords     int `json:"keywords"`
	Formatting   int `json:"formatting"`
	Completeness int `json:"completeness"`
	Length       int `json:"length"`
}

// AtsResult is the outcome of scoring a resume. It is a pure value:
// identical (text, sections) inputs always produce an identical result.
// Narrative is best-effort AI elaboration and may be empty.
type AtsResult struct {
	Score       int          `json:"score"`
	Breakdown   AtsBreakdown `json:"breakdown"`
	Issues      []Issue      `json:"issues"`
	Suggestions []string     `json:"suggestions"`
	Narrative   string       `json:"narrative,omitempty"`
}

// Package ats provides deterministic resume quality scoring modeled after
// Applicant Tracking Systems.
package ats

// Weights centralizes every tunable constant of the scorer: category
// weights, sub-score floors, penalty sizes and issue thresholds. The four
// category weights must sum to 1.0.
type Weights struct {
	// Category weights
	Keywords     float64
	Formatting   float64
	Completeness float64
	Length       float64

	// Keyword scoring
	KeywordBoost float64 // applied to the found/relevant ratio
	KeywordFloor int     // a resume never scores below this on keywords

	// Formatting penalties and floor
	FormattingFloor         int
	PenaltyFewParagraphs    int // fewer than MinParagraphs blank-line blocks
	PenaltyDateFormats      int // more than MaxDateLengths distinct token lengths
	PenaltySpecialChars     int // more than MaxSpecialChars decorative chars
	PenaltyLowercaseHeaders int // more than MaxLowercaseStarts in first 10 lines
	MinParagraphs           int
	MaxDateLengths          int
	MaxSpecialChars         int
	MaxLowercaseStarts      int

	// Length bands (word counts)
	IdealMinWords int
	IdealMaxWords int
	ShortWords    int
	LongWords     int

	// Issue thresholds
	KeywordIssueBelow      int
	FormattingIssueBelow   int
	CompletenessIssueBelow int
	LengthIssueBelow       int
}

// DefaultWeights returns the published scoring configuration.
func DefaultWeights() Weights {
	return Weights{
		Keywords:     0.40,
		Formatting:   0.25,
		Completeness: 0.25,
		Length:       0.10,

		KeywordBoost: 1.3,
		KeywordFloor: 30,

		FormattingFloor:         40,
		PenaltyFewParagraphs:    15,
		PenaltyDateFormats:      10,
		PenaltySpecialChars:     10,
		PenaltyLowercaseHeaders: 10,
		MinParagraphs:           3,
		MaxDateLengths:          2,
		MaxSpecialChars:         20,
		MaxLowercaseStarts:      3,

		IdealMinWords: 400,
		IdealMaxWords: 800,
		ShortWords:    300,
		LongWords:     1200,

		KeywordIssueBelow:      70,
		FormattingIssueBelow:   75,
		CompletenessIssueBelow: 75,
		LengthIssueBelow:       80,
	}
}

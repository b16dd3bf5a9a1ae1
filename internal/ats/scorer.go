package ats

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

var (
	dateTokenRe     = regexp.MustCompile(`\b\d{4}\b|\b\d{2}/\d{4}\b|\b\d{1,2}/\d{1,2}/\d{2,4}\b`)
	decorativeRunes = "★•●◆◇▪▫"
)

// Scorer computes resume quality scores. Score is a pure function of its
// inputs; the keyword table and weights are fixed at construction so
// repeated analysis of unchanged input yields an unchanged result.
type Scorer struct {
	weights Weights
	roles   []RoleKeywords
	general []string
}

// NewScorer returns a scorer with the default weights and keyword table.
func NewScorer() *Scorer {
	return NewScorerWith(DefaultWeights(), defaultRoles(), defaultGeneralKeywords())
}

// NewScorerWith returns a scorer with a custom configuration. Used by tests
// and by deployments that tune the keyword table per industry.
func NewScorerWith(weights Weights, roles []RoleKeywords, general []string) *Scorer {
	return &Scorer{weights: weights, roles: roles, general: general}
}

// Score analyzes a resume and returns the weighted quality result.
// Deterministic and side-effect free. The Narrative field is left empty;
// see Narrate for the optional AI elaboration.
func (s *Scorer) Score(text string, sections types.ParsedSections) types.AtsResult {
	keywordScore := s.scoreKeywords(text)
	formattingScore := s.scoreFormatting(text)
	completenessScore := s.scoreCompleteness(sections)
	lengthScore := s.scoreLength(text)

	overall := keywordScore*s.weights.Keywords +
		formattingScore*s.weights.Formatting +
		completenessScore*s.weights.Completeness +
		lengthScore*s.weights.Length

	issues := s.identifyIssues(keywordScore, formattingScore, completenessScore, lengthScore, text, sections)

	return types.AtsResult{
		Score: round(overall),
		Breakdown: types.AtsBreakdown{
			Keywords:     round(keywordScore),
			Formatting:   round(formattingScore),
			Completeness: round(completenessScore),
			Length:       round(lengthScore),
		},
		Issues:      issues,
		Suggestions: s.suggestions(issues),
	}
}

// scoreKeywords scores keyword relevance for the detected role. The floor
// applies uniformly whenever the relevant keyword set is non-empty; the
// scorer never reports below the floor on keywords alone.
func (s *Scorer) scoreKeywords(text string) float64 {
	lower := strings.ToLower(text)
	relevant := s.relevantKeywords(s.DetectRole(text))
	if len(relevant) == 0 {
		return 0
	}

	found := 0
	for _, kw := range relevant {
		if strings.Contains(lower, kw) {
			found++
		}
	}

	ratio := float64(found) / float64(len(relevant))
	score := math.Min(100, math.Round(ratio*100*s.weights.KeywordBoost))
	return math.Max(float64(s.weights.KeywordFloor), score)
}

// scoreFormatting applies the formatting penalty heuristics.
func (s *Scorer) scoreFormatting(text string) float64 {
	score := 100

	if len(strings.Split(text, "\n\n")) < s.weights.MinParagraphs {
		score -= s.weights.PenaltyFewParagraphs
	}

	lengths := make(map[int]bool)
	for _, tok := range dateTokenRe.FindAllString(text, -1) {
		lengths[len(tok)] = true
	}
	if len(lengths) > s.weights.MaxDateLengths {
		score -= s.weights.PenaltyDateFormats
	}

	special := 0
	for _, r := range text {
		if strings.ContainsRune(decorativeRunes, r) {
			special++
		}
	}
	if special > s.weights.MaxSpecialChars {
		score -= s.weights.PenaltySpecialChars
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	lowercase := 0
	for _, line := range lines {
		if line != "" {
			r := rune(line[0])
			if r >= 'a' && r <= 'z' {
				lowercase++
			}
		}
	}
	if lowercase > s.weights.MaxLowercaseStarts {
		score -= s.weights.PenaltyLowercaseHeaders
	}

	if score < s.weights.FormattingFloor {
		score = s.weights.FormattingFloor
	}
	return float64(score)
}

// scoreCompleteness is the fraction of the four required sections present,
// scaled to 0-100. No floor.
func (s *Scorer) scoreCompleteness(sections types.ParsedSections) float64 {
	found := 0
	for _, present := range []bool{
		sections.HasContact(),
		sections.HasExperience(),
		sections.HasEducation(),
		sections.HasSkills(),
	} {
		if present {
			found++
		}
	}
	return float64(found) / 4 * 100
}

// scoreLength scores the resume word count against the ideal band.
func (s *Scorer) scoreLength(text string) float64 {
	words := len(strings.Fields(text))
	switch {
	case words >= s.weights.IdealMinWords && words <= s.weights.IdealMaxWords:
		return 100
	case words < s.weights.ShortWords:
		return 60
	case words > s.weights.LongWords:
		return 70
	default:
		return 85
	}
}

func round(f float64) int {
	return int(math.Round(f))
}

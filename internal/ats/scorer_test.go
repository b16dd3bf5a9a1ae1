package ats

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/types"
)

// cleanText builds a resume body with no formatting penalties: three
// paragraphs, capitalized line starts, no date tokens, no decorative chars.
func cleanText(totalWords int, include []string) string {
	words := append([]string{"Gopher"}, include...)
	for len(words) < totalWords {
		words = append(words, "Alpha")
	}
	n := len(words)
	parts := []string{
		strings.Join(words[:n/3], " "),
		strings.Join(words[n/3:2*n/3], " "),
		strings.Join(words[2*n/3:], " "),
	}
	return strings.Join(parts, "\n\n")
}

func allSections() types.ParsedSections {
	return types.ParsedSections{
		Contact:    []string{"test@example.com"},
		Experience: []string{"Experience"},
		Education:  []string{"Education"},
		Skills:     []string{"Skills"},
	}
}

func TestScore_HalfKeywordsIdealLength(t *testing.T) {
	keywords := make([]string, 20)
	for i := range keywords {
		keywords[i] = fmt.Sprintf("kw%02d", i+1)
	}
	scorer := NewScorerWith(DefaultWeights(), []RoleKeywords{
		{Role: "tester", Indicators: []string{"gopher"}, Keywords: keywords},
	}, nil)

	// 10 of 20 keywords present, 500 words, clean formatting, all sections.
	result := scorer.Score(cleanText(500, keywords[:10]), allSections())

	assert.Equal(t, 65, result.Breakdown.Keywords) // min(100, 50*1.3)
	assert.Equal(t, 100, result.Breakdown.Formatting)
	assert.Equal(t, 100, result.Breakdown.Completeness)
	assert.Equal(t, 100, result.Breakdown.Length)
	assert.Equal(t, 86, result.Score)
}

func TestScore_Deterministic(t *testing.T) {
	scorer := NewScorer()
	text := cleanText(500, []string{"python", "sql", "docker", "leadership"})
	sections := allSections()

	first := scorer.Score(text, sections)
	second := scorer.Score(text, sections)

	assert.Equal(t, first, second)
}

func TestScoreKeywords_Floor(t *testing.T) {
	scorer := NewScorer()

	// No keyword appears at all; the floor still applies.
	score := scorer.scoreKeywords("Carpentry and woodworking portfolio")
	assert.Equal(t, 30.0, score)
}

func TestScoreKeywords_CappedAt100(t *testing.T) {
	keywords := []string{"kwa", "kwb"}
	scorer := NewScorerWith(DefaultWeights(), []RoleKeywords{
		{Role: "tester", Indicators: []string{"gopher"}, Keywords: keywords},
	}, nil)

	// All keywords found: 100 * 1.3 would exceed the cap.
	score := scorer.scoreKeywords("gopher kwa kwb")
	assert.Equal(t, 100.0, score)
}

func TestScoreFormatting_Penalties(t *testing.T) {
	scorer := NewScorer()

	// Single block, mixed date token lengths, decorative bullets and
	// lowercase line starts. All four penalties apply but the floor holds.
	lines := []string{
		"experience at 2020 company 01/2021",
		"worked on things 12/2020",
		"did more things 2022",
		"and more 03/04/21",
		strings.Repeat("★", 25),
	}
	score := scorer.scoreFormatting(strings.Join(lines, "\n"))
	assert.Equal(t, 55.0, score) // 100 -15 -10 -10 -10
}

func TestScoreFormatting_FloorHolds(t *testing.T) {
	weights := DefaultWeights()
	weights.PenaltyFewParagraphs = 40
	weights.PenaltySpecialChars = 40
	scorer := NewScorerWith(weights, defaultRoles(), defaultGeneralKeywords())

	score := scorer.scoreFormatting(strings.Repeat("★", 25))
	assert.Equal(t, 40.0, score)
}

func TestScoreCompleteness_MissingSections(t *testing.T) {
	scorer := NewScorer()

	sections := types.ParsedSections{
		Contact: []string{"test@example.com"},
		Skills:  []string{"Skills"},
	}
	assert.Equal(t, 50.0, scorer.scoreCompleteness(sections))
	assert.Equal(t, 0.0, scorer.scoreCompleteness(types.ParsedSections{}))
	assert.Equal(t, 100.0, scorer.scoreCompleteness(allSections()))
}

func TestScoreLength_Bands(t *testing.T) {
	scorer := NewScorer()

	assert.Equal(t, 100.0, scorer.scoreLength(cleanText(400, nil)))
	assert.Equal(t, 100.0, scorer.scoreLength(cleanText(800, nil)))
	assert.Equal(t, 60.0, scorer.scoreLength(cleanText(100, nil)))
	assert.Equal(t, 70.0, scorer.scoreLength(cleanText(1500, nil)))
	assert.Equal(t, 85.0, scorer.scoreLength(cleanText(1000, nil)))
}

func TestDetectRole_TieGoesToFirstDeclared(t *testing.T) {
	scorer := NewScorer()

	// "software" hits software_engineer, "data" hits data_scientist: one
	// indicator each, so the earlier table entry wins.
	role := scorer.DetectRole("Software and data work")
	assert.Equal(t, "software_engineer", role)
}

func TestDetectRole_NoIndicators(t *testing.T) {
	scorer := NewScorer()
	assert.Equal(t, RoleGeneral, scorer.DetectRole("Carpentry portfolio"))
}

func TestDetectRole_HigherDensityWins(t *testing.T) {
	scorer := NewScorer()

	role := scorer.DetectRole("Data scientist with machine learning and analytics background, also an engineer")
	assert.Equal(t, "data_scientist", role)
}

func TestIdentifyIssues_MissingSectionsMessage(t *testing.T) {
	scorer := NewScorer()

	sections := types.ParsedSections{Contact: []string{"test@example.com"}}
	result := scorer.Score(cleanText(500, nil), sections)

	var found *types.Issue
	for i := range result.Issues {
		if result.Issues[i].Category == types.IssueCompleteness {
			found = &result.Issues[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, types.SeverityHigh, found.Severity)
	assert.Equal(t, "Missing sections: Skills, Experience, Education", found.Message)
}

func TestSuggestions_OnePerIssue(t *testing.T) {
	scorer := NewScorer()

	// Short resume with no keywords and two missing sections triggers
	// keyword, completeness and length issues.
	sections := types.ParsedSections{
		Contact:    []string{"test@example.com"},
		Experience: []string{"Experience"},
	}
	result := scorer.Score(cleanText(100, nil), sections)

	require.NotEmpty(t, result.Issues)
	assert.Len(t, result.Suggestions, len(result.Issues))
	assert.Contains(t, result.Suggestions, "Add missing section: Skills, Education")
	assert.Contains(t, result.Suggestions, "Expand experience descriptions with specific achievements and metrics")
}

func TestScore_NarrativeLeftEmpty(t *testing.T) {
	scorer := NewScorer()
	result := scorer.Score(cleanText(500, nil), allSections())
	assert.Empty(t, result.Narrative)
}

package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownKey(t *testing.T) {
	template, err := Get("interview.json", "generate_behavioral")
	require.NoError(t, err)
	assert.Contains(t, template, "{{.Count}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("interview.json", "nonexistent")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "any")
	assert.Error(t, err)
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	result := Format("Generate {{.Count}} questions about {{.Language}}", map[string]string{
		"Count":    "5",
		"Language": "Python",
	})
	assert.Equal(t, "Generate 5 questions about Python", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestEveryInterviewPromptLoads(t *testing.T) {
	keys := []string{
		"generate_behavioral", "generate_technical", "generate_general",
		"evaluate_behavioral", "evaluate_technical", "evaluate_general",
	}
	for _, key := range keys {
		template, err := Get("interview.json", key)
		require.NoError(t, err, key)
		assert.NotEmpty(t, template, key)
	}
}

package ats

import (
	"context"
	"strconv"
	"strings"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/prompts"
	"github.com/jonathan/interview-coach/internal/types"
)

// narrativeTextLimit caps the resume excerpt sent to the language service.
const narrativeTextLimit = 2000

// Narrate requests an optional AI elaboration of a scoring result. Failure
// of the language service never blocks the numeric result: a nil client or
// any error simply yields an empty narrative.
func Narrate(ctx context.Context, client llm.Client, text string, result types.AtsResult) string {
	if client == nil {
		return ""
	}

	excerpt := text
	if len(excerpt) > narrativeTextLimit {
		excerpt = excerpt[:narrativeTextLimit]
	}

	var issueLines []string
	for _, issue := range result.Issues {
		issueLines = append(issueLines, "- "+issue.Message)
	}

	prompt := prompts.Format(prompts.MustGet("ats.json", "narrative"), map[string]string{
		"Text":   excerpt,
		"Score":  strconv.Itoa(result.Score),
		"Issues": strings.Join(issueLines, "\n"),
	})

	narrative, err := client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(narrative)
}

package usecase

import (
	"context"
	"strings"

	"assistant-widget/pkg/gemini"
)

// extractTopic derives a short topic label from the trailing window.
// Best-effort enrichment: with fewer than two turns there is nothing to
// summarize and the LLM call is skipped; on failure the error is logged
// and an empty topic returned, never propagated.
func (uc *implUseCase) extractTopic(ctx context.Context, llm LLM, window []string, question string) string {
	if len(window) < 2 {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, uc.llmTimeout)
	defer cancel()

	resp, err := llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{{
			Role:  "user",
			Parts: []gemini.Part{{Text: gemini.BuildTopicPrompt(window, question)}},
		}},
	})
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.extractTopic: %v", err)
		return ""
	}

	return strings.TrimSpace(resp.Text())
}

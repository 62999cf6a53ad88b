package usecase

import (
	"context"
	"strings"

	"assistant-widget/internal/assistant"
	"assistant-widget/pkg/gemini"
)

var meetingKeywords = []string{"meeting", "call"}

// classifyIntent runs the single task-detection completion and parses its
// line protocol. Any failure degrades to "not a task": answering normally
// is always preferred over mis-firing a task.
func (uc *implUseCase) classifyIntent(ctx context.Context, llm LLM, question string, window []string) assistant.Intent {
	ctx, cancel := context.WithTimeout(ctx, uc.llmTimeout)
	defer cancel()

	resp, err := llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{{
			Role:  "user",
			Parts: []gemini.Part{{Text: gemini.BuildIntentPrompt(question, window)}},
		}},
	})
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.classifyIntent: %v", err)
		return assistant.Intent{}
	}

	return parseIntent(resp.Text(), question)
}

// parseIntent decodes the first-line YES/NO convention. The string
// protocol never leaves this file.
func parseIntent(raw, question string) assistant.Intent {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) == 0 {
		return assistant.Intent{}
	}

	verdict := strings.ToUpper(strings.TrimSpace(lines[0]))
	if !strings.HasPrefix(verdict, "YES") {
		return assistant.Intent{}
	}

	description := strings.TrimSpace(strings.Join(lines[1:], " "))
	meeting := hasMeetingKeyword(description) || hasMeetingKeyword(question)

	return assistant.Intent{
		IsTask:              true,
		IsMeetingRequest:    meeting,
		TaskDescription:     description,
		RequireConfirmation: meeting,
	}
}

func hasMeetingKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range meetingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

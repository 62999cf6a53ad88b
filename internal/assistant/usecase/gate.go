package usecase

import (
	"context"
	"regexp"
	"strings"

	"assistant-widget/internal/assistant"
	"assistant-widget/internal/model"
)

var topicPattern = regexp.MustCompile(`about (.*?)[?.]`)

// checkGate reconstructs the two-turn confirmation state machine from the
// trailing window. It fires only when the immediately preceding turn is a
// bot confirmation prompt and the current message is a bare affirmation.
// The topic comes from the stored prompt text, not from a fresh LLM call.
func (uc *implUseCase) checkGate(ctx context.Context, history []model.Turn, message string) assistant.GateResult {
	if len(history) == 0 {
		return assistant.GateResult{}
	}

	prev := history[len(history)-1]
	if prev.Type != model.TurnBot || !containsMarker(prev.Content) {
		return assistant.GateResult{}
	}
	if !isAffirmation(message) {
		return assistant.GateResult{}
	}

	topic, ok := topicFromPrompt(prev.Content)
	if !ok {
		uc.l.Warnf(ctx, "assistant.usecase.checkGate: no topic capture in confirmation prompt %q", prev.Content)
		topic = assistant.FallbackTopic
	}
	return assistant.GateResult{Confirmed: true, Topic: topic}
}

func containsMarker(text string) bool {
	lower := strings.ToLower(text)
	for _, m := range assistant.ConfirmationMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// isAffirmation accepts a keyword as the whole message or as its leading
// or trailing word. "yesterday" must not count, so matches are checked at
// word boundaries only.
func isAffirmation(message string) bool {
	msg := strings.ToLower(strings.TrimSpace(message))
	msg = strings.Trim(msg, ".!,")
	for _, kw := range assistant.AffirmationKeywords {
		if msg == kw ||
			strings.HasPrefix(msg, kw+" ") ||
			strings.HasPrefix(msg, kw+",") ||
			strings.HasSuffix(msg, " "+kw) {
			return true
		}
	}
	return false
}

// topicFromPrompt captures the text between "about " and the next "?" or
// "." in the stored confirmation-prompt text.
func topicFromPrompt(text string) (string, bool) {
	m := topicPattern.FindStringSubmatch(text)
	if len(m) < 2 || strings.TrimSpace(m[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

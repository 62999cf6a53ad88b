package usecase

import (
	"fmt"

	"assistant-widget/internal/model"
)

// formatWindow renders turns as speaker-labeled lines for prompt assembly.
func formatWindow(turns []model.Turn) []string {
	out := make([]string, 0, len(turns))
	for _, t := range turns {
		label := "Visitor"
		if t.Type == model.TurnBot {
			label = "Assistant"
		}
		out = append(out, fmt.Sprintf("%s: %s", label, t.Content))
	}
	return out
}

// formatContributions renders approved Q&A pairs for the knowledge base
// section of the answer prompt.
func formatContributions(cs []model.Contribution) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		if c.Status != model.ContributionApproved {
			continue
		}
		out = append(out, fmt.Sprintf("Q: %s A: %s", c.Question, c.Answer))
	}
	return out
}

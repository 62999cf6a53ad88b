package assistant

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GetAnswer runs the full chat turn: confirmation gate, intent
	// classification, task creation, or grounded answer generation.
	// Chat-flow failures come back as user-facing reply text, never as
	// an error; only input validation and owner lookup can fail hard.
	GetAnswer(ctx context.Context, ip ChatInput) (ChatOutput, error)
}

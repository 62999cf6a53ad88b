package usecase

import (
	"context"
	"time"

	"assistant-widget/internal/assistant"
	"assistant-widget/internal/task"
	userRepo "assistant-widget/internal/user/repository"
	"assistant-widget/pkg/gemini"
	pkgLog "assistant-widget/pkg/log"
)

// historyWindow bounds how many trailing turns the gate and the prompts
// ever look at, regardless of what the widget sends.
const historyWindow = 6

const defaultLLMTimeout = 30 * time.Second

// LLM is the completion surface the orchestrator needs. Satisfied by
// *gemini.Client; tests substitute a fake.
type LLM interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

// LLMFactory builds a client for one owning user's API key.
type LLMFactory func(apiKey string) LLM

type implUseCase struct {
	l          pkgLog.Logger
	users      userRepo.Repository
	tasks      task.UseCase
	newLLM     LLMFactory
	llmTimeout time.Duration
}

var _ assistant.UseCase = &implUseCase{}

// New creates a new assistant UseCase instance.
func New(l pkgLog.Logger, users userRepo.Repository, tasks task.UseCase, newLLM LLMFactory) *implUseCase {
	if newLLM == nil {
		newLLM = func(apiKey string) LLM { return gemini.NewClient(apiKey) }
	}
	return &implUseCase{
		l:          l,
		users:      users,
		tasks:      tasks,
		newLLM:     newLLM,
		llmTimeout: defaultLLMTimeout,
	}
}

// SetLLMTimeout overrides the per-call upstream timeout.
func (uc *implUseCase) SetLLMTimeout(d time.Duration) {
	if d > 0 {
		uc.llmTimeout = d
	}
}

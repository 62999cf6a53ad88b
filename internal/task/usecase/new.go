package usecase

import (
	"time"

	"assistant-widget/internal/task"
	"assistant-widget/internal/task/repository"
	userRepo "assistant-widget/internal/user/repository"
	pkgLog "assistant-widget/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	userRepo userRepo.Repository
	clock    func() time.Time
}

var _ task.UseCase = &implUseCase{}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, users userRepo.Repository) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		userRepo: users,
		clock:    time.Now,
	}
}

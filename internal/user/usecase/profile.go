package usecase

import (
	"context"
	"errors"

	"assistant-widget/internal/model"
	"assistant-widget/internal/user"
	"assistant-widget/internal/user/repository"
)

func (uc *implUseCase) Get(ctx context.Context, username string) (model.User, error) {
	return uc.repo.Get(ctx, username)
}

func (uc *implUseCase) Exists(ctx context.Context, username string) (bool, error) {
	_, err := uc.repo.Get(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (uc *implUseCase) Count(ctx context.Context) (int64, error) {
	return uc.repo.Count(ctx)
}

func (uc *implUseCase) GetPrompt(ctx context.Context, username string) (string, error) {
	u, err := uc.repo.Get(ctx, username)
	if err != nil {
		return "", err
	}
	return u.Prompt, nil
}

func (uc *implUseCase) UpdatePrompt(ctx context.Context, ip user.UpdatePromptInput) error {
	return uc.repo.Update(ctx, ip.Username, repository.UpdateOption{Prompt: &ip.Content})
}

func (uc *implUseCase) GetUserPrompt(ctx context.Context, username string) (string, error) {
	u, err := uc.repo.Get(ctx, username)
	if err != nil {
		return "", err
	}
	return u.UserPrompt, nil
}

func (uc *implUseCase) UpdateUserPrompt(ctx context.Context, ip user.UpdatePromptInput) error {
	return uc.repo.Update(ctx, ip.Username, repository.UpdateOption{UserPrompt: &ip.Content})
}

func (uc *implUseCase) GetDailyTasks(ctx context.Context, username string) (model.DailyTasks, error) {
	u, err := uc.repo.Get(ctx, username)
	if err != nil {
		return model.DailyTasks{}, err
	}
	return u.DailyTasks, nil
}

func (uc *implUseCase) UpdateDailyTasks(ctx context.Context, ip user.UpdateDailyTasksInput) error {
	dt := model.DailyTasks{
		Content:     ip.Content,
		LastUpdated: uc.clock().UTC(),
	}
	return uc.repo.Update(ctx, ip.Username, repository.UpdateOption{DailyTasks: &dt})
}

package user

import (
	"context"

	"assistant-widget/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, ip RegisterInput) (RegisterOutput, error)
	Login(ctx context.Context, ip LoginInput) (LoginOutput, error)
	VerifyPassword(ctx context.Context, ip LoginInput) error

	Get(ctx context.Context, username string) (model.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	Count(ctx context.Context) (int64, error)

	GoogleAuthURL(ctx context.Context, username string) (string, error)
	LinkGoogle(ctx context.Context, ip LinkGoogleInput) error

	GetPrompt(ctx context.Context, username string) (string, error)
	UpdatePrompt(ctx context.Context, ip UpdatePromptInput) error
	GetUserPrompt(ctx context.Context, username string) (string, error)
	UpdateUserPrompt(ctx context.Context, ip UpdatePromptInput) error

	GetDailyTasks(ctx context.Context, username string) (model.DailyTasks, error)
	UpdateDailyTasks(ctx context.Context, ip UpdateDailyTasksInput) error

	SubmitContribution(ctx context.Context, ip SubmitContributionInput) (model.Contribution, error)
	ListContributions(ctx context.Context, username string) ([]model.Contribution, error)
	ReviewContribution(ctx context.Context, ip ReviewContributionInput) error
}

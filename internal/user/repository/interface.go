package repository

import (
	"context"

	"assistant-widget/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, u model.User) error
	Get(ctx context.Context, username string) (model.User, error)
	Update(ctx context.Context, username string, opt UpdateOption) error
	Count(ctx context.Context) (int64, error)

	CreateContribution(ctx context.Context, username string, c model.Contribution) (model.Contribution, error)
	ListContributions(ctx context.Context, username string) ([]model.Contribution, error)
	UpdateContributionStatus(ctx context.Context, username, id string, status model.ContributionStatus) error
}

package repository

import (
	"context"

	"assistant-widget/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, username string, t model.Task) (model.Task, error)
	List(ctx context.Context, username string) ([]model.Task, error)
	GetByUniqueID(ctx context.Context, username, uniqueTaskID string) (model.Task, error)
	GetByQuestion(ctx context.Context, username, question string) (model.Task, error)
	Update(ctx context.Context, username, id string, opt UpdateOption) error
	Delete(ctx context.Context, username, id string) error
}

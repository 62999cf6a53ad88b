package task

import (
	"context"

	"assistant-widget/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, ip CreateInput) (CreateOutput, error)
	List(ctx context.Context, username string) ([]model.Task, error)
	GetByUniqueID(ctx context.Context, username, uniqueTaskID string) (model.Task, error)
	GetByQuestion(ctx context.Context, username, question string) (model.Task, error)
	UpdateStatus(ctx context.Context, ip UpdateStatusInput) (model.Task, error)
	UpdateMeeting(ctx context.Context, ip UpdateMeetingInput) (model.Task, error)
	Delete(ctx context.Context, username, uniqueTaskID string) error
}

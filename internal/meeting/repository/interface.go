package repository

import (
	"context"

	"assistant-widget/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, r model.MeetingRecord) (model.MeetingRecord, error)
	List(ctx context.Context, username string) ([]model.MeetingRecord, error)
	Delete(ctx context.Context, id string) error
}

package usecase

import (
	"context"
	"time"

	"assistant-widget/internal/meeting"
	"assistant-widget/internal/meeting/repository"
	"assistant-widget/internal/task"
	userRepo "assistant-widget/internal/user/repository"
	"assistant-widget/pkg/gcalendar"
	pkgLog "assistant-widget/pkg/log"
)

const defaultCalendarTimeout = 30 * time.Second

// Calendar is the event-creation surface the bridge needs. Satisfied by
// *gcalendar.Client; tests substitute a fake.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// CalendarFactory builds an organizer-scoped calendar client from a
// stored refresh token.
type CalendarFactory func(ctx context.Context, refreshToken string) (Calendar, error)

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	users       userRepo.Repository
	tasks       task.UseCase
	newCalendar CalendarFactory
	timezone    string
	timeout     time.Duration
	clock       func() time.Time
}

var _ meeting.UseCase = &implUseCase{}

// New creates a new meeting UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	users userRepo.Repository,
	tasks task.UseCase,
	newCalendar CalendarFactory,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		users:       users,
		tasks:       tasks,
		newCalendar: newCalendar,
		timezone:    timezone,
		timeout:     defaultCalendarTimeout,
		clock:       time.Now,
	}
}

// NewCalendarFactory adapts the OAuth client registration into the
// factory New expects.
func NewCalendarFactory(cfg gcalendar.OAuthConfig) CalendarFactory {
	return func(ctx context.Context, refreshToken string) (Calendar, error) {
		return gcalendar.NewClientFromTokenSource(ctx, cfg.TokenSource(ctx, refreshToken))
	}
}

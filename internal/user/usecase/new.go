package usecase

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"assistant-widget/internal/user"
	"assistant-widget/internal/user/repository"
	pkgLog "assistant-widget/pkg/log"
)

// GoogleOAuth is the consent/exchange surface of the calendar-linking
// flow. Satisfied by gcalendar.OAuthConfig; tests substitute a fake.
type GoogleOAuth interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	google GoogleOAuth
	clock  func() time.Time
}

var _ user.UseCase = &implUseCase{}

// New creates a new user UseCase instance. google may be nil when no
// OAuth client is registered; linking then fails with
// ErrGoogleNotConfigured.
func New(l pkgLog.Logger, repo repository.Repository, google GoogleOAuth) *implUseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		google: google,
		clock:  time.Now,
	}
}

package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"assistant-widget/internal/model"
	"assistant-widget/internal/user"
	"assistant-widget/internal/user/repository"
	"assistant-widget/internal/user/usecase"
)

type mockGoogleOAuth struct {
	authURLFunc  func(state string) string
	exchangeFunc func(code string) (*oauth2.Token, error)
}

func (m *mockGoogleOAuth) AuthCodeURL(state string) string {
	if m.authURLFunc != nil {
		return m.authURLFunc(state)
	}
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (m *mockGoogleOAuth) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if m.exchangeFunc != nil {
		return m.exchangeFunc(code)
	}
	return &oauth2.Token{AccessToken: "at", RefreshToken: "rt"}, nil
}

func TestGoogleAuthURL(t *testing.T) {
	t.Run("Not Configured", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockUserRepo{}, nil)
		_, err := uc.GoogleAuthURL(context.Background(), "alice")
		if !errors.Is(err, user.ErrGoogleNotConfigured) {
			t.Errorf("expected ErrGoogleNotConfigured, got %v", err)
		}
	})

	t.Run("Unknown User", func(t *testing.T) {
		repo := &mockUserRepo{
			getFunc: func(username string) (model.User, error) { return model.User{}, user.ErrUserNotFound },
		}
		uc := usecase.New(&mockLogger{}, repo, &mockGoogleOAuth{})
		_, err := uc.GoogleAuthURL(context.Background(), "ghost")
		if !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("State Carries Username", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockUserRepo{}, &mockGoogleOAuth{})
		url, err := uc.GoogleAuthURL(context.Background(), "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(url, "state=alice") {
			t.Errorf("expected username in state, got %q", url)
		}
	})
}

func TestLinkGoogle(t *testing.T) {
	t.Run("Stores Token Set", func(t *testing.T) {
		expiry := time.Date(2025, 3, 7, 16, 0, 0, 0, time.UTC)
		var patched repository.UpdateOption
		repo := &mockUserRepo{
			updateFunc: func(username string, opt repository.UpdateOption) error {
				patched = opt
				return nil
			},
		}
		oauth := &mockGoogleOAuth{
			exchangeFunc: func(code string) (*oauth2.Token, error) {
				if code != "auth-code" {
					t.Errorf("unexpected code %q", code)
				}
				return &oauth2.Token{AccessToken: "at", RefreshToken: "rt", Expiry: expiry}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, oauth)
		err := uc.LinkGoogle(context.Background(), user.LinkGoogleInput{Username: "alice", Code: "auth-code"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patched.Google == nil {
			t.Fatalf("expected google patch, got none")
		}
		if patched.Google.RefreshToken != "rt" || patched.Google.AccessToken != "at" {
			t.Errorf("unexpected token set %+v", patched.Google)
		}
		if !patched.Google.TokenExpiry.Equal(expiry) {
			t.Errorf("expected expiry kept, got %v", patched.Google.TokenExpiry)
		}
	})

	t.Run("Keeps Old Refresh Token On Re-Link", func(t *testing.T) {
		var patched repository.UpdateOption
		repo := &mockUserRepo{
			getFunc: func(username string) (model.User, error) {
				return model.User{
					Username: username,
					Google:   model.GoogleLink{RefreshToken: "old-rt"},
				}, nil
			},
			updateFunc: func(username string, opt repository.UpdateOption) error {
				patched = opt
				return nil
			},
		}
		oauth := &mockGoogleOAuth{
			exchangeFunc: func(code string) (*oauth2.Token, error) {
				return &oauth2.Token{AccessToken: "at2"}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, oauth)
		if err := uc.LinkGoogle(context.Background(), user.LinkGoogleInput{Username: "alice", Code: "c"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patched.Google == nil || patched.Google.RefreshToken != "old-rt" {
			t.Errorf("expected old refresh token preserved, got %+v", patched.Google)
		}
	})

	t.Run("Bad Code", func(t *testing.T) {
		oauth := &mockGoogleOAuth{
			exchangeFunc: func(code string) (*oauth2.Token, error) {
				return nil, errors.New("oauth2: invalid_grant")
			},
		}
		uc := usecase.New(&mockLogger{}, &mockUserRepo{}, oauth)
		err := uc.LinkGoogle(context.Background(), user.LinkGoogleInput{Username: "alice", Code: "expired"})
		if !errors.Is(err, user.ErrGoogleCode) {
			t.Errorf("expected ErrGoogleCode, got %v", err)
		}
	})

	t.Run("Not Configured", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockUserRepo{}, nil)
		err := uc.LinkGoogle(context.Background(), user.LinkGoogleInput{Username: "alice", Code: "c"})
		if !errors.Is(err, user.ErrGoogleNotConfigured) {
			t.Errorf("expected ErrGoogleNotConfigured, got %v", err)
		}
	})
}

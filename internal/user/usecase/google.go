package usecase

import (
	"context"
	"fmt"

	"assistant-widget/internal/model"
	"assistant-widget/internal/user"
	"assistant-widget/internal/user/repository"
)

// GoogleAuthURL starts the calendar-linking flow for an owner. The OAuth
// state carries the username so the callback can find the account; there
// is no server-side session to correlate against.
func (uc *implUseCase) GoogleAuthURL(ctx context.Context, username string) (string, error) {
	if uc.google == nil {
		return "", user.ErrGoogleNotConfigured
	}
	if _, err := uc.repo.Get(ctx, username); err != nil {
		return "", err
	}
	return uc.google.AuthCodeURL(username), nil
}

// LinkGoogle exchanges the consent-callback code and stores the token set
// on the owner document. Re-linking without a fresh refresh token keeps
// the previously stored one.
func (uc *implUseCase) LinkGoogle(ctx context.Context, ip user.LinkGoogleInput) error {
	if uc.google == nil {
		return user.ErrGoogleNotConfigured
	}

	u, err := uc.repo.Get(ctx, ip.Username)
	if err != nil {
		return err
	}

	tok, err := uc.google.Exchange(ctx, ip.Code)
	if err != nil {
		uc.l.Warnf(ctx, "user.usecase.LinkGoogle: exchange for %s: %v", ip.Username, err)
		return fmt.Errorf("%w: %v", user.ErrGoogleCode, err)
	}

	link := model.GoogleLink{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenExpiry:  tok.Expiry,
	}
	if link.RefreshToken == "" {
		link.RefreshToken = u.Google.RefreshToken
	}

	if err := uc.repo.Update(ctx, ip.Username, repository.UpdateOption{Google: &link}); err != nil {
		uc.l.Errorf(ctx, "user.usecase.LinkGoogle: %v", err)
		return err
	}

	uc.l.Infof(ctx, "user.usecase.LinkGoogle: calendar linked for %s", ip.Username)
	return nil
}

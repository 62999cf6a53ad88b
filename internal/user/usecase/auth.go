package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"assistant-widget/internal/model"
	"assistant-widget/internal/user"
)

func (uc *implUseCase) Register(ctx context.Context, ip user.RegisterInput) (user.RegisterOutput, error) {
	ip.Username = strings.TrimSpace(ip.Username)
	if ip.Username == "" || ip.Password == "" || ip.Email == "" {
		return user.RegisterOutput{}, user.ErrFieldRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(ip.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Register: hash: %v", err)
		return user.RegisterOutput{}, err
	}

	u := model.User{
		Name:         ip.Name,
		Email:        ip.Email,
		MobileNo:     ip.MobileNo,
		Username:     ip.Username,
		PasswordHash: string(hash),
		GeminiAPIKey: ip.GeminiAPIKey,
		Plan:         model.PlanFree,
		Google:       ip.Google,
		CreatedAt:    uc.clock().UTC(),
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			return user.RegisterOutput{}, err
		}
		uc.l.Errorf(ctx, "user.usecase.Register: %v", err)
		return user.RegisterOutput{}, err
	}

	uc.l.Infof(ctx, "user.usecase.Register: registered %s", u.Username)
	return user.RegisterOutput{Username: u.Username}, nil
}

func (uc *implUseCase) Login(ctx context.Context, ip user.LoginInput) (user.LoginOutput, error) {
	u, err := uc.repo.Get(ctx, ip.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.LoginOutput{}, user.ErrInvalidCredentials
		}
		return user.LoginOutput{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(ip.Password)) != nil {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	return user.LoginOutput{Username: u.Username, Plan: u.Plan}, nil
}

func (uc *implUseCase) VerifyPassword(ctx context.Context, ip user.LoginInput) error {
	_, err := uc.Login(ctx, ip)
	return err
}

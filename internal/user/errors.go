package user

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrContributionNotFound = errors.New("contribution not found")
	ErrInvalidStatus        = errors.New("invalid contribution status")
	ErrFieldRequired        = errors.New("required field missing")
	ErrGoogleNotConfigured  = errors.New("google oauth is not configured")
	ErrGoogleCode           = errors.New("invalid or expired authorization code")
)

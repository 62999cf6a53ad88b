package http

import (
	"errors"

	"assistant-widget/internal/user"
	pkgErrors "assistant-widget/pkg/errors"
)

var errInternal = pkgErrors.NewHTTPError(500, "internal server error")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(404, "user not found")
	case errors.Is(err, user.ErrUsernameTaken):
		return pkgErrors.NewHTTPError(409, "username already taken")
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(401, "invalid username or password")
	case errors.Is(err, user.ErrContributionNotFound):
		return pkgErrors.NewHTTPError(404, "contribution not found")
	case errors.Is(err, user.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(400, "invalid contribution status")
	case errors.Is(err, user.ErrFieldRequired):
		return pkgErrors.NewHTTPError(400, "required field missing")
	case errors.Is(err, user.ErrGoogleNotConfigured):
		return pkgErrors.NewHTTPError(503, "google oauth is not configured")
	case errors.Is(err, user.ErrGoogleCode):
		return pkgErrors.NewHTTPError(400, "invalid or expired authorization code")
	default:
		return errInternal
	}
}

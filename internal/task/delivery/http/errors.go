package http

import (
	"errors"

	"assistant-widget/internal/task"
	pkgErrors "assistant-widget/pkg/errors"
)

var errInternal = pkgErrors.NewHTTPError(500, "internal server error")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	case errors.Is(err, task.ErrUserNotFound):
		return pkgErrors.NewHTTPError(404, "user not found")
	case errors.Is(err, task.ErrEmptyQuestion):
		return pkgErrors.NewHTTPError(400, "task question is required")
	case errors.Is(err, task.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(400, "invalid task status")
	case errors.Is(err, task.ErrInvalidTrackingID):
		return pkgErrors.NewHTTPError(400, "tracking id must be 14 digits")
	case errors.Is(err, task.ErrNoMeeting):
		return pkgErrors.NewHTTPError(400, "task has no meeting sub-record")
	case errors.Is(err, task.ErrMeetingTransition):
		return pkgErrors.NewHTTPError(409, "meeting status transition not allowed")
	default:
		return errInternal
	}
}

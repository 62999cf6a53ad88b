package task

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmptyQuestion     = errors.New("task question is empty")
	ErrInvalidStatus     = errors.New("invalid task status")
	ErrInvalidTrackingID = errors.New("invalid tracking id")
	ErrNoMeeting         = errors.New("task has no meeting sub-record")
	ErrMeetingTransition = errors.New("meeting status transition not allowed")
)

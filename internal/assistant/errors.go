package assistant

import "errors"

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrUserNotFound = errors.New("user not found")
)

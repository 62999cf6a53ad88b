package meeting

import "errors"

var (
	// ErrOrganizerNotLinked means the owner has no stored calendar
	// refresh token. Precondition failure, nothing was created.
	ErrOrganizerNotLinked = errors.New("organizer has no linked calendar")

	// ErrPartialScheduling means the calendar event was created but the
	// task linkage update did not apply. The returned output is still
	// valid; the caller decides how to surface the split state.
	ErrPartialScheduling = errors.New("event created but task linkage failed")

	ErrUserNotFound   = errors.New("user not found")
	ErrRecordNotFound = errors.New("meeting record not found")
	ErrInvalidWindow  = errors.New("end time must be after start time")
	ErrNoAttendees    = errors.New("at least one attendee email is required")
)

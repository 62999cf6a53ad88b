package taskid

import (
	"fmt"
	"regexp"
	"time"
)

// Tracking ids are 14 ASCII digits: SSMMHHDDMMYYYY. The format is part of the
// external contract (admin UI, scheduling callback) and must stay bit-exact.
var trackingIDPattern = regexp.MustCompile(`^\d{14}$`)

// Format renders the tracking id for the given wall-clock time.
func Format(t time.Time) string {
	return fmt.Sprintf("%02d%02d%02d%02d%02d%04d",
		t.Second(), t.Minute(), t.Hour(), t.Day(), int(t.Month()), t.Year())
}

// New returns a tracking id for the current time.
// Two tasks created within the same second by the same user collide; the
// storage identity is a uuid, this id is the human-facing correlation key.
func New() string {
	return Format(time.Now())
}

// Valid reports whether s is a well-formed tracking id.
func Valid(s string) bool {
	return trackingIDPattern.MatchString(s)
}

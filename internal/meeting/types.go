package meeting

import (
	"time"

	"assistant-widget/internal/model"
)

// ScheduleInput drives one calendar scheduling pass for a pending meeting
// task. TaskID is the task's 14-digit tracking id; UserEmails lists
// attendees with the organizer first.
type ScheduleInput struct {
	TaskID      string
	Username    string
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	UserEmails  []string
}

// ScheduleOutput reports the calendar side effect plus whether the
// originating task's meeting sub-record was linked. TaskLinked false with
// a created event is the split-success state: the event exists and cannot
// be rolled back, only the linkage needs manual reconciliation.
type ScheduleOutput struct {
	MeetLink   string
	EventLink  string
	Record     model.MeetingRecord
	TaskLinked bool
}

// UpdateInfoInput attaches post-meeting artifacts to the task's meeting
// sub-record and completes its lifecycle.
type UpdateInfoInput struct {
	Username               string
	TaskID                 string
	RawTranscript          string
	AdjustedTranscript     string
	MeetingMinutesAndTasks string
}

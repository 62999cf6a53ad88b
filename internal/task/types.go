package task

import (
	"assistant-widget/internal/model"
)

// CreateInput creates a task record under the owning user. UniqueTaskID
// and Status are optional; when empty the use case generates a tracking
// id and defaults the status to inprogress.
type CreateInput struct {
	Username        string
	UniqueTaskID    string
	TaskQuestion    string
	TaskDescription string
	TopicContext    string
	Status          model.TaskStatus
	Asker           *model.UserSnapshot
	Meeting         *model.MeetingInfo
}

// CreateOutput is the result of task creation.
type CreateOutput struct {
	Task model.Task
}

// UpdateStatusInput patches the lifecycle status of a task found by its
// tracking id, falling back to the verbatim triggering question when
// TaskQuestion is set and the tracking id matches nothing.
type UpdateStatusInput struct {
	Username     string
	UniqueTaskID string
	TaskQuestion string
	Status       model.TaskStatus
}

// UpdateMeetingInput merges fields into a task's meeting sub-record.
// Nil pointers leave the existing value in place.
type UpdateMeetingInput struct {
	Username     string
	UniqueTaskID string

	Status         *model.MeetingStatus
	Title          *string
	Description    *string
	Date           *string
	Time           *string
	Duration       *string
	MeetingLink    *string
	MeetingMinutes *string
	MeetingSummary *string
	MeetingRawData *string
}

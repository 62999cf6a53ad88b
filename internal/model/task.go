package model

import "time"

// TaskStatus is the follow-up lifecycle of a task, driven by the owner
// from the admin panel.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "inprogress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// MeetingStatus is the scheduling lifecycle of a task's meeting sub-record.
// It moves forward only: pending -> scheduled -> completed, with cancelled
// reachable from any non-terminal state, and is independent of the parent
// task status. A pending meeting may complete directly when it was held
// off-calendar and only the minutes are filed afterwards.
type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "pending"
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// CanTransitionTo reports whether the meeting status may move to next.
// Terminal states accept no further transitions and the lifecycle never
// regresses.
func (s MeetingStatus) CanTransitionTo(next MeetingStatus) bool {
	switch s {
	case MeetingStatusPending:
		return next == MeetingStatusScheduled || next == MeetingStatusCompleted ||
			next == MeetingStatusCancelled
	case MeetingStatusScheduled:
		return next == MeetingStatusCompleted || next == MeetingStatusCancelled
	default:
		return false
	}
}

// UserSnapshot is a minimized copy of the asking user taken at task
// creation. It is denormalized on purpose: later profile edits must not
// rewrite historic tasks.
type UserSnapshot struct {
	Name     string `json:"name" firestore:"name"`
	Email    string `json:"email" firestore:"email"`
	MobileNo string `json:"mobileNo" firestore:"mobileNo"`
	Username string `json:"username" firestore:"username"`
	Prompt   string `json:"prompt,omitempty" firestore:"prompt,omitempty"`
}

// MeetingInfo is the optional meeting sub-record of a task, present only
// when the task was detected as a meeting/call request.
type MeetingInfo struct {
	Title          string        `json:"title" firestore:"title"`
	Description    string        `json:"description" firestore:"description"`
	Date           string        `json:"date,omitempty" firestore:"date,omitempty"`
	Time           string        `json:"time,omitempty" firestore:"time,omitempty"`
	Duration       string        `json:"duration,omitempty" firestore:"duration,omitempty"`
	Status         MeetingStatus `json:"status" firestore:"status"`
	MeetingLink    string        `json:"meetingLink,omitempty" firestore:"meetingLink,omitempty"`
	MeetingRawData string        `json:"meetingRawData,omitempty" firestore:"meetingRawData,omitempty"`
	MeetingMinutes string        `json:"meetingMinutes,omitempty" firestore:"meetingMinutes,omitempty"`
	MeetingSummary string        `json:"meetingSummary,omitempty" firestore:"meetingSummary,omitempty"`
}

// Task is one detected follow-up obligation tied to a conversation with
// the owning user's assistant.
//
// ID is the storage document id (uuid). UniqueTaskID is the external
// 14-digit correlation key used by the admin UI and the scheduling
// callback. Both are immutable after creation, as is TaskQuestion (the
// verbatim triggering message).
type Task struct {
	ID              string        `json:"id" firestore:"-"`
	UniqueTaskID    string        `json:"uniqueTaskId" firestore:"uniqueTaskId"`
	TaskQuestion    string        `json:"taskQuestion" firestore:"taskQuestion"`
	TaskDescription string        `json:"taskDescription" firestore:"taskDescription"`
	TopicContext    string        `json:"topicContext,omitempty" firestore:"topicContext,omitempty"`
	Status          TaskStatus    `json:"status" firestore:"status"`
	PresentUserData *UserSnapshot `json:"presentUserData,omitempty" firestore:"presentUserData,omitempty"`
	Meeting         *MeetingInfo  `json:"isMeeting,omitempty" firestore:"isMeeting,omitempty"`
	CreatedAt       time.Time     `json:"createdAt" firestore:"createdAt"`
}

// IsMeeting reports whether the task carries a meeting sub-record.
func (t Task) IsMeeting() bool {
	return t.Meeting != nil
}

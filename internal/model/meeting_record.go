package model

import "time"

// MeetingRecord is the standalone scheduled-meeting document written by
// the scheduler bridge. It survives independently of the originating task
// so that partial-linkage failures stay reconcilable.
type MeetingRecord struct {
	ID                string    `json:"id" firestore:"-"`
	TaskID            string    `json:"taskId" firestore:"taskId"`
	Username          string    `json:"username" firestore:"username"`
	GoogleMeetingLink string    `json:"google_meeting_link" firestore:"googleMeetingLink"`
	StartTime         time.Time `json:"start_time" firestore:"startTime"`
	EndTime           time.Time `json:"end_time" firestore:"endTime"`
	Duration          string    `json:"duration" firestore:"duration"`
	CreatedAt         time.Time `json:"createdAt" firestore:"createdAt"`
}

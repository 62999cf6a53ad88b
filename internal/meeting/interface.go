package meeting

import (
	"context"

	"assistant-widget/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Schedule creates the calendar event, persists a standalone meeting
	// record, and moves the originating task's meeting sub-record to
	// scheduled. A split success returns the output together with
	// ErrPartialScheduling.
	Schedule(ctx context.Context, ip ScheduleInput) (ScheduleOutput, error)

	// UpdateInfo completes the meeting sub-record with transcripts and
	// minutes after the meeting happened.
	UpdateInfo(ctx context.Context, ip UpdateInfoInput) (model.Task, error)

	ListRecords(ctx context.Context, username string) ([]model.MeetingRecord, error)
	DeleteRecord(ctx context.Context, id string) error
}

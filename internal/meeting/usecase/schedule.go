package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"assistant-widget/internal/meeting"
	"assistant-widget/internal/model"
	"assistant-widget/internal/task"
	"assistant-widget/internal/user"
	"assistant-widget/pkg/gcalendar"
)

func (uc *implUseCase) Schedule(ctx context.Context, ip meeting.ScheduleInput) (meeting.ScheduleOutput, error) {
	if !ip.EndTime.After(ip.StartTime) {
		return meeting.ScheduleOutput{}, meeting.ErrInvalidWindow
	}
	if len(ip.UserEmails) == 0 {
		return meeting.ScheduleOutput{}, meeting.ErrNoAttendees
	}

	organizer, err := uc.users.Get(ctx, ip.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return meeting.ScheduleOutput{}, meeting.ErrUserNotFound
		}
		return meeting.ScheduleOutput{}, err
	}
	if !organizer.CalendarLinked() {
		return meeting.ScheduleOutput{}, meeting.ErrOrganizerNotLinked
	}

	cal, err := uc.newCalendar(ctx, organizer.Google.RefreshToken)
	if err != nil {
		uc.l.Errorf(ctx, "meeting.usecase.Schedule: calendar client: %v", err)
		return meeting.ScheduleOutput{}, err
	}

	calCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	event, err := cal.CreateEvent(calCtx, gcalendar.CreateEventRequest{
		Summary:        ip.Title,
		Description:    ip.Description,
		StartTime:      ip.StartTime,
		EndTime:        ip.EndTime,
		Timezone:       uc.timezone,
		Attendees:      ip.UserEmails,
		WithConference: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "meeting.usecase.Schedule: create event: %v", err)
		return meeting.ScheduleOutput{}, err
	}

	duration := gcalendar.FormatDuration(ip.StartTime, ip.EndTime)

	record, err := uc.repo.Create(ctx, model.MeetingRecord{
		ID:                uuid.NewString(),
		TaskID:            ip.TaskID,
		Username:          ip.Username,
		GoogleMeetingLink: event.HangoutLink,
		StartTime:         ip.StartTime,
		EndTime:           ip.EndTime,
		Duration:          duration,
		CreatedAt:         uc.clock().UTC(),
	})
	if err != nil {
		// The event already exists and cannot be rolled back; report the
		// split state rather than hiding the created meeting.
		uc.l.Errorf(ctx, "meeting.usecase.Schedule: persist record: %v", err)
		return meeting.ScheduleOutput{
			MeetLink:  event.HangoutLink,
			EventLink: event.HtmlLink,
		}, meeting.ErrPartialScheduling
	}

	out := meeting.ScheduleOutput{
		MeetLink:  event.HangoutLink,
		EventLink: event.HtmlLink,
		Record:    record,
	}

	if err := uc.linkTask(ctx, ip, event.HangoutLink, duration); err != nil {
		uc.l.Warnf(ctx, "meeting.usecase.Schedule: task linkage for %s: %v", ip.TaskID, err)
		return out, meeting.ErrPartialScheduling
	}

	out.TaskLinked = true
	return out, nil
}

// linkTask moves the originating task's meeting sub-record to scheduled
// and fills in the logistics fields. The parent task status is untouched.
func (uc *implUseCase) linkTask(ctx context.Context, ip meeting.ScheduleInput, meetLink, duration string) error {
	scheduled := model.MeetingStatusScheduled
	date := ip.StartTime.Format("2006-01-02")
	startClock := ip.StartTime.Format("15:04")

	_, err := uc.tasks.UpdateMeeting(ctx, task.UpdateMeetingInput{
		Username:     ip.Username,
		UniqueTaskID: ip.TaskID,
		Status:       &scheduled,
		Title:        &ip.Title,
		Description:  &ip.Description,
		Date:         &date,
		Time:         &startClock,
		Duration:     &duration,
		MeetingLink:  &meetLink,
	})
	return err
}

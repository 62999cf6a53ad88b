package usecase

import (
	"context"

	"assistant-widget/internal/meeting"
	"assistant-widget/internal/model"
	"assistant-widget/internal/task"
)

func (uc *implUseCase) UpdateInfo(ctx context.Context, ip meeting.UpdateInfoInput) (model.Task, error) {
	completed := model.MeetingStatusCompleted

	t, err := uc.tasks.UpdateMeeting(ctx, task.UpdateMeetingInput{
		Username:       ip.Username,
		UniqueTaskID:   ip.TaskID,
		Status:         &completed,
		MeetingRawData: &ip.RawTranscript,
		MeetingSummary: &ip.AdjustedTranscript,
		MeetingMinutes: &ip.MeetingMinutesAndTasks,
	})
	if err != nil {
		uc.l.Errorf(ctx, "meeting.usecase.UpdateInfo: %v", err)
		return model.Task{}, err
	}
	return t, nil
}

func (uc *implUseCase) ListRecords(ctx context.Context, username string) ([]model.MeetingRecord, error) {
	return uc.repo.List(ctx, username)
}

func (uc *implUseCase) DeleteRecord(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

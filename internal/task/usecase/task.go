package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"assistant-widget/internal/model"
	"assistant-widget/internal/task"
	"assistant-widget/internal/task/repository"
	"assistant-widget/internal/user"
	"assistant-widget/pkg/taskid"
)

func (uc *implUseCase) Create(ctx context.Context, ip task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(ip.TaskQuestion) == "" {
		return task.CreateOutput{}, task.ErrEmptyQuestion
	}

	// The owner document must exist before anything is filed under it.
	if _, err := uc.userRepo.Get(ctx, ip.Username); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return task.CreateOutput{}, task.ErrUserNotFound
		}
		return task.CreateOutput{}, err
	}

	// Admin clients may carry their own tracking id and initial status
	// (the widget used to mint both); anything absent is generated here.
	uniqueTaskID := ip.UniqueTaskID
	if uniqueTaskID != "" && !taskid.Valid(uniqueTaskID) {
		return task.CreateOutput{}, task.ErrInvalidTrackingID
	}
	status := ip.Status
	switch status {
	case "":
		status = model.TaskStatusInProgress
	case model.TaskStatusPending, model.TaskStatusInProgress,
		model.TaskStatusCompleted, model.TaskStatusCancelled:
	default:
		return task.CreateOutput{}, task.ErrInvalidStatus
	}

	now := uc.clock()
	if uniqueTaskID == "" {
		uniqueTaskID = taskid.Format(now)
	}
	t := model.Task{
		ID:              uuid.NewString(),
		UniqueTaskID:    uniqueTaskID,
		TaskQuestion:    ip.TaskQuestion,
		TaskDescription: ip.TaskDescription,
		TopicContext:    ip.TopicContext,
		Status:          status,
		PresentUserData: ip.Asker,
		Meeting:         ip.Meeting,
		CreatedAt:       now.UTC(),
	}
	if t.Meeting != nil && t.Meeting.Status == "" {
		t.Meeting.Status = model.MeetingStatusPending
	}

	created, err := uc.repo.Create(ctx, ip.Username, t)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: %v", err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "task.usecase.Create: created %s for %s", created.UniqueTaskID, ip.Username)
	return task.CreateOutput{Task: created}, nil
}

func (uc *implUseCase) List(ctx context.Context, username string) ([]model.Task, error) {
	return uc.repo.List(ctx, username)
}

func (uc *implUseCase) GetByUniqueID(ctx context.Context, username, uniqueTaskID string) (model.Task, error) {
	return uc.repo.GetByUniqueID(ctx, username, uniqueTaskID)
}

func (uc *implUseCase) GetByQuestion(ctx context.Context, username, question string) (model.Task, error) {
	return uc.repo.GetByQuestion(ctx, username, question)
}

func (uc *implUseCase) UpdateStatus(ctx context.Context, ip task.UpdateStatusInput) (model.Task, error) {
	switch ip.Status {
	case model.TaskStatusPending, model.TaskStatusInProgress,
		model.TaskStatusCompleted, model.TaskStatusCancelled:
	default:
		return model.Task{}, task.ErrInvalidStatus
	}

	t, err := uc.repo.GetByUniqueID(ctx, ip.Username, ip.UniqueTaskID)
	if errors.Is(err, task.ErrTaskNotFound) && ip.TaskQuestion != "" {
		// Older admin clients key status updates by the verbatim
		// triggering question when they lost the tracking id.
		t, err = uc.repo.GetByQuestion(ctx, ip.Username, ip.TaskQuestion)
	}
	if err != nil {
		return model.Task{}, err
	}

	// Task status moves freely between states; only the meeting
	// sub-record has transition rules.
	if err := uc.repo.Update(ctx, ip.Username, t.ID, repository.UpdateOption{Status: &ip.Status}); err != nil {
		uc.l.Errorf(ctx, "task.usecase.UpdateStatus: %v", err)
		return model.Task{}, err
	}

	t.Status = ip.Status
	return t, nil
}

func (uc *implUseCase) UpdateMeeting(ctx context.Context, ip task.UpdateMeetingInput) (model.Task, error) {
	t, err := uc.repo.GetByUniqueID(ctx, ip.Username, ip.UniqueTaskID)
	if err != nil {
		return model.Task{}, err
	}
	if !t.IsMeeting() {
		return model.Task{}, task.ErrNoMeeting
	}

	meeting := *t.Meeting
	if ip.Status != nil && *ip.Status != meeting.Status {
		if !meeting.Status.CanTransitionTo(*ip.Status) {
			return model.Task{}, task.ErrMeetingTransition
		}
		meeting.Status = *ip.Status
	}
	if ip.Title != nil {
		meeting.Title = *ip.Title
	}
	if ip.Description != nil {
		meeting.Description = *ip.Description
	}
	if ip.Date != nil {
		meeting.Date = *ip.Date
	}
	if ip.Time != nil {
		meeting.Time = *ip.Time
	}
	if ip.Duration != nil {
		meeting.Duration = *ip.Duration
	}
	if ip.MeetingLink != nil {
		meeting.MeetingLink = *ip.MeetingLink
	}
	if ip.MeetingMinutes != nil {
		meeting.MeetingMinutes = *ip.MeetingMinutes
	}
	if ip.MeetingSummary != nil {
		meeting.MeetingSummary = *ip.MeetingSummary
	}
	if ip.MeetingRawData != nil {
		meeting.MeetingRawData = *ip.MeetingRawData
	}

	if err := uc.repo.Update(ctx, ip.Username, t.ID, repository.UpdateOption{Meeting: &meeting}); err != nil {
		uc.l.Errorf(ctx, "task.usecase.UpdateMeeting: %v", err)
		return model.Task{}, err
	}

	t.Meeting = &meeting
	return t, nil
}

func (uc *implUseCase) Delete(ctx context.Context, username, uniqueTaskID string) error {
	t, err := uc.repo.GetByUniqueID(ctx, username, uniqueTaskID)
	if err != nil {
		return err
	}
	return uc.repo.Delete(ctx, username, t.ID)
}

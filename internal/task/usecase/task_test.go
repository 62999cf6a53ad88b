package usecase_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"assistant-widget/internal/model"
	"assistant-widget/internal/task"
	"assistant-widget/internal/task/repository"
	"assistant-widget/internal/task/usecase"
	"assistant-widget/internal/user"
)

func TestCreate(t *testing.T) {
	t.Run("Empty Question Error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockTaskRepo{}, &mockUserRepo{})
		_, err := uc.Create(context.Background(), task.CreateInput{Username: "alice", TaskQuestion: "  "})
		if !errors.Is(err, task.ErrEmptyQuestion) {
			t.Errorf("expected ErrEmptyQuestion, got %v", err)
		}
	})

	t.Run("Unknown Owner Error", func(t *testing.T) {
		users := &mockUserRepo{
			getFunc: func(username string) (model.User, error) { return model.User{}, user.ErrUserNotFound },
		}
		uc := usecase.New(&mockLogger{}, &mockTaskRepo{}, users)
		_, err := uc.Create(context.Background(), task.CreateInput{Username: "ghost", TaskQuestion: "q"})
		if !errors.Is(err, task.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("Defaults On Creation", func(t *testing.T) {
		var stored model.Task
		repo := &mockTaskRepo{
			createFunc: func(username string, tk model.Task) (model.Task, error) { stored = tk; return tk, nil },
		}
		uc := usecase.New(&mockLogger{}, repo, &mockUserRepo{})
		out, err := uc.Create(context.Background(), task.CreateInput{
			Username:     "alice",
			TaskQuestion: "Can you review my resume?",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Status != model.TaskStatusInProgress {
			t.Errorf("expected inprogress default, got %s", stored.Status)
		}
		if !regexp.MustCompile(`^\d{14}$`).MatchString(stored.UniqueTaskID) {
			t.Errorf("expected 14-digit tracking id, got %q", stored.UniqueTaskID)
		}
		if stored.ID == "" || stored.ID == stored.UniqueTaskID {
			t.Errorf("storage id must be a separate generated id, got %q", stored.ID)
		}
		if out.Task.UniqueTaskID != stored.UniqueTaskID {
			t.Errorf("output mismatch")
		}
	})

	t.Run("Client Supplied Identity Honored", func(t *testing.T) {
		var stored model.Task
		repo := &mockTaskRepo{
			createFunc: func(username string, tk model.Task) (model.Task, error) { stored = tk; return tk, nil },
		}
		uc := usecase.New(&mockLogger{}, repo, &mockUserRepo{})
		_, err := uc.Create(context.Background(), task.CreateInput{
			Username:     "alice",
			UniqueTaskID: "45129907032025",
			TaskQuestion: "Can you send the deck?",
			Status:       model.TaskStatusPending,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.UniqueTaskID != "45129907032025" {
			t.Errorf("expected client tracking id kept, got %q", stored.UniqueTaskID)
		}
		if stored.Status != model.TaskStatusPending {
			t.Errorf("expected client status kept, got %s", stored.Status)
		}
	})

	t.Run("Malformed Client Tracking ID", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockTaskRepo{}, &mockUserRepo{})
		_, err := uc.Create(context.Background(), task.CreateInput{
			Username:     "alice",
			UniqueTaskID: "not-a-tracking-id",
			TaskQuestion: "Can you send the deck?",
		})
		if !errors.Is(err, task.ErrInvalidTrackingID) {
			t.Errorf("expected ErrInvalidTrackingID, got %v", err)
		}
	})

	t.Run("Meeting Sub-Record Starts Pending", func(t *testing.T) {
		var stored model.Task
		repo := &mockTaskRepo{
			createFunc: func(username string, tk model.Task) (model.Task, error) { stored = tk; return tk, nil },
		}
		uc := usecase.New(&mockLogger{}, repo, &mockUserRepo{})
		_, err := uc.Create(context.Background(), task.CreateInput{
			Username:     "alice",
			TaskQuestion: "Can we have a call about the roadmap?",
			Meeting:      &model.MeetingInfo{Title: "Roadmap sync"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Meeting == nil || stored.Meeting.Status != model.MeetingStatusPending {
			t.Errorf("expected pending meeting sub-record, got %+v", stored.Meeting)
		}
	})
}

func TestUpdateStatus(t *testing.T) {
	existing := model.Task{
		ID:           "doc-1",
		UniqueTaskID: "02050907032025",
		TaskQuestion: "Can you review my resume?",
		Status:       model.TaskStatusInProgress,
	}

	t.Run("Invalid Status", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockTaskRepo{}, &mockUserRepo{})
		_, err := uc.UpdateStatus(context.Background(), task.UpdateStatusInput{
			Username: "alice", UniqueTaskID: existing.UniqueTaskID, Status: "done",
		})
		if !errors.Is(err, task.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("Task Not Found", func(t *testing.T) {
		repo := &mockTaskRepo{
			getByUniqueIDFunc: func(username, id string) (model.Task, error) { return model.Task{}, task.ErrTaskNotFound },
		}
		uc := usecase.New(&mockLogger{}, repo, &mockUserRepo{})
		_, err := uc.UpdateStatus(context.Background(), task.UpdateStatusInput{
			Username: "alice", UniqueTaskID: "99999999999999", Status: model.TaskStatusCompleted,
		})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Falls Back To Question Lookup", func(t *testing.T) {
		var patched repository.UpdateOption
		repo := &mockTaskRepo{
			getByUniqueIDFunc: func(username, id string) (model.Task, error) {
				return model.Task{}, task.ErrTaskNotFound
			},
			getByQuestionFunc: func(username, question string) (model.Task, error) {
				if question != existing.TaskQuestion {
					t.Errorf("unexpected question lookup %q", question)
				}
				return existing, nil
			},
			updateFunc: func(username, id string, opt repository.UpdateOption) error {
				patched = opt
				return nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, &mockUserRepo{})
		out, err := uc.UpdateStatus(context.Background(), task.UpdateStatusInput{
			Username:     "alice",
			UniqueTaskID: "99999999999999",
			TaskQuestion: existing.TaskQuestion,
			Status:       model.TaskStatusCompleted,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patched.Status == nil || *patched.Status != model.TaskStatusCompleted {
			t.Errorf("expected status patch completed, got %+v", patched.Status)
		}
		if out.UniqueTaskID != existing.UniqueTaskID {
			t.Errorf("expected the task found by question, got %q", out.UniqueTaskID)
		}
	})

	t.Run("Status Moves Freely", func(t *testing.T) {
		var patched repository.UpdateOption
		repo := &mockTaskRepo{
			getByUniqueIDFunc: func(username, id string) (model.Task, error) { return existing, nil },
			updateFunc: func(username, id string, opt repository.UpdateOption) error {
				patched = opt
				return nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, &mockUserRepo{})
		out, err := uc.UpdateStatus(context.Background(), task.UpdateStatusInput{
			Username: "alice", UniqueTaskID: existing.UniqueTaskID, Status: model.TaskStatusPending,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patched.Status == nil || *patched.Status != model.TaskStatusPending {
			t.Errorf("expected status patch pending, got %+v", patched.Status)
		}
		if out.Status != model.TaskStatusPending {
			t.Errorf("expected updated output status")
		}
	})
}

func TestUpdateMeeting(t *testing.T) {
	withMeeting := func(s model.MeetingStatus) model.Task {
		return model.Task{
			ID:           "doc-1",
			UniqueTaskID: "02050907032025",
			Status:       model.TaskStatusInProgress,
			Meeting:      &model.MeetingInfo{Title: "Sync", Status: s},
		}
	}
	statusOf := func(s model.MeetingStatus) *model.MeetingStatus { return &s }

	t.Run("No Meeting Sub-Record", func(t *testing.T) {
		repo := &mockTaskRepo{
			getByUniqueIDFunc: func(username, id string) (model.Task, error) {
				return model.Task{ID: "doc-1", UniqueTaskID: id}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, &mockUserRepo{})
		_, err := uc.UpdateMeeting(context.Background(), task.UpdateMeetingInput{
			Username: "alice", UniqueTaskID: "02050907032025", Status: statusOf(model.MeetingStatusScheduled),
		})
		if !errors.Is(err, task.ErrNoMeeting) {
			t.Errorf("expected ErrNoMeeting, got %v", err)
		}
	})

	t.Run("Lifecycle Never Regresses", func(t *testing.T) {
		repo := &mockTaskRepo{
			getByUniqueIDFunc: func(username, id string) (model.Task, error) {
				return withMeeting(model.MeetingStatusScheduled), nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, &mockUserRepo{})
		_, err := uc.UpdateMeeting(context.Background(), task.UpdateMeetingInput{
			Username: "alice", UniqueTaskID: "02050907032025", Status: statusOf(model.MeetingStatusPending),
		})
		if !errors.Is(err, task.ErrMeetingTransition) {
			t.Errorf("expected ErrMeetingTransition, got %v", err)
		}
	})

	t.Run("Terminal State Rejects Transitions", func(t *testing.T) {
		repo := &mockTaskRepo{
			getByUniqueIDFunc: func(username, id string) (model.Task, error) {
				return withMeeting(model.MeetingStatusCompleted), nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, &mockUserRepo{})
		_, err := uc.UpdateMeeting(context.Background(), task.UpdateMeetingInput{
			Username: "alice", UniqueTaskID: "02050907032025", Status: statusOf(model.MeetingStatusCancelled),
		})
		if !errors.Is(err, task.ErrMeetingTransition) {
			t.Errorf("expected ErrMeetingTransition, got %v", err)
		}
	})

	t.Run("Completes Directly From Pending", func(t *testing.T) {
		var patched repository.UpdateOption
		repo := &mockTaskRepo{
			getByUniqueIDFunc: func(username, id string) (model.Task, error) {
				return withMeeting(model.MeetingStatusPending), nil
			},
			updateFunc: func(username, id string, opt repository.UpdateOption) error {
				patched = opt
				return nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, &mockUserRepo{})
		minutes := "Agreed on the Q3 roadmap."
		_, err := uc.UpdateMeeting(context.Background(), task.UpdateMeetingInput{
			Username:       "alice",
			UniqueTaskID:   "02050907032025",
			Status:         statusOf(model.MeetingStatusCompleted),
			MeetingMinutes: &minutes,
		})
		if err != nil {
			t.Fatalf("off-calendar meetings complete without scheduling, got %v", err)
		}
		if patched.Meeting == nil || patched.Meeting.Status != model.MeetingStatusCompleted {
			t.Errorf("expected completed meeting patch, got %+v", patched.Meeting)
		}
	})

	t.Run("Complete With Transcript", func(t *testing.T) {
		var patched repository.UpdateOption
		repo := &mockTaskRepo{
			getByUniqueIDFunc: func(username, id string) (model.Task, error) {
				return withMeeting(model.MeetingStatusScheduled), nil
			},
			updateFunc: func(username, id string, opt repository.UpdateOption) error {
				patched = opt
				return nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, &mockUserRepo{})
		minutes := "Discussed the roadmap."
		out, err := uc.UpdateMeeting(context.Background(), task.UpdateMeetingInput{
			Username:       "alice",
			UniqueTaskID:   "02050907032025",
			Status:         statusOf(model.MeetingStatusCompleted),
			MeetingMinutes: &minutes,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patched.Meeting == nil || patched.Meeting.Status != model.MeetingStatusCompleted {
			t.Errorf("expected completed meeting patch, got %+v", patched.Meeting)
		}
		if patched.Meeting.MeetingMinutes != minutes {
			t.Errorf("expected minutes merged into sub-record")
		}
		if out.Status != model.TaskStatusInProgress {
			t.Errorf("parent task status must be untouched by meeting updates")
		}
	})

	t.Run("Same Status Is A No-Op Merge", func(t *testing.T) {
		repo := &mockTaskRepo{
			getByUniqueIDFunc: func(username, id string) (model.Task, error) {
				return withMeeting(model.MeetingStatusScheduled), nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, &mockUserRepo{})
		link := "https://meet.google.com/abc-defg-hij"
		out, err := uc.UpdateMeeting(context.Background(), task.UpdateMeetingInput{
			Username:     "alice",
			UniqueTaskID: "02050907032025",
			Status:       statusOf(model.MeetingStatusScheduled),
			MeetingLink:  &link,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Meeting.MeetingLink != link {
			t.Errorf("expected link merged")
		}
	})
}

package usecase_test

import (
	"context"

	"assistant-widget/internal/model"
	"assistant-widget/internal/task"
	userRepo "assistant-widget/internal/user/repository"
	"assistant-widget/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock user repository; only Get matters to the bridge.
type mockUserRepo struct {
	getFunc func(username string) (model.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u model.User) error { return nil }

func (m *mockUserRepo) Get(ctx context.Context, username string) (model.User, error) {
	if m.getFunc != nil {
		return m.getFunc(username)
	}
	return model.User{Username: username}, nil
}

func (m *mockUserRepo) Update(ctx context.Context, username string, opt userRepo.UpdateOption) error {
	return nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func (m *mockUserRepo) CreateContribution(ctx context.Context, username string, c model.Contribution) (model.Contribution, error) {
	return c, nil
}

func (m *mockUserRepo) ListContributions(ctx context.Context, username string) ([]model.Contribution, error) {
	return nil, nil
}

func (m *mockUserRepo) UpdateContributionStatus(ctx context.Context, username, id string, status model.ContributionStatus) error {
	return nil
}

// Mock task use case recording the meeting sub-record update.
type mockTaskUC struct {
	task              model.Task
	updateMeetingErr  error
	lastMeetingUpdate task.UpdateMeetingInput
}

func (m *mockTaskUC) Create(ctx context.Context, ip task.CreateInput) (task.CreateOutput, error) {
	return task.CreateOutput{}, nil
}

func (m *mockTaskUC) List(ctx context.Context, username string) ([]model.Task, error) {
	return nil, nil
}

func (m *mockTaskUC) GetByUniqueID(ctx context.Context, username, uniqueTaskID string) (model.Task, error) {
	return m.task, nil
}

func (m *mockTaskUC) GetByQuestion(ctx context.Context, username, question string) (model.Task, error) {
	return m.task, nil
}

func (m *mockTaskUC) UpdateStatus(ctx context.Context, ip task.UpdateStatusInput) (model.Task, error) {
	return m.task, nil
}

func (m *mockTaskUC) UpdateMeeting(ctx context.Context, ip task.UpdateMeetingInput) (model.Task, error) {
	if m.updateMeetingErr != nil {
		return model.Task{}, m.updateMeetingErr
	}
	m.lastMeetingUpdate = ip
	return m.task, nil
}

func (m *mockTaskUC) Delete(ctx context.Context, username, uniqueTaskID string) error {
	return nil
}

// Mock meeting record repository.
type mockRecordRepo struct {
	created   []model.MeetingRecord
	createErr error
}

func (m *mockRecordRepo) Create(ctx context.Context, r model.MeetingRecord) (model.MeetingRecord, error) {
	if m.createErr != nil {
		return model.MeetingRecord{}, m.createErr
	}
	m.created = append(m.created, r)
	return r, nil
}

func (m *mockRecordRepo) List(ctx context.Context, username string) ([]model.MeetingRecord, error) {
	return m.created, nil
}

func (m *mockRecordRepo) Delete(ctx context.Context, id string) error { return nil }

// Fake calendar client.
type fakeCalendar struct {
	refreshToken string
	created      int
	lastReq      gcalendar.CreateEventRequest
	err          error
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created++
	f.lastReq = req
	return &gcalendar.Event{
		ID:          "evt-1",
		Summary:     req.Summary,
		Description: req.Description,
		HtmlLink:    "https://calendar.google.com/event?eid=evt-1",
		HangoutLink: "https://meet.google.com/abc-defg-hij",
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

package usecase_test

import (
	"context"

	"assistant-widget/internal/model"
	"assistant-widget/internal/task/repository"
	userRepo "assistant-widget/internal/user/repository"
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

// Mock task repository for testing
type mockTaskRepo struct {
	createFunc        func(username string, t model.Task) (model.Task, error)
	listFunc          func(username string) ([]model.Task, error)
	getByUniqueIDFunc func(username, uniqueTaskID string) (model.Task, error)
	getByQuestionFunc func(username, question string) (model.Task, error)
	updateFunc        func(username, id string, opt repository.UpdateOption) error
	deleteFunc        func(username, id string) error
}

func (m *mockTaskRepo) Create(ctx context.Context, username string, t model.Task) (model.Task, error) {
	if m.createFunc != nil {
		return m.createFunc(username, t)
	}
	return t, nil
}

func (m *mockTaskRepo) List(ctx context.Context, username string) ([]model.Task, error) {
	if m.listFunc != nil {
		return m.listFunc(username)
	}
	return nil, nil
}

func (m *mockTaskRepo) GetByUniqueID(ctx context.Context, username, uniqueTaskID string) (model.Task, error) {
	if m.getByUniqueIDFunc != nil {
		return m.getByUniqueIDFunc(username, uniqueTaskID)
	}
	return model.Task{}, nil
}

func (m *mockTaskRepo) GetByQuestion(ctx context.Context, username, question string) (model.Task, error) {
	if m.getByQuestionFunc != nil {
		return m.getByQuestionFunc(username, question)
	}
	return model.Task{}, nil
}

func (m *mockTaskRepo) Update(ctx context.Context, username, id string, opt repository.UpdateOption) error {
	if m.updateFunc != nil {
		return m.updateFunc(username, id, opt)
	}
	return nil
}

func (m *mockTaskRepo) Delete(ctx context.Context, username, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(username, id)
	}
	return nil
}

// Minimal user repository stub; only Get is exercised by the task use case.
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

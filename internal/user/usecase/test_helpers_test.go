package usecase_test

import (
	"context"

	"assistant-widget/internal/model"
	"assistant-widget/internal/user/repository"
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

// Mock user repository for testing
type mockUserRepo struct {
	createFunc             func(u model.User) error
	getFunc                func(username string) (model.User, error)
	updateFunc             func(username string, opt repository.UpdateOption) error
	countFunc              func() (int64, error)
	createContributionFunc func(username string, c model.Contribution) (model.Contribution, error)
	listContributionsFunc  func(username string) ([]model.Contribution, error)
	updateContributionFunc func(username, id string, status model.ContributionStatus) error
}

func (m *mockUserRepo) Create(ctx context.Context, u model.User) error {
	if m.createFunc != nil {
		return m.createFunc(u)
	}
	return nil
}

func (m *mockUserRepo) Get(ctx context.Context, username string) (model.User, error) {
	if m.getFunc != nil {
		return m.getFunc(username)
	}
	return model.User{Username: username}, nil
}

func (m *mockUserRepo) Update(ctx context.Context, username string, opt repository.UpdateOption) error {
	if m.updateFunc != nil {
		return m.updateFunc(username, opt)
	}
	return nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc()
	}
	return 0, nil
}

func (m *mockUserRepo) CreateContribution(ctx context.Context, username string, c model.Contribution) (model.Contribution, error) {
	if m.createContributionFunc != nil {
		return m.createContributionFunc(username, c)
	}
	return c, nil
}

func (m *mockUserRepo) ListContributions(ctx context.Context, username string) ([]model.Contribution, error) {
	if m.listContributionsFunc != nil {
		return m.listContributionsFunc(username)
	}
	return nil, nil
}

func (m *mockUserRepo) UpdateContributionStatus(ctx context.Context, username, id string, status model.ContributionStatus) error {
	if m.updateContributionFunc != nil {
		return m.updateContributionFunc(username, id, status)
	}
	return nil
}

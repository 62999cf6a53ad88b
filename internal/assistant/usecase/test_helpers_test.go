package usecase_test

import (
	"context"
	"strings"

	"assistant-widget/internal/assistant"
	"assistant-widget/internal/assistant/usecase"
	"assistant-widget/internal/model"
	"assistant-widget/internal/task"
	userRepo "assistant-widget/internal/user/repository"
	"assistant-widget/pkg/gemini"
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

// Mock user repository; Get and ListContributions are what the
// orchestrator exercises.
type mockUserRepo struct {
	getFunc  func(username string) (model.User, error)
	listFunc func(username string) ([]model.Contribution, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u model.User) error { return nil }

func (m *mockUserRepo) Get(ctx context.Context, username string) (model.User, error) {
	if m.getFunc != nil {
		return m.getFunc(username)
	}
	return model.User{Username: username, Name: "Alice", GeminiAPIKey: "key"}, nil
}

func (m *mockUserRepo) Update(ctx context.Context, username string, opt userRepo.UpdateOption) error {
	return nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func (m *mockUserRepo) CreateContribution(ctx context.Context, username string, c model.Contribution) (model.Contribution, error) {
	return c, nil
}

func (m *mockUserRepo) ListContributions(ctx context.Context, username string) ([]model.Contribution, error) {
	if m.listFunc != nil {
		return m.listFunc(username)
	}
	return nil, nil
}

func (m *mockUserRepo) UpdateContributionStatus(ctx context.Context, username, id string, status model.ContributionStatus) error {
	return nil
}

// Mock task use case recording creations.
type mockTaskUC struct {
	created    []task.CreateInput
	createErr  error
	trackingID string
}

func (m *mockTaskUC) Create(ctx context.Context, ip task.CreateInput) (task.CreateOutput, error) {
	if m.createErr != nil {
		return task.CreateOutput{}, m.createErr
	}
	m.created = append(m.created, ip)
	id := m.trackingID
	if id == "" {
		id = "02050907032025"
	}
	return task.CreateOutput{Task: model.Task{
		ID:              "doc-1",
		UniqueTaskID:    id,
		TaskQuestion:    ip.TaskQuestion,
		TaskDescription: ip.TaskDescription,
		TopicContext:    ip.TopicContext,
		Status:          model.TaskStatusInProgress,
		PresentUserData: ip.Asker,
		Meeting:         ip.Meeting,
	}}, nil
}

func (m *mockTaskUC) List(ctx context.Context, username string) ([]model.Task, error) {
	return nil, nil
}

func (m *mockTaskUC) GetByUniqueID(ctx context.Context, username, uniqueTaskID string) (model.Task, error) {
	return model.Task{}, task.ErrTaskNotFound
}

func (m *mockTaskUC) GetByQuestion(ctx context.Context, username, question string) (model.Task, error) {
	return model.Task{}, task.ErrTaskNotFound
}

func (m *mockTaskUC) UpdateStatus(ctx context.Context, ip task.UpdateStatusInput) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskUC) UpdateMeeting(ctx context.Context, ip task.UpdateMeetingInput) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskUC) Delete(ctx context.Context, username, uniqueTaskID string) error {
	return nil
}

// Fake LLM routing on prompt kind: the intent and topic prompts carry
// their own system instructions, everything else is the answer call.
type fakeLLM struct {
	intentReply string // first-line YES/NO protocol text
	topicReply  string
	answerReply string
	err         error
	calls       int
}

func (f *fakeLLM) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	prompt := ""
	if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
		prompt = req.Contents[0].Parts[0].Text
	}

	reply := f.answerReply
	switch {
	case strings.HasPrefix(prompt, gemini.IntentSystemPrompt):
		reply = f.intentReply
	case strings.HasPrefix(prompt, gemini.TopicSystemPrompt):
		reply = f.topicReply
	}

	return genResp(reply), nil
}

func genResp(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{{
			Content: gemini.Content{Parts: []gemini.Part{{Text: text}}},
		}},
	}
}

func newUC(users *mockUserRepo, tasks *mockTaskUC, llm *fakeLLM) assistant.UseCase {
	return usecase.New(&mockLogger{}, users, tasks, func(apiKey string) usecase.LLM { return llm })
}

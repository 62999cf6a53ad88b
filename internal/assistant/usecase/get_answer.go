package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"assistant-widget/internal/assistant"
	"assistant-widget/internal/model"
	"assistant-widget/internal/task"
	"assistant-widget/internal/user"
	"assistant-widget/pkg/gemini"
)

func (uc *implUseCase) GetAnswer(ctx context.Context, ip assistant.ChatInput) (assistant.ChatOutput, error) {
	if strings.TrimSpace(ip.Message) == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}

	owner, err := uc.users.Get(ctx, ip.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return assistant.ChatOutput{}, assistant.ErrUserNotFound
		}
		return assistant.ChatOutput{}, err
	}

	// No key, no chat. Terminal before any other processing.
	if !owner.HasGeminiKey() {
		return assistant.ChatOutput{Reply: assistant.MsgNoCredential}, nil
	}

	history := model.TailWindow(ip.History, historyWindow)

	// The gate short-circuits the classifier entirely: the meeting was
	// already detected one turn ago, no second LLM round-trip needed.
	if gate := uc.checkGate(ctx, history, ip.Message); gate.Confirmed {
		return uc.createMeetingTask(ctx, owner, ip, gate.Topic), nil
	}

	llm := uc.newLLM(owner.GeminiAPIKey)
	window := formatWindow(history)

	topic := uc.extractTopic(ctx, llm, window, ip.Message)
	intent := uc.classifyIntent(ctx, llm, ip.Message, window)

	switch {
	case intent.IsTask && intent.RequireConfirmation:
		// Withhold creation until the next turn affirms. The reply must
		// carry the marker phrase and an "about <topic>?" clause the gate
		// re-parses on the follow-up turn.
		t := topic
		if t == "" {
			t = assistant.FallbackTopic
		}
		reply := fmt.Sprintf(
			"It sounds like you want to have a meeting about %s? Reply yes and I'll set it up with %s.",
			t, owner.Name,
		)
		return assistant.ChatOutput{Reply: reply}, nil

	case intent.IsTask:
		return uc.createPlainTask(ctx, owner, ip, intent, topic), nil

	default:
		return uc.answer(ctx, llm, owner, ip, window, topic), nil
	}
}

// createMeetingTask persists the confirmed meeting with a synthesized
// question/description built from the recovered topic.
func (uc *implUseCase) createMeetingTask(ctx context.Context, owner model.User, ip assistant.ChatInput, topic string) assistant.ChatOutput {
	asker, ok := uc.askerSnapshot(ctx, ip.AskerUsername)
	if !ok {
		return assistant.ChatOutput{Reply: assistant.MsgRegistrationRequired}
	}

	description := fmt.Sprintf("Schedule a meeting about %s", topic)
	out, err := uc.tasks.Create(ctx, task.CreateInput{
		Username:        ip.Username,
		TaskQuestion:    ip.Message,
		TaskDescription: description,
		TopicContext:    topic,
		Asker:           asker,
		Meeting: &model.MeetingInfo{
			Title:       fmt.Sprintf("Meeting about %s", topic),
			Description: description,
			Status:      model.MeetingStatusPending,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.createMeetingTask: %v", err)
		return assistant.ChatOutput{Reply: assistant.MsgTaskCreationFailed}
	}

	reply := fmt.Sprintf(
		"Great, I've noted the meeting about %s and passed it to %s. Tracking ID: %s. You'll receive the invite once a time is fixed.",
		topic, owner.Name, out.Task.UniqueTaskID,
	)
	return assistant.ChatOutput{
		Reply:       reply,
		TaskCreated: true,
		TrackingID:  out.Task.UniqueTaskID,
		Task:        &out.Task,
	}
}

// createPlainTask persists a non-meeting task straight away.
func (uc *implUseCase) createPlainTask(ctx context.Context, owner model.User, ip assistant.ChatInput, intent assistant.Intent, topic string) assistant.ChatOutput {
	asker, ok := uc.askerSnapshot(ctx, ip.AskerUsername)
	if !ok {
		return assistant.ChatOutput{Reply: assistant.MsgRegistrationRequired}
	}

	description := intent.TaskDescription
	if topic != "" {
		description = fmt.Sprintf("%s (topic: %s)", description, topic)
	}

	out, err := uc.tasks.Create(ctx, task.CreateInput{
		Username:        ip.Username,
		TaskQuestion:    ip.Message,
		TaskDescription: description,
		TopicContext:    topic,
		Asker:           asker,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.createPlainTask: %v", err)
		return assistant.ChatOutput{Reply: assistant.MsgTaskCreationFailed}
	}

	reply := fmt.Sprintf(
		"Done! I've passed that along to %s. Tracking ID: %s.",
		owner.Name, out.Task.UniqueTaskID,
	)
	return assistant.ChatOutput{
		Reply:       reply,
		TaskCreated: true,
		TrackingID:  out.Task.UniqueTaskID,
		Task:        &out.Task,
	}
}

// answer runs the final grounded completion for a non-task turn.
func (uc *implUseCase) answer(ctx context.Context, llm LLM, owner model.User, ip assistant.ChatInput, window []string, topic string) assistant.ChatOutput {
	contributions, err := uc.users.ListContributions(ctx, ip.Username)
	if err != nil {
		// Grounding enrichment only; answer without it.
		uc.l.Warnf(ctx, "assistant.usecase.answer: contributions: %v", err)
	}

	prompt := gemini.BuildAnswerPrompt(gemini.AnswerPromptInput{
		OwnerName:      owner.Name,
		Knowledge:      owner.Prompt,
		DailyTasks:     owner.DailyTasks.Content,
		Contributions:  formatContributions(contributions),
		History:        window,
		Topic:          topic,
		StyleDirective: owner.UserPrompt,
		Question:       ip.Message,
	})

	llmCtx, cancel := context.WithTimeout(ctx, uc.llmTimeout)
	defer cancel()

	resp, err := llm.GenerateContent(llmCtx, gemini.GenerateRequest{
		Contents: []gemini.Content{{
			Role:  "user",
			Parts: []gemini.Part{{Text: prompt}},
		}},
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.answer: %v", err)
		if errors.Is(err, gemini.ErrInvalidCredential) {
			return assistant.ChatOutput{Reply: assistant.MsgInvalidCredential}
		}
		return assistant.ChatOutput{Reply: assistant.MsgAnswerFailed}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return assistant.ChatOutput{Reply: assistant.MsgAnswerFailed}
	}
	return assistant.ChatOutput{Reply: text}
}

// askerSnapshot resolves the asking party's registered identity. A missing
// or unknown asker yields the deterministic deflection path: detection
// without identity never creates a record.
func (uc *implUseCase) askerSnapshot(ctx context.Context, askerUsername string) (*model.UserSnapshot, bool) {
	if askerUsername == "" {
		return nil, false
	}
	asker, err := uc.users.Get(ctx, askerUsername)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			uc.l.Warnf(ctx, "assistant.usecase.askerSnapshot: %v", err)
		}
		return nil, false
	}
	return asker.Snapshot(), true
}

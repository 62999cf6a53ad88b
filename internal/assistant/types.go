package assistant

import (
	"assistant-widget/internal/model"
)

// ChatInput is one chat turn from the widget. History is the trailing
// window of prior turns, passed explicitly by the caller; the orchestrator
// never reads ambient conversation state.
type ChatInput struct {
	Username      string // owning user whose assistant is addressed
	AskerUsername string // registered identity of the visitor, empty if anonymous
	Message       string
	History       []model.Turn
}

// ChatOutput is the orchestrator's reply. Errors inside the chat flow are
// already converted to user-facing text; TaskCreated and TrackingID report
// what, if anything, was persisted on this turn.
type ChatOutput struct {
	Reply       string      `json:"reply"`
	TaskCreated bool        `json:"taskCreated"`
	TrackingID  string      `json:"trackingId,omitempty"`
	Task        *model.Task `json:"task,omitempty"`
}

// Intent is the tagged classification result. The YES/NO line protocol the
// LLM speaks stays inside the classifier adapter; orchestrator logic only
// ever sees this struct.
type Intent struct {
	IsTask              bool
	IsMeetingRequest    bool
	TaskDescription     string
	RequireConfirmation bool
}

// GateResult is the confirmation-gate outcome for the current turn.
type GateResult struct {
	Confirmed bool
	Topic     string
}

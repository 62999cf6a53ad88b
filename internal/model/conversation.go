package model

import "time"

// TurnType distinguishes the speaker of a conversation turn.
type TurnType string

const (
	TurnUser TurnType = "user"
	TurnBot  TurnType = "bot"
)

// Turn is one transient chat message. The widget owns full-history
// persistence; the backend only ever receives a bounded trailing window
// as an explicit request parameter.
type Turn struct {
	Type      TurnType  `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// TailWindow returns at most n of the most recent turns.
func TailWindow(turns []Turn, n int) []Turn {
	if len(turns) <= n {
		return turns
	}
	return turns[len(turns)-n:]
}

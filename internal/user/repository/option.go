package repository

import "assistant-widget/internal/model"

// UpdateOption carries the fields to patch on a user document. Nil
// pointers are left untouched.
type UpdateOption struct {
	Prompt     *string
	UserPrompt *string
	DailyTasks *model.DailyTasks
	Google     *model.GoogleLink
}

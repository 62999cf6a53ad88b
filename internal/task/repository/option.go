package repository

import "assistant-widget/internal/model"

// UpdateOption carries the fields to patch on a task document. Nil
// pointers are left untouched. Meeting replaces the whole sub-record;
// callers merge before writing.
type UpdateOption struct {
	Status  *model.TaskStatus
	Meeting *model.MeetingInfo
}

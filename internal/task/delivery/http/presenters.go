package http

import (
	"time"

	"assistant-widget/internal/model"
	"assistant-widget/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	UniqueTaskID    string              `json:"uniqueTaskId"`
	TaskQuestion    string              `json:"taskQuestion"    binding:"required"`
	TaskDescription string              `json:"taskDescription"`
	TopicContext    string              `json:"topicContext"`
	Status          string              `json:"status"          binding:"omitempty,oneof=pending inprogress completed cancelled"`
	PresentUserData *model.UserSnapshot `json:"presentUserData"`
	Meeting         *meetingReq         `json:"isMeeting"`
}

type meetingReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    string `json:"duration"`
}

func (r createReq) toInput(username string) task.CreateInput {
	ip := task.CreateInput{
		Username:        username,
		UniqueTaskID:    r.UniqueTaskID,
		TaskQuestion:    r.TaskQuestion,
		TaskDescription: r.TaskDescription,
		TopicContext:    r.TopicContext,
		Status:          model.TaskStatus(r.Status),
		Asker:           r.PresentUserData,
	}
	if r.Meeting != nil {
		ip.Meeting = &model.MeetingInfo{
			Title:       r.Meeting.Title,
			Description: r.Meeting.Description,
			Date:        r.Meeting.Date,
			Time:        r.Meeting.Time,
			Duration:    r.Meeting.Duration,
		}
	}
	return ip
}

type updateStatusReq struct {
	Status       string `json:"status" binding:"required,oneof=pending inprogress completed cancelled"`
	TaskQuestion string `json:"taskQuestion"`
}

// --- Response DTOs ---

type taskResp struct {
	ID              string              `json:"id"`
	UniqueTaskID    string              `json:"uniqueTaskId"`
	TaskQuestion    string              `json:"taskQuestion"`
	TaskDescription string              `json:"taskDescription"`
	TopicContext    string              `json:"topicContext,omitempty"`
	Status          string              `json:"status"`
	PresentUserData *model.UserSnapshot `json:"presentUserData,omitempty"`
	Meeting         *model.MeetingInfo  `json:"isMeeting,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:              t.ID,
		UniqueTaskID:    t.UniqueTaskID,
		TaskQuestion:    t.TaskQuestion,
		TaskDescription: t.TaskDescription,
		TopicContext:    t.TopicContext,
		Status:          string(t.Status),
		PresentUserData: t.PresentUserData,
		Meeting:         t.Meeting,
		CreatedAt:       t.CreatedAt,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func newListResp(ts []model.Task) listResp {
	out := make([]taskResp, len(ts))
	for i, t := range ts {
		out[i] = newTaskResp(t)
	}
	return listResp{Tasks: out, Count: len(out)}
}

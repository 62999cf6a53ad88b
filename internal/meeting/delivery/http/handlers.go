package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"assistant-widget/internal/meeting"
	"assistant-widget/internal/model"
	"assistant-widget/internal/task"
	pkgErrors "assistant-widget/pkg/errors"
	"assistant-widget/pkg/response"
)

type scheduleReq struct {
	TaskID      string    `json:"taskId"      binding:"required"`
	Username    string    `json:"username"    binding:"required"`
	Title       string    `json:"title"       binding:"required"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime"   binding:"required"`
	EndTime     time.Time `json:"endTime"     binding:"required"`
	UserEmails  []string  `json:"userEmails"  binding:"required,min=1"`
}

func (r scheduleReq) toInput() meeting.ScheduleInput {
	return meeting.ScheduleInput{
		TaskID:      r.TaskID,
		Username:    r.Username,
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		UserEmails:  r.UserEmails,
	}
}

type scheduleResp struct {
	MeetLink        string              `json:"meetLink"`
	EventLink       string              `json:"eventLink"`
	Meeting         model.MeetingRecord `json:"meeting"`
	UserTaskUpdated bool                `json:"userTaskUpdated"`
}

type updateInfoReq struct {
	Username               string `json:"username"                  binding:"required"`
	TaskID                 string `json:"task_id"                   binding:"required"`
	RawTranscript          string `json:"raw_transcript"`
	AdjustedTranscript     string `json:"adjusted_transcript"`
	MeetingMinutesAndTasks string `json:"meeting_minutes_and_tasks"`
}

// Schedule godoc
// @Summary     Schedule a pending meeting task
// @Description Creates the calendar event with a Meet link, persists a
// @Description meeting record, and links the originating task. A missing
// @Description task still succeeds with userTaskUpdated=false.
// @Tags        Meeting
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Scheduling request"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     412 {object} response.Resp "Organizer calendar not linked"
// @Router      /api/v1/schedule-meeting [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(400, err.Error()), nil)
		return
	}

	out, err := h.uc.Schedule(ctx, req.toInput())
	if err != nil && !errors.Is(err, meeting.ErrPartialScheduling) {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	if err != nil {
		// Calendar side effect already happened; the split state is a
		// flagged success, not a failure.
		h.l.Warnf(ctx, "uc.Schedule: partial: %v", err)
	}

	response.OK(c, scheduleResp{
		MeetLink:        out.MeetLink,
		EventLink:       out.EventLink,
		Meeting:         out.Record,
		UserTaskUpdated: out.TaskLinked,
	})
}

// UpdateInfo godoc
// @Summary     Attach post-meeting transcripts and complete the meeting
// @Tags        Meeting
// @Accept      json
// @Produce     json
// @Param       body body updateInfoReq true "Post-meeting artifacts"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     409 {object} response.Resp "Lifecycle conflict"
// @Router      /api/v1/update-meeting-info [POST]
func (h *handler) UpdateInfo(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateInfoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(400, err.Error()), nil)
		return
	}

	t, err := h.uc.UpdateInfo(ctx, meeting.UpdateInfoInput{
		Username:               req.Username,
		TaskID:                 req.TaskID,
		RawTranscript:          req.RawTranscript,
		AdjustedTranscript:     req.AdjustedTranscript,
		MeetingMinutesAndTasks: req.MeetingMinutesAndTasks,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateInfo: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, t)
}

// ListRecords godoc
// @Summary     List an owner's scheduled-meeting records newest first
// @Tags        Meeting
// @Produce     json
// @Param       username path string true "Owner username"
// @Success     200 {object} response.Resp
// @Router      /api/v1/users/{username}/meeting-records [GET]
func (h *handler) ListRecords(c *gin.Context) {
	ctx := c.Request.Context()

	records, err := h.uc.ListRecords(ctx, c.Param("username"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListRecords: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, gin.H{"meetings": records})
}

// DeleteRecord godoc
// @Summary     Delete a scheduled-meeting record
// @Tags        Meeting
// @Produce     json
// @Param       id path string true "Meeting record ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/meeting-records/{id} [DELETE]
func (h *handler) DeleteRecord(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteRecord(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteRecord: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, meeting.ErrInvalidWindow):
		return pkgErrors.NewHTTPError(400, "end time must be after start time")
	case errors.Is(err, meeting.ErrNoAttendees):
		return pkgErrors.NewHTTPError(400, "at least one attendee email is required")
	case errors.Is(err, meeting.ErrUserNotFound):
		return pkgErrors.NewHTTPError(404, "user not found")
	case errors.Is(err, meeting.ErrOrganizerNotLinked):
		return pkgErrors.NewHTTPError(412, "organizer has no linked calendar")
	case errors.Is(err, meeting.ErrRecordNotFound):
		return pkgErrors.NewHTTPError(404, "meeting record not found")
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	case errors.Is(err, task.ErrNoMeeting):
		return pkgErrors.NewHTTPError(400, "task has no meeting sub-record")
	case errors.Is(err, task.ErrMeetingTransition):
		return pkgErrors.NewHTTPError(409, "meeting status transition not allowed")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/schedule-meeting", h.Schedule)
	rg.POST("/update-meeting-info", h.UpdateInfo)
	rg.GET("/users/:username/meeting-records", h.ListRecords)
	rg.DELETE("/meeting-records/:id", h.DeleteRecord)
}

package http

import (
	"github.com/gin-gonic/gin"

	"assistant-widget/internal/model"
	"assistant-widget/internal/task"
	pkgErrors "assistant-widget/pkg/errors"
	"assistant-widget/pkg/response"
)

// Create godoc
// @Summary     Create a task record
// @Description Files a detected follow-up obligation under the owning user.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       username path string true "Owner username"
// @Param       body body createReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Owner not found"
// @Router      /api/v1/users/{username}/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	username := c.Param("username")
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(400, err.Error()), nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput(username))
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// List godoc
// @Summary     List an owner's tasks newest first
// @Tags        Task
// @Produce     json
// @Param       username path string true "Owner username"
// @Success     200 {object} listResp
// @Router      /api/v1/users/{username}/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.List(ctx, c.Param("username"))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(tasks))
}

// FindByQuestion godoc
// @Summary     Find a task by its verbatim triggering question
// @Tags        Task
// @Produce     json
// @Param       username path string true "Owner username"
// @Param       question query string true "Exact task question text"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{username}/tasks/find [GET]
func (h *handler) FindByQuestion(c *gin.Context) {
	ctx := c.Request.Context()

	question := c.Query("question")
	if question == "" {
		response.Error(c, pkgErrors.NewHTTPError(400, "question is required"), nil)
		return
	}

	t, err := h.uc.GetByQuestion(ctx, c.Param("username"), question)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetByQuestion: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Detail godoc
// @Summary     Get a task by its tracking id
// @Tags        Task
// @Produce     json
// @Param       username path string true "Owner username"
// @Param       taskId path string true "14-digit tracking id"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{username}/tasks/{taskId} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.GetByUniqueID(ctx, c.Param("username"), c.Param("taskId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetByUniqueID: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(t))
}

// UpdateStatus godoc
// @Summary     Patch a task's lifecycle status
// @Description Resolves the task by tracking id, falling back to the
// @Description verbatim task question when the body carries one.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       username path string true "Owner username"
// @Param       taskId path string true "14-digit tracking id"
// @Param       body body updateStatusReq true "New status"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{username}/tasks/{taskId} [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(400, err.Error()), nil)
		return
	}

	t, err := h.uc.UpdateStatus(ctx, task.UpdateStatusInput{
		Username:     c.Param("username"),
		UniqueTaskID: c.Param("taskId"),
		TaskQuestion: req.TaskQuestion,
		Status:       model.TaskStatus(req.Status),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Delete godoc
// @Summary     Delete a task by its tracking id
// @Tags        Task
// @Produce     json
// @Param       username path string true "Owner username"
// @Param       taskId path string true "14-digit tracking id"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{username}/tasks/{taskId} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("username"), c.Param("taskId")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

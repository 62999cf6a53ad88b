package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"assistant-widget/internal/assistant"
	"assistant-widget/internal/model"
	pkgErrors "assistant-widget/pkg/errors"
	"assistant-widget/pkg/response"
)

type chatReq struct {
	Username      string    `json:"username"      binding:"required"`
	AskerUsername string    `json:"askerUsername"`
	Message       string    `json:"message"       binding:"required"`
	History       []turnReq `json:"history"`
}

type turnReq struct {
	Type      string    `json:"type"      binding:"required,oneof=user bot"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func (r chatReq) toInput() assistant.ChatInput {
	history := make([]model.Turn, len(r.History))
	for i, t := range r.History {
		history[i] = model.Turn{
			Type:      model.TurnType(t.Type),
			Content:   t.Content,
			Timestamp: t.Timestamp,
		}
	}
	return assistant.ChatInput{
		Username:      r.Username,
		AskerUsername: r.AskerUsername,
		Message:       r.Message,
		History:       history,
	}
}

// Chat godoc
// @Summary     Run one chat turn against an owner's assistant
// @Description Classifies the message, drives the meeting confirmation
// @Description gate, creates task records, or returns a grounded answer.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat turn with trailing history window"
// @Success     200 {object} assistant.ChatOutput
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Owner not found"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(400, err.Error()), nil)
		return
	}

	out, err := h.uc.GetAnswer(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetAnswer: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, out)
}

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(400, "message is required")
	case errors.Is(err, assistant.ErrUserNotFound):
		return pkgErrors.NewHTTPError(404, "user not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/chat", h.Chat)
}

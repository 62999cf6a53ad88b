package http

import (
	"github.com/gin-gonic/gin"

	"assistant-widget/internal/meeting"
	pkgLog "assistant-widget/pkg/log"
)

// Handler is the public interface for the meeting HTTP delivery layer.
type Handler interface {
	Schedule(c *gin.Context)
	UpdateInfo(c *gin.Context)
	ListRecords(c *gin.Context)
	DeleteRecord(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc meeting.UseCase
}

// New creates a new HTTP handler for the meeting domain.
func New(l pkgLog.Logger, uc meeting.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

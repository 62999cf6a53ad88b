package http

import (
	"github.com/gin-gonic/gin"

	"assistant-widget/internal/user"
	pkgLog "assistant-widget/pkg/log"
)

// Handler is the public interface for the user HTTP delivery layer.
type Handler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	VerifyPassword(c *gin.Context)
	VerifyUser(c *gin.Context)
	Count(c *gin.Context)
	GoogleAuthURL(c *gin.Context)
	GoogleCallback(c *gin.Context)
	GetPrompt(c *gin.Context)
	UpdatePrompt(c *gin.Context)
	GetUserPrompt(c *gin.Context)
	UpdateUserPrompt(c *gin.Context)
	GetDailyTasks(c *gin.Context)
	UpdateDailyTasks(c *gin.Context)
	SubmitContribution(c *gin.Context)
	ListContributions(c *gin.Context)
	ReviewContribution(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc user.UseCase
}

// New creates a new HTTP handler for the user domain.
func New(l pkgLog.Logger, uc user.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

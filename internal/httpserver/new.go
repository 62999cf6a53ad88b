package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	assistantHTTP "assistant-widget/internal/assistant/delivery/http"
	meetingHTTP "assistant-widget/internal/meeting/delivery/http"
	"assistant-widget/internal/middleware"
	taskHTTP "assistant-widget/internal/task/delivery/http"
	userHTTP "assistant-widget/internal/user/delivery/http"
	"assistant-widget/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	userHandler      userHTTP.Handler
	taskHandler      taskHTTP.Handler
	assistantHandler assistantHTTP.Handler
	meetingHandler   meetingHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	UserHandler      userHTTP.Handler
	TaskHandler      taskHTTP.Handler
	AssistantHandler assistantHTTP.Handler
	MeetingHandler   meetingHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		userHandler:      cfg.UserHandler,
		taskHandler:      cfg.TaskHandler,
		assistantHandler: cfg.AssistantHandler,
		meetingHandler:   cfg.MeetingHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

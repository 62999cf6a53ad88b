package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "assistant-widget/internal/assistant/delivery/http"
	meetingHTTP "assistant-widget/internal/meeting/delivery/http"
	"assistant-widget/internal/model"
	taskHTTP "assistant-widget/internal/task/delivery/http"
	userHTTP "assistant-widget/internal/user/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.CORS())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1. The chat
// endpoint additionally goes through the per-IP rate limit, since it is
// the only surface exposed to anonymous visitors at volume.
func (srv HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api/v1")

	userHTTP.RegisterRoutes(api, srv.userHandler)
	taskHTTP.RegisterRoutes(api, srv.taskHandler)
	meetingHTTP.RegisterRoutes(api, srv.meetingHandler)

	chat := api.Group("")
	chat.Use(srv.mw.RateLimit())
	assistantHTTP.RegisterRoutes(chat, srv.assistantHandler)
}

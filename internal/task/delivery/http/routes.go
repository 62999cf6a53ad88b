package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The find
// route is registered before the wildcard so "find" never shadows a
// tracking id.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/users/:username/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/find", h.FindByQuestion)
		tasks.GET("/:taskId", h.Detail)
		tasks.PATCH("/:taskId", h.UpdateStatus)
		tasks.DELETE("/:taskId", h.Delete)
	}
}

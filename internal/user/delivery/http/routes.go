package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	users := rg.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.POST("/verify-password", h.VerifyPassword)
		users.GET("/count", h.Count)
		users.GET("/google/callback", h.GoogleCallback)

		users.GET("/:username/verify", h.VerifyUser)
		users.GET("/:username/google/auth-url", h.GoogleAuthURL)

		users.GET("/:username/prompt", h.GetPrompt)
		users.PUT("/:username/prompt", h.UpdatePrompt)
		users.GET("/:username/user-prompt", h.GetUserPrompt)
		users.PUT("/:username/user-prompt", h.UpdateUserPrompt)
		users.GET("/:username/daily-tasks", h.GetDailyTasks)
		users.PUT("/:username/daily-tasks", h.UpdateDailyTasks)

		users.POST("/:username/contributions", h.SubmitContribution)
		users.GET("/:username/contributions", h.ListContributions)
		users.PATCH("/:username/contributions/:id", h.ReviewContribution)
	}
}

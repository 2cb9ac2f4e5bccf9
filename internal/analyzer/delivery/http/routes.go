package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-analyzer/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Scoring routes share the per-client rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.POST("/analyze", h.Analyze)
		tasks.GET("/suggest", h.SuggestGet)
		tasks.POST("/suggest", h.SuggestPost)
	}
}

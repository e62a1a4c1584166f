package http

import (
	"github.com/gin-gonic/gin"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Per-client rate limiting is applied at the group level; the orchestrator
// enforces its own request window on top of it.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	rg.POST("/messages", h.ProcessMessage)
	rg.GET("/history", h.History)

	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("", h.ListSessions)
		sessions.GET("/:id", h.SessionDetail)
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"soroia/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Sending a message and fetching images are rate-limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/chat/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.DeleteSession)
		sessions.POST("/:id/messages", mw.RateLimit(), h.SendMessage)
		sessions.POST("/:id/detail", h.OpenDetail)
		sessions.DELETE("/:id/detail", h.CloseDetail)
	}

	rg.GET("/artifacts/image", mw.RateLimit(), h.Image)
}

package http

import (
	"journal-ripples/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the ripple and suggested task review endpoints.
// All routes require a scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ripples := rg.Group("/ripples", mw.Scope())
	{
		ripples.GET("", h.List)
		ripples.POST("/:id/approve", h.Approve)
		ripples.POST("/:id/dismiss", h.Dismiss)
	}

	suggested := rg.Group("/suggested-tasks", mw.Scope())
	{
		suggested.GET("", h.ListSuggestedTasks)
		suggested.POST("/:id/accept", h.AcceptSuggestedTask)
		suggested.POST("/:id/reject", h.RejectSuggestedTask)
	}
}

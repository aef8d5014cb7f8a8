package http

import (
	"journal-ripples/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the read-only planner listings. All routes require a scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/tasks", mw.Scope(), h.ListTasks)
	rg.GET("/appointments", mw.Scope(), h.ListAppointments)
	rg.GET("/events", mw.Scope(), h.ListEvents)
}

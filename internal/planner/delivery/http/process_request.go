package http

import (
	"github.com/gin-gonic/gin"
)

// processListTasksReq binds the task listing query parameters.
func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, error) {
	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	return req, nil
}

// processListAppointmentsReq binds and validates the appointment range query.
func (h *handler) processListAppointmentsReq(c *gin.Context) (listAppointmentsReq, error) {
	var req listAppointmentsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	return req, req.validate()
}

// processListEventsReq binds and validates the event range query.
func (h *handler) processListEventsReq(c *gin.Context) (listEventsReq, error) {
	var req listEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	return req, req.validate()
}

package http

import (
	"github.com/gin-gonic/gin"

	"journal-ripples/internal/middleware"
	"journal-ripples/pkg/response"
)

// ListTasks godoc
// @Summary     List materialized tasks
// @Description Returns the caller's tasks, newest first.
// @Tags        Planner
// @Produce     json
// @Param       X-User-ID  header string true  "Owner id"
// @Param       cluster_id query  string false "Filter by cluster"
// @Param       limit      query  int    false "Page size (default: 100)"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListTasks(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "planner.http.ListTasks uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListTasksResp(output))
}

// ListAppointments godoc
// @Summary     List appointments in a date range
// @Description Returns persisted one-off appointments and, with include_series, the virtual occurrences of recurring series. A one-off with the same date, start time and title replaces the virtual occurrence.
// @Tags        Planner
// @Produce     json
// @Param       X-User-ID      header string true  "Owner id"
// @Param       from           query  string true  "First day (YYYY-MM-DD)"
// @Param       to             query  string true  "Last day (YYYY-MM-DD)"
// @Param       include_series query  bool   false "Expand recurring series"
// @Success     200 {object} listAppointmentsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/appointments [GET]
func (h *handler) ListAppointments(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListAppointmentsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListAppointments(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "planner.http.ListAppointments uc.ListAppointments: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListAppointmentsResp(output))
}

// ListEvents godoc
// @Summary     List important events in a date range
// @Tags        Planner
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       from      query  string true "First day (YYYY-MM-DD)"
// @Param       to        query  string true "Last day (YYYY-MM-DD)"
// @Success     200 {object} listEventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListEventsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListEvents(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "planner.http.ListEvents uc.ListEvents: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListEventsResp(output))
}

package http

import (
	"github.com/gin-gonic/gin"

	"journal-ripples/internal/middleware"
	"journal-ripples/pkg/response"
)

// List godoc
// @Summary     List ripples
// @Description Returns the caller's ripples for a journal date, optionally filtered by entry, cluster or status.
// @Tags        Ripples
// @Produce     json
// @Param       X-User-ID  header string true  "Owner id"
// @Param       date       query  string false "Entry date (YYYY-MM-DD)"
// @Param       entry_id   query  string false "Source entry"
// @Param       cluster_id query  string false "Cluster"
// @Param       status     query  string false "pending, approved or dismissed"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ripples [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "ripple.http.List uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Approve godoc
// @Summary     Approve a ripple
// @Description Turns a pending ripple into a task, appointment or important event. The due date defaults to the resolved date, then the entry date.
// @Tags        Ripples
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true  "Owner id"
// @Param       id        path   string     true  "Ripple ID"
// @Param       body      body   approveReq false "Optional cluster and due date"
// @Success     200 {object} approveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already reviewed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ripples/{id}/approve [POST]
func (h *handler) Approve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processApproveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Approve(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "ripple.http.Approve uc.Approve %s: %v", req.ID, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newApproveResp(output))
}

// Dismiss godoc
// @Summary     Dismiss a ripple
// @Tags        Ripples
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id        path   string true "Ripple ID"
// @Success     200 {object} rippleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already reviewed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ripples/{id}/dismiss [POST]
func (h *handler) Dismiss(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	output, err := h.uc.Dismiss(ctx, middleware.GetScope(ctx), id)
	if err != nil {
		h.l.Warnf(ctx, "ripple.http.Dismiss uc.Dismiss %s: %v", id, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newRippleResp(output))
}

// ListSuggestedTasks godoc
// @Summary     List suggested tasks
// @Tags        Suggested Tasks
// @Produce     json
// @Param       X-User-ID header string true  "Owner id"
// @Param       status    query  string false "pending, accepted or rejected"
// @Param       entry_id  query  string false "Source entry"
// @Success     200 {object} listSuggestedResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suggested-tasks [GET]
func (h *handler) ListSuggestedTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListSuggestedReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListSuggestedTasks(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "ripple.http.ListSuggestedTasks uc.ListSuggestedTasks: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListSuggestedResp(output))
}

// AcceptSuggestedTask godoc
// @Summary     Accept a suggested task
// @Description Creates a task from the draft. The paired ripple is not changed.
// @Tags        Suggested Tasks
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id        path   string true "Suggested task ID"
// @Success     200 {object} suggestedTaskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already reviewed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suggested-tasks/{id}/accept [POST]
func (h *handler) AcceptSuggestedTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	output, err := h.uc.AcceptSuggestedTask(ctx, middleware.GetScope(ctx), id)
	if err != nil {
		h.l.Warnf(ctx, "ripple.http.AcceptSuggestedTask uc.AcceptSuggestedTask %s: %v", id, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSuggestedTaskResp(output.SuggestedTask))
}

// RejectSuggestedTask godoc
// @Summary     Reject a suggested task
// @Tags        Suggested Tasks
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id        path   string true "Suggested task ID"
// @Success     200 {object} suggestedTaskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already reviewed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suggested-tasks/{id}/reject [POST]
func (h *handler) RejectSuggestedTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	output, err := h.uc.RejectSuggestedTask(ctx, middleware.GetScope(ctx), id)
	if err != nil {
		h.l.Warnf(ctx, "ripple.http.RejectSuggestedTask uc.RejectSuggestedTask %s: %v", id, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSuggestedTaskResp(output))
}

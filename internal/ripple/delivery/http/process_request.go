package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processListReq binds and validates the ripple listing query.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	return req, req.validate()
}

// processApproveReq binds the optional approve body and the URI id.
func (h *handler) processApproveReq(c *gin.Context) (approveReq, error) {
	var req approveReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, errInvalidBody
	}
	req.ID = c.Param("id")
	return req, req.validate()
}

// processListSuggestedReq binds the suggested task listing query.
func (h *handler) processListSuggestedReq(c *gin.Context) (listSuggestedReq, error) {
	var req listSuggestedReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	return req, nil
}

package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

var errBadID = errors.New("id must not be empty")

// processSaveReq binds and validates the create/update request body.
func (h *handler) processSaveReq(c *gin.Context) (saveReq, error) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processIDParam extracts the :id URI parameter.
func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errBadID
	}
	return id, nil
}

package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errBadIndex = errors.New("index must be a non-negative integer")

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

// processIndexParam parses the positional :index URI parameter.
func (h *handler) processIndexParam(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, errBadIndex
	}
	return index, nil
}

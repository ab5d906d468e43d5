package http

import "github.com/gin-gonic/gin"

// processUpdateReq binds the settings update body.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processStoragePathReq binds the storage path selection body.
func (h *handler) processStoragePathReq(c *gin.Context) (storagePathReq, error) {
	var req storagePathReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

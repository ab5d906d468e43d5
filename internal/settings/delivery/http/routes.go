package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	s := rg.Group("/settings")
	{
		s.GET("", h.Detail)
		s.PUT("", h.Update)
		s.POST("/storage-path", h.SetStoragePath)
	}
}

package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Categories are addressed by position to match the persisted order.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	categories := rg.Group("/categories")
	{
		categories.GET("", h.List)
		categories.POST("", h.Create)
		categories.PUT("/:index", h.Update)
		categories.DELETE("/:index", h.Delete)
	}
}

package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods. End and
// Restore are modeled as explicit actions rather than status patches so
// their semantics stay obvious in logs.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	items := rg.Group("/items")
	{
		items.GET("", h.List)
		items.POST("", h.Create)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
		items.POST("/:id/end", h.End)
		items.POST("/:id/restore", h.Restore)
	}
}

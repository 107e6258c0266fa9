package campaign

import "github.com/gin-gonic/gin"

// RegisterRoutes registers campaign routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	campaigns := r.Group("/campaigns")
	{
		campaigns.POST("", handler.Create)
		campaigns.GET("", handler.List)
		campaigns.GET("/:id/stats", handler.GetStats)
	}
}

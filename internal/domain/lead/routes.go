package lead

import "github.com/gin-gonic/gin"

// RegisterRoutes registers lead routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leads := r.Group("/leads")
	{
		leads.POST("", handler.CreateLead)
		leads.GET("", handler.ListLeads)
		leads.GET("/stats", handler.Stats)
		leads.GET("/:id", handler.GetLead)
		leads.PATCH("/:id/assign", handler.AssignLead)
		leads.PATCH("/:id/status", handler.UpdateStatus)
	}
}

package invoice

import "github.com/gin-gonic/gin"

// RegisterRoutes registers invoice routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	invoices := r.Group("/invoices")
	{
		invoices.POST("", handler.Create)
		invoices.GET("", handler.List)
		invoices.POST("/:id/pay", handler.MarkPaid)
	}
}

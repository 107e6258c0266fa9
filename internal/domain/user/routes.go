package user

import "github.com/gin-gonic/gin"

// RegisterRoutes registers user routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/users", handler.ListActive)
}

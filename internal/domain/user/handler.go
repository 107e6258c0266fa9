package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadcrm/internal/pkg/response"
)

// Handler handles user HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates user handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// ListActive handles GET /api/v1/users
func (h *Handler) ListActive(c *gin.Context) {
	users, err := h.repo.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, users)
}

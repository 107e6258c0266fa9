package campaign

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leadcrm/internal/pkg/response"
	"leadcrm/internal/pkg/validator"
)

// Handler handles campaign HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates campaign handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/campaigns
func (h *Handler) Create(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	campaign, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_CAMPAIGN", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, campaign)
}

// List handles GET /api/v1/campaigns
func (h *Handler) List(c *gin.Context) {
	limit := 50
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}

	offset := 0
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	campaigns, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, campaigns)
}

// GetStats handles GET /api/v1/campaigns/:id/stats
func (h *Handler) GetStats(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid campaign ID")
		return
	}

	stats, err := h.service.GetStats(c.Request.Context(), id)
	if err != nil {
		if err == ErrCampaignNotFound {
			response.Error(c, http.StatusNotFound, "CAMPAIGN_NOT_FOUND", "Campaign not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, stats)
}

package invoice

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leadcrm/internal/pkg/response"
	"leadcrm/internal/pkg/validator"
)

// Handler handles invoice HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates invoice handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/invoices
func (h *Handler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	inv, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if err == ErrLeadNotWon {
			response.Error(c, http.StatusUnprocessableEntity, "LEAD_NOT_WON", "Invoices can only be raised against won leads")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, inv)
}

// List handles GET /api/v1/invoices
func (h *Handler) List(c *gin.Context) {
	var status Status
	if s := c.Query("status"); s != "" {
		status = Status(s)
	}

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

	invoices, err := h.service.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, invoices)
}

// MarkPaid handles POST /api/v1/invoices/:id/pay
func (h *Handler) MarkPaid(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid invoice ID")
		return
	}

	if err := h.service.MarkPaid(c.Request.Context(), id); err != nil {
		switch err {
		case ErrInvoiceNotFound:
			response.Error(c, http.StatusNotFound, "INVOICE_NOT_FOUND", "Invoice not found")
		case ErrAlreadyPaid:
			response.Error(c, http.StatusConflict, "ALREADY_PAID", "Invoice already paid")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Invoice paid"})
}

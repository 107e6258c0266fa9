package importer

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"leadcrm/internal/pkg/response"
)

// Handler handles import HTTP requests
type Handler struct {
	importer *Importer
}

// NewHandler creates import handler
func NewHandler(imp *Importer) *Handler {
	return &Handler{importer: imp}
}

// Import handles POST /api/v1/leads/import. Expects a multipart form
// with a "file" field holding the CSV sheet.
func (h *Handler) Import(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "MISSING_FILE", "Multipart field 'file' is required")
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "UNREADABLE_FILE", "Uploaded file could not be read")
		return
	}
	defer f.Close()

	report, err := h.importer.RunReader(c.Request.Context(), f)
	if err != nil {
		var aerr *AssigneeNotFoundError
		switch {
		case errors.As(err, &aerr):
			// The run aborted; the report carries what was processed
			// before the unresolvable assignee was hit.
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "ASSIGNEE_NOT_FOUND", aerr.Error(), report)
		case errors.Is(err, ErrMissingHeader), errors.Is(err, ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
		case errors.Is(err, ErrTooManyRows):
			response.Error(c, http.StatusRequestEntityTooLarge, "TOO_MANY_ROWS", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, report)
}

// RegisterRoutes registers import routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/leads/import", handler.Import)
}

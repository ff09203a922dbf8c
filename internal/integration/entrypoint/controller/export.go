package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/backend/internal/application/usecase/export"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// ExportController handles CSV download endpoints.
type ExportController struct {
	exportEntries *export.ExportEntriesUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(exportEntries *export.ExportEntriesUseCase) *ExportController {
	return &ExportController{
		exportEntries: exportEntries,
	}
}

// Download handles GET /api/v1/export/:entity.
func (ctrl *ExportController) Download(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	output, err := ctrl.exportEntries.Execute(c.Request.Context(), export.ExportEntriesInput{
		UserID: userID,
		Entity: c.Param("entity"),
	})
	if err != nil {
		var exportErr *domainerror.ExportError
		if errors.As(err, &exportErr) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: exportErr.Message,
				Code:  string(exportErr.Code),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, "text/csv", output.Content)
}

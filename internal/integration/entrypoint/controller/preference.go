package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/backend/internal/application/usecase/preference"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// PreferenceController handles user preference endpoints.
type PreferenceController struct {
	getPreferences    *preference.GetPreferencesUseCase
	updatePreferences *preference.UpdatePreferencesUseCase
}

// NewPreferenceController creates a new preference controller instance.
func NewPreferenceController(
	getPreferences *preference.GetPreferencesUseCase,
	updatePreferences *preference.UpdatePreferencesUseCase,
) *PreferenceController {
	return &PreferenceController{
		getPreferences:    getPreferences,
		updatePreferences: updatePreferences,
	}
}

// Get handles GET /api/v1/preferences.
func (ctrl *PreferenceController) Get(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	output, err := ctrl.getPreferences.Execute(c.Request.Context(), preference.GetPreferencesInput{
		UserID: userID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferencesResponse(output.Preferences))
}

// Update handles PATCH /api/v1/preferences. Omitted fields keep their
// current value.
func (ctrl *PreferenceController) Update(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := preference.UpdatePreferencesInput{UserID: userID}
	if req.Currency != nil {
		currency := entity.Currency(*req.Currency)
		input.Currency = &currency
	}
	if req.DateFormat != nil {
		dateFormat := entity.DateFormat(*req.DateFormat)
		input.DateFormat = &dateFormat
	}

	output, err := ctrl.updatePreferences.Execute(c.Request.Context(), input)
	if err != nil {
		var prefErr *domainerror.PreferenceError
		if errors.As(err, &prefErr) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: prefErr.Message,
				Code:  string(prefErr.Code),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferencesResponse(output.Preferences))
}

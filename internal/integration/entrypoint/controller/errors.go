// Package controller implements the HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
)

// dateLayout is the wire format for all entry dates.
const dateLayout = "2006-01-02"

// respondUnauthorized writes the 401 payload used when the auth context is missing.
func respondUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// respondEntryError maps entry domain errors onto HTTP statuses. Validation
// failures are 400, missing entries 404, ownership violations 403.
func respondEntryError(c *gin.Context, err error) {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		status := http.StatusBadRequest
		switch entryErr.Code {
		case domainerror.ErrCodeEntryNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeNotEntryOwner:
			status = http.StatusForbidden
		}
		c.JSON(status, dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

// respondAuthError maps authentication domain errors onto HTTP statuses.
func respondAuthError(c *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		status := http.StatusBadRequest
		switch authErr.Code {
		case domainerror.ErrCodeInvalidCredentials,
			domainerror.ErrCodeMissingToken,
			domainerror.ErrCodeInvalidToken,
			domainerror.ErrCodeResetTokenUsed:
			status = http.StatusUnauthorized
		case domainerror.ErrCodeEmailExists:
			status = http.StatusConflict
		case domainerror.ErrCodeUserNotFound:
			status = http.StatusNotFound
		}
		c.JSON(status, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

// parseEntryDate parses a wire-format date, writing a 400 response on failure.
func parseEntryDate(c *gin.Context, value string) (time.Time, bool) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidEntryDate),
		})
		return time.Time{}, false
	}
	return date, true
}

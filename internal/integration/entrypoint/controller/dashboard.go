package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/backend/internal/application/usecase/dashboard"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles the overview endpoints.
type DashboardController struct {
	getSummary         *dashboard.GetSummaryUseCase
	recentTransactions *dashboard.RecentTransactionsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getSummary *dashboard.GetSummaryUseCase,
	recentTransactions *dashboard.RecentTransactionsUseCase,
) *DashboardController {
	return &DashboardController{
		getSummary:         getSummary,
		recentTransactions: recentTransactions,
	}
}

// Summary handles GET /api/v1/dashboard/summary. The optional from and to
// query parameters narrow the window; either side may be omitted.
func (ctrl *DashboardController) Summary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var window dashboard.DateRange
	if from := c.Query("from"); from != "" {
		date, ok := parseEntryDate(c, from)
		if !ok {
			return
		}
		window.From = &date
	}
	if to := c.Query("to"); to != "" {
		date, ok := parseEntryDate(c, to)
		if !ok {
			return
		}
		window.To = &date
	}

	output, err := ctrl.getSummary.Execute(c.Request.Context(), dashboard.GetSummaryInput{
		UserID: userID,
		Range:  window,
	})
	if err != nil {
		var dashErr *domainerror.DashboardError
		if errors.As(err, &dashErr) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: dashErr.Message,
				Code:  string(dashErr.Code),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// Recent handles GET /api/v1/dashboard/recent. Accepts the same optional
// from and to query parameters as Summary.
func (ctrl *DashboardController) Recent(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var window dashboard.DateRange
	if from := c.Query("from"); from != "" {
		date, ok := parseEntryDate(c, from)
		if !ok {
			return
		}
		window.From = &date
	}
	if to := c.Query("to"); to != "" {
		date, ok := parseEntryDate(c, to)
		if !ok {
			return
		}
		window.To = &date
	}

	output, err := ctrl.recentTransactions.Execute(c.Request.Context(), dashboard.RecentTransactionsInput{
		UserID: userID,
		Range:  window,
	})
	if err != nil {
		var dashErr *domainerror.DashboardError
		if errors.As(err, &dashErr) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: dashErr.Message,
				Code:  string(dashErr.Code),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRecentTransactionsResponse(output.Transactions))
}

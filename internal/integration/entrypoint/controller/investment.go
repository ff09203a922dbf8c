package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/usecase/investment"
	"github.com/fintrack/backend/internal/domain/entity"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// InvestmentController handles investment entry endpoints.
type InvestmentController struct {
	addInvestment    *investment.AddInvestmentUseCase
	listInvestments  *investment.ListInvestmentsUseCase
	editInvestment   *investment.EditInvestmentUseCase
	deleteInvestment *investment.DeleteInvestmentUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	addInvestment *investment.AddInvestmentUseCase,
	listInvestments *investment.ListInvestmentsUseCase,
	editInvestment *investment.EditInvestmentUseCase,
	deleteInvestment *investment.DeleteInvestmentUseCase,
) *InvestmentController {
	return &InvestmentController{
		addInvestment:    addInvestment,
		listInvestments:  listInvestments,
		editInvestment:   editInvestment,
		deleteInvestment: deleteInvestment,
	}
}

// Add handles POST /api/v1/investments.
func (ctrl *InvestmentController) Add(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req dto.InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, ok := parseEntryDate(c, req.Date)
	if !ok {
		return
	}

	output, err := ctrl.addInvestment.Execute(c.Request.Context(), investment.AddInvestmentInput{
		UserID:   userID,
		Name:     req.Name,
		Category: entity.InvestmentCategory(req.Category),
		Units:    req.Units,
		Price:    req.Price,
		Notes:    req.Notes,
		Date:     date,
	})
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvestmentResponse(output.Investment))
}

// List handles GET /api/v1/investments.
func (ctrl *InvestmentController) List(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	output, err := ctrl.listInvestments.Execute(c.Request.Context(), investment.ListInvestmentsInput{
		UserID: userID,
	})
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentListResponse(output.Investments, output.Total))
}

// Edit handles PUT /api/v1/investments/:id.
func (ctrl *InvestmentController) Edit(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	investmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid investment ID"})
		return
	}

	var req dto.InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, ok := parseEntryDate(c, req.Date)
	if !ok {
		return
	}

	output, err := ctrl.editInvestment.Execute(c.Request.Context(), investment.EditInvestmentInput{
		InvestmentID: investmentID,
		UserID:       userID,
		Name:         req.Name,
		Category:     entity.InvestmentCategory(req.Category),
		Units:        req.Units,
		Price:        req.Price,
		Notes:        req.Notes,
		Date:         date,
	})
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(output.Investment))
}

// Delete handles DELETE /api/v1/investments/:id.
func (ctrl *InvestmentController) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	investmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid investment ID"})
		return
	}

	if _, err := ctrl.deleteInvestment.Execute(c.Request.Context(), investment.DeleteInvestmentInput{
		InvestmentID: investmentID,
		UserID:       userID,
	}); err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Investment deleted"})
}

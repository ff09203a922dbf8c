package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/usecase/income"
	"github.com/fintrack/backend/internal/domain/entity"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// IncomeController handles income entry endpoints.
type IncomeController struct {
	addIncome    *income.AddIncomeUseCase
	listIncomes  *income.ListIncomesUseCase
	editIncome   *income.EditIncomeUseCase
	deleteIncome *income.DeleteIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	addIncome *income.AddIncomeUseCase,
	listIncomes *income.ListIncomesUseCase,
	editIncome *income.EditIncomeUseCase,
	deleteIncome *income.DeleteIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		addIncome:    addIncome,
		listIncomes:  listIncomes,
		editIncome:   editIncome,
		deleteIncome: deleteIncome,
	}
}

// Add handles POST /api/v1/incomes.
func (ctrl *IncomeController) Add(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req dto.IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, ok := parseEntryDate(c, req.Date)
	if !ok {
		return
	}

	output, err := ctrl.addIncome.Execute(c.Request.Context(), income.AddIncomeInput{
		UserID:      userID,
		Amount:      req.Amount,
		Category:    entity.IncomeCategory(req.Category),
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Income))
}

// List handles GET /api/v1/incomes.
func (ctrl *IncomeController) List(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	output, err := ctrl.listIncomes.Execute(c.Request.Context(), income.ListIncomesInput{
		UserID: userID,
	})
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeListResponse(output.Incomes, output.Total))
}

// Edit handles PUT /api/v1/incomes/:id.
func (ctrl *IncomeController) Edit(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	incomeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid income ID"})
		return
	}

	var req dto.IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, ok := parseEntryDate(c, req.Date)
	if !ok {
		return
	}

	output, err := ctrl.editIncome.Execute(c.Request.Context(), income.EditIncomeInput{
		IncomeID:    incomeID,
		UserID:      userID,
		Amount:      req.Amount,
		Category:    entity.IncomeCategory(req.Category),
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeResponse(output.Income))
}

// Delete handles DELETE /api/v1/incomes/:id.
func (ctrl *IncomeController) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	incomeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid income ID"})
		return
	}

	if _, err := ctrl.deleteIncome.Execute(c.Request.Context(), income.DeleteIncomeInput{
		IncomeID: incomeID,
		UserID:   userID,
	}); err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Income deleted"})
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/usecase/expense"
	"github.com/fintrack/backend/internal/domain/entity"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense entry endpoints.
type ExpenseController struct {
	addExpense    *expense.AddExpenseUseCase
	listExpenses  *expense.ListExpensesUseCase
	editExpense   *expense.EditExpenseUseCase
	deleteExpense *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	addExpense *expense.AddExpenseUseCase,
	listExpenses *expense.ListExpensesUseCase,
	editExpense *expense.EditExpenseUseCase,
	deleteExpense *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		addExpense:    addExpense,
		listExpenses:  listExpenses,
		editExpense:   editExpense,
		deleteExpense: deleteExpense,
	}
}

// Add handles POST /api/v1/expenses.
func (ctrl *ExpenseController) Add(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, ok := parseEntryDate(c, req.Date)
	if !ok {
		return
	}

	output, err := ctrl.addExpense.Execute(c.Request.Context(), expense.AddExpenseInput{
		UserID:      userID,
		Amount:      req.Amount,
		Category:    entity.ExpenseCategory(req.Category),
		PaidVia:     entity.PaymentMethod(req.PaidVia),
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /api/v1/expenses.
func (ctrl *ExpenseController) List(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	output, err := ctrl.listExpenses.Execute(c.Request.Context(), expense.ListExpensesInput{
		UserID: userID,
	})
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses, output.Total))
}

// Edit handles PUT /api/v1/expenses/:id.
func (ctrl *ExpenseController) Edit(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid expense ID"})
		return
	}

	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, ok := parseEntryDate(c, req.Date)
	if !ok {
		return
	}

	output, err := ctrl.editExpense.Execute(c.Request.Context(), expense.EditExpenseInput{
		ExpenseID:   expenseID,
		UserID:      userID,
		Amount:      req.Amount,
		Category:    entity.ExpenseCategory(req.Category),
		PaidVia:     entity.PaymentMethod(req.PaidVia),
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /api/v1/expenses/:id.
func (ctrl *ExpenseController) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid expense ID"})
		return
	}

	if _, err := ctrl.deleteExpense.Execute(c.Request.Context(), expense.DeleteExpenseInput{
		ExpenseID: expenseID,
		UserID:    userID,
	}); err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted"})
}

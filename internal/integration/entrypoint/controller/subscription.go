package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/usecase/subscription"
	"github.com/fintrack/backend/internal/domain/entity"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// SubscriptionController handles subscription endpoints.
type SubscriptionController struct {
	addSubscription    *subscription.AddSubscriptionUseCase
	listSubscriptions  *subscription.ListSubscriptionsUseCase
	editSubscription   *subscription.EditSubscriptionUseCase
	deleteSubscription *subscription.DeleteSubscriptionUseCase
}

// NewSubscriptionController creates a new subscription controller instance.
func NewSubscriptionController(
	addSubscription *subscription.AddSubscriptionUseCase,
	listSubscriptions *subscription.ListSubscriptionsUseCase,
	editSubscription *subscription.EditSubscriptionUseCase,
	deleteSubscription *subscription.DeleteSubscriptionUseCase,
) *SubscriptionController {
	return &SubscriptionController{
		addSubscription:    addSubscription,
		listSubscriptions:  listSubscriptions,
		editSubscription:   editSubscription,
		deleteSubscription: deleteSubscription,
	}
}

// Add handles POST /api/v1/subscriptions.
func (ctrl *SubscriptionController) Add(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req dto.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, ok := parseEntryDate(c, req.StartDate)
	if !ok {
		return
	}

	output, err := ctrl.addSubscription.Execute(c.Request.Context(), subscription.AddSubscriptionInput{
		UserID:       userID,
		Name:         req.Name,
		Amount:       req.Amount,
		BillingCycle: entity.BillingCycle(req.BillingCycle),
		StartDate:    startDate,
		Status:       entity.SubscriptionStatus(req.Status),
		Notes:        req.Notes,
	})
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSubscriptionResponse(output.Subscription))
}

// List handles GET /api/v1/subscriptions.
func (ctrl *SubscriptionController) List(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	output, err := ctrl.listSubscriptions.Execute(c.Request.Context(), subscription.ListSubscriptionsInput{
		UserID: userID,
	})
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionListResponse(output.Subscriptions, output.Total))
}

// Edit handles PUT /api/v1/subscriptions/:id.
func (ctrl *SubscriptionController) Edit(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	subscriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid subscription ID"})
		return
	}

	var req dto.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, ok := parseEntryDate(c, req.StartDate)
	if !ok {
		return
	}

	output, err := ctrl.editSubscription.Execute(c.Request.Context(), subscription.EditSubscriptionInput{
		SubscriptionID: subscriptionID,
		UserID:         userID,
		Name:           req.Name,
		Amount:         req.Amount,
		BillingCycle:   entity.BillingCycle(req.BillingCycle),
		StartDate:      startDate,
		Status:         entity.SubscriptionStatus(req.Status),
		Notes:          req.Notes,
	})
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(output.Subscription))
}

// Delete handles DELETE /api/v1/subscriptions/:id.
func (ctrl *SubscriptionController) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	subscriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid subscription ID"})
		return
	}

	if _, err := ctrl.deleteSubscription.Execute(c.Request.Context(), subscription.DeleteSubscriptionInput{
		SubscriptionID: subscriptionID,
		UserID:         userID,
	}); err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Subscription deleted"})
}

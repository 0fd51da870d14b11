package handler

import (
	apployalty "github.com/coffeehouse/backend/internal/application/loyalty"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoyaltyHandler handles the authenticated loyalty endpoints
type LoyaltyHandler struct {
	BaseHandler
	loyaltyService *apployalty.LoyaltyService
}

// NewLoyaltyHandler creates a new LoyaltyHandler
func NewLoyaltyHandler(loyaltyService *apployalty.LoyaltyService, logger *zap.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{
		BaseHandler:    NewBaseHandler(logger),
		loyaltyService: loyaltyService,
	}
}

// Account handles GET /loyalty/account
func (h *LoyaltyHandler) Account(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	result, err := h.loyaltyService.GetAccount(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Rewards handles GET /loyalty/rewards
func (h *LoyaltyHandler) Rewards(c *gin.Context) {
	result, err := h.loyaltyService.ListRewards(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Redeem handles POST /loyalty/redeem
func (h *LoyaltyHandler) Redeem(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req apployalty.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	result, err := h.loyaltyService.Redeem(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// History handles GET /loyalty/history
func (h *LoyaltyHandler) History(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	result, err := h.loyaltyService.History(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

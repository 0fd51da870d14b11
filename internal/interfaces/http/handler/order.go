package handler

import (
	apporder "github.com/coffeehouse/backend/internal/application/order"
	"github.com/coffeehouse/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler handles the authenticated order endpoints
type OrderHandler struct {
	BaseHandler
	checkoutService *apporder.CheckoutService
	orderService    *apporder.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(
	checkoutService *apporder.CheckoutService,
	orderService *apporder.OrderService,
	logger *zap.Logger,
) *OrderHandler {
	return &OrderHandler{
		BaseHandler:     NewBaseHandler(logger),
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}

// Checkout handles POST /orders/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req apporder.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	result, err := h.checkoutService.Checkout(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List handles GET /orders listing the user's own orders
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var filter apporder.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err)
		return
	}

	result, err := h.orderService.ListByUser(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}
	orderID, ok := h.ParseID(c)
	if !ok {
		return
	}

	role, _ := middleware.GetRole(c)
	result, err := h.orderService.GetByID(c.Request.Context(), userID, role == "admin", orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// cancelRequest carries an optional cancellation reason
type cancelRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// Cancel handles POST /orders/:id/cancel for the user's own order
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}
	orderID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.BadRequest(c, err)
		return
	}

	result, err := h.orderService.CancelOwn(c.Request.Context(), userID, orderID, req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

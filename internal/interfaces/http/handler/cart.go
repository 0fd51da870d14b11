package handler

import (
	appcart "github.com/coffeehouse/backend/internal/application/cart"
	"github.com/coffeehouse/backend/internal/domain/cart"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler handles the authenticated cart endpoints
type CartHandler struct {
	BaseHandler
	cartService *appcart.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *appcart.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		BaseHandler: NewBaseHandler(logger),
		cartService: cartService,
	}
}

// Get handles GET /cart
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	result, err := h.cartService.Get(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req appcart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	result, err := h.cartService.AddItem(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RemoveItem handles DELETE /cart/items/:product_id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	productID := c.Param("product_id")
	result, err := h.cartService.RemoveItem(c.Request.Context(), userID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// SetQuantity handles PUT /cart/items/:product_id
func (h *CartHandler) SetQuantity(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	var req appcart.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	productID := c.Param("product_id")
	result, err := h.cartService.SetQuantity(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	result, err := h.cartService.Clear(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Totals handles GET /cart/totals?order_type=pickup|delivery
func (h *CartHandler) Totals(c *gin.Context) {
	userID, ok := h.UserID(c)
	if !ok {
		return
	}

	orderType := cart.OrderType(c.DefaultQuery("order_type", string(cart.OrderTypePickup)))
	result, err := h.cartService.Totals(c.Request.Context(), userID, orderType)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

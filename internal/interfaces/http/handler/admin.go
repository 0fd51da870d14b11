package handler

import (
	appcatalog "github.com/coffeehouse/backend/internal/application/catalog"
	apployalty "github.com/coffeehouse/backend/internal/application/loyalty"
	apporder "github.com/coffeehouse/backend/internal/application/order"
	appreport "github.com/coffeehouse/backend/internal/application/report"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler handles the back office endpoints. All routes require the
// admin role.
type AdminHandler struct {
	BaseHandler
	productService *appcatalog.ProductService
	orderService   *apporder.OrderService
	loyaltyService *apployalty.LoyaltyService
	statsService   *appreport.StatsService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(
	productService *appcatalog.ProductService,
	orderService *apporder.OrderService,
	loyaltyService *apployalty.LoyaltyService,
	statsService *appreport.StatsService,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    NewBaseHandler(logger),
		productService: productService,
		orderService:   orderService,
		loyaltyService: loyaltyService,
		statsService:   statsService,
	}
}

// CreateProduct handles POST /admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req appcatalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	result, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// UpdateProduct handles PUT /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req appcatalog.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	result, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// setActiveRequest toggles a product's menu visibility
type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetProductActive handles PUT /admin/products/:id/active
func (h *AdminHandler) SetProductActive(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	result, err := h.productService.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListOrders handles GET /admin/orders
func (h *AdminHandler) ListOrders(c *gin.Context) {
	var filter apporder.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err)
		return
	}

	result, err := h.orderService.ListAll(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req apporder.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	result, err := h.orderService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// CreateReward handles POST /admin/rewards
func (h *AdminHandler) CreateReward(c *gin.Context) {
	var req apployalty.CreateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	result, err := h.loyaltyService.CreateReward(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Dashboard handles GET /admin/stats/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	var filter appreport.StatsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err)
		return
	}

	result, err := h.statsService.GetDashboard(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DailyRevenue handles GET /admin/stats/daily-revenue
func (h *AdminHandler) DailyRevenue(c *gin.Context) {
	var filter appreport.StatsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err)
		return
	}

	result, err := h.statsService.GetDailyRevenue(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

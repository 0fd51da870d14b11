package handler

import (
	"github.com/coffeehouse/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MenuHandler handles the public storefront menu endpoints
type MenuHandler struct {
	BaseHandler
	productService *catalog.ProductService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(productService *catalog.ProductService, logger *zap.Logger) *MenuHandler {
	return &MenuHandler{
		BaseHandler:    NewBaseHandler(logger),
		productService: productService,
	}
}

// List handles GET /menu
func (h *MenuHandler) List(c *gin.Context) {
	var filter catalog.MenuFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err)
		return
	}

	result, err := h.productService.ListMenu(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get handles GET /menu/:id
func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Categories handles GET /menu/categories
func (h *MenuHandler) Categories(c *gin.Context) {
	categories, err := h.productService.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// Featured handles GET /menu/featured
func (h *MenuHandler) Featured(c *gin.Context) {
	products, err := h.productService.ListFeatured(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

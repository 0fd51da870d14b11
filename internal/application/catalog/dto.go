package catalog

import (
	"time"

	"github.com/coffeehouse/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a menu product
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	Price       decimal.Decimal `json:"price" binding:"required,gt=0"`
	Image       string          `json:"image" binding:"max=500"`
	Category    string          `json:"category" binding:"required,min=1,max=100"`
	Featured    bool            `json:"featured"`
}

// UpdateProductRequest represents a request to update a menu product
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price" binding:"omitempty,gt=0"`
	Image       *string          `json:"image" binding:"omitempty,max=500"`
	Category    *string          `json:"category" binding:"omitempty,min=1,max=100"`
	Featured    *bool            `json:"featured"`
}

// ProductResponse represents a menu product in API responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Featured    bool            `json:"featured"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MenuFilter represents filter options for the menu listing
type MenuFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Featured *bool  `form:"featured"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size" binding:"omitempty,max=100"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Category:    p.Category,
		Featured:    p.Featured,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

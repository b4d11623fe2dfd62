package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/domain/catalog"
	"github.com/warungpos/backend/internal/domain/inventory"
)

// CreateProductRequest represents a request to add a product
type CreateProductRequest struct {
	Name      string          `json:"name" binding:"required,min=1,max=200"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	Category  string          `json:"category" binding:"required,min=1,max=100"`
	Unit      string          `json:"unit" binding:"required,min=1,max=20"`
	IsPackage bool            `json:"is_package"`
	Image     string          `json:"image" binding:"max=500"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name     *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Price    *decimal.Decimal `json:"price"`
	Category *string          `json:"category" binding:"omitempty,min=1,max=100"`
	Unit     *string          `json:"unit" binding:"omitempty,min=1,max=20"`
	Image    *string          `json:"image" binding:"omitempty,max=500"`
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Category *string `form:"category"`
	Page     int     `form:"page" binding:"omitempty,min=1"`
	PageSize int     `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
	Unit      string          `json:"unit"`
	IsPackage bool            `json:"is_package"`
	Image     string          `json:"image,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateRecipeComponentRequest links a product to an inventory item
type CreateRecipeComponentRequest struct {
	ProductID       uuid.UUID       `json:"product_id" binding:"required"`
	InventoryItemID uuid.UUID       `json:"inventory_item_id" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
}

// RecipeComponentResponse represents a recipe component in API responses
type RecipeComponentResponse struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"product_id"`
	InventoryItemID uuid.UUID       `json:"inventory_item_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToProductResponse maps a product onto its API representation
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Category:  p.Category,
		Unit:      p.Unit,
		IsPackage: p.IsPackage,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToProductResponses maps a slice of products onto API representations
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses
}

// ToRecipeComponentResponse maps a recipe component onto its API representation
func ToRecipeComponentResponse(rc *inventory.RecipeComponent) RecipeComponentResponse {
	return RecipeComponentResponse{
		ID:              rc.ID,
		ProductID:       rc.ProductID,
		InventoryItemID: rc.InventoryItemID,
		Quantity:        rc.Quantity,
		CreatedAt:       rc.CreatedAt,
	}
}

// ToRecipeComponentResponses maps a slice of recipe components
func ToRecipeComponentResponses(components []inventory.RecipeComponent) []RecipeComponentResponse {
	responses := make([]RecipeComponentResponse, 0, len(components))
	for i := range components {
		responses = append(responses, ToRecipeComponentResponse(&components[i]))
	}
	return responses
}

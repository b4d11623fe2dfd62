package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/domain/inventory"
)

// CreateItemRequest represents a request to register an inventory item
type CreateItemRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=200"`
	Unit         string          `json:"unit" binding:"required,min=1,max=20"`
	Category     string          `json:"category" binding:"max=100"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinThreshold decimal.Decimal `json:"min_threshold"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
}

// UpdateItemRequest represents a request to update an inventory item's
// descriptive fields. Stock itself moves only through deductions,
// restorations and explicit adjustments.
type UpdateItemRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Unit         *string          `json:"unit" binding:"omitempty,min=1,max=20"`
	Category     *string          `json:"category" binding:"omitempty,max=100"`
	MinThreshold *decimal.Decimal `json:"min_threshold"`
	CostPerUnit  *decimal.Decimal `json:"cost_per_unit"`
}

// AdjustStockRequest represents a manual signed stock correction
type AdjustStockRequest struct {
	Delta decimal.Decimal `json:"delta" binding:"required"`
	Note  string          `json:"note" binding:"max=500"`
}

// ListFilter represents filter options for the inventory item list
type ListFilter struct {
	Category *string `form:"category"`
	LowStock bool    `form:"low_stock"`
	Page     int     `form:"page" binding:"omitempty,min=1"`
	PageSize int     `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ItemResponse represents an inventory item in API responses
type ItemResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	Unit           string          `json:"unit"`
	MinThreshold   decimal.Decimal `json:"min_threshold"`
	CostPerUnit    decimal.Decimal `json:"cost_per_unit"`
	Category       string          `json:"category,omitempty"`
	BelowThreshold bool            `json:"below_threshold"`
	LastUpdated    time.Time       `json:"last_updated"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToItemResponse maps an inventory item onto its API representation
func ToItemResponse(item *inventory.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:             item.ID,
		Name:           item.Name,
		CurrentStock:   item.CurrentStock,
		Unit:           item.Unit,
		MinThreshold:   item.MinThreshold,
		CostPerUnit:    item.CostPerUnit,
		Category:       item.Category,
		BelowThreshold: item.IsBelowThreshold(),
		LastUpdated:    item.LastUpdated,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

// ToItemResponses maps a slice of inventory items onto API representations
func ToItemResponses(items []inventory.InventoryItem) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToItemResponse(&items[i]))
	}
	return responses
}

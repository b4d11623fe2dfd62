package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/domain/shared"
)

// RecipeComponent links a sellable product to an inventory item it
// consumes, with a per-unit quantity multiplier. The deduction protocol
// reads these; it never writes them.
type RecipeComponent struct {
	shared.BaseEntity
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	InventoryItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (RecipeComponent) TableName() string {
	return "recipe_components"
}

// NewRecipeComponent creates a new recipe component
func NewRecipeComponent(productID, inventoryItemID uuid.UUID, quantity decimal.Decimal) (*RecipeComponent, error) {
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("Product ID cannot be empty")
	}
	if inventoryItemID == uuid.Nil {
		return nil, shared.NewValidationError("Inventory item ID cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("Recipe quantity must be positive")
	}

	return &RecipeComponent{
		BaseEntity:      shared.NewBaseEntity(),
		ProductID:       productID,
		InventoryItemID: inventoryItemID,
		Quantity:        quantity,
	}, nil
}

package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/domain/shared"
)

// MovementKind classifies a recorded stock movement
type MovementKind string

const (
	MovementKindDeduction   MovementKind = "deduction"
	MovementKindRestoration MovementKind = "restoration"
	MovementKindAdjustment  MovementKind = "adjustment"
)

// IsValid returns true if the kind is a known MovementKind
func (k MovementKind) IsValid() bool {
	switch k {
	case MovementKindDeduction, MovementKindRestoration, MovementKindAdjustment:
		return true
	}
	return false
}

// StockMovement is the append-only record of one stock change applied
// to one inventory item. Movements for an order are what RestoreForOrder
// replays with the opposite sign, which is why Quantity records the
// quantity actually applied rather than the quantity requested.
type StockMovement struct {
	shared.BaseEntity
	InventoryItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderID         *uuid.UUID      `gorm:"type:uuid;index"`
	Kind            MovementKind    `gorm:"type:varchar(20);not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Short           bool            `gorm:"not null;default:false"`
	OccurredAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement records a stock change against an inventory item.
// Deduction and restoration quantities are unsigned, direction implied
// by the kind; adjustments carry a signed quantity so the direction of
// a manual correction stays recoverable from the movement log.
func NewStockMovement(inventoryItemID uuid.UUID, orderID *uuid.UUID, kind MovementKind, quantity decimal.Decimal, short bool) (*StockMovement, error) {
	if inventoryItemID == uuid.Nil {
		return nil, shared.NewValidationError("Inventory item ID cannot be empty")
	}
	if !kind.IsValid() {
		return nil, shared.NewValidationError("Unknown movement kind")
	}
	if quantity.IsNegative() && kind != MovementKindAdjustment {
		return nil, shared.NewValidationError("Movement quantity cannot be negative")
	}

	return &StockMovement{
		BaseEntity:      shared.NewBaseEntity(),
		InventoryItemID: inventoryItemID,
		OrderID:         orderID,
		Kind:            kind,
		Quantity:        quantity,
		Short:           short,
		OccurredAt:      time.Now(),
	}, nil
}

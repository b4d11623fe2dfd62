package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/domain/shared"
)

// ShortagePolicy controls what happens when a deduction would drive
// stock below zero.
type ShortagePolicy string

const (
	// ShortagePolicyReject fails the whole deduction when any item
	// would go negative. This is the default.
	ShortagePolicyReject ShortagePolicy = "reject"
	// ShortagePolicyClamp floors stock at zero and flags the shortage
	// on the recorded movement instead of failing.
	ShortagePolicyClamp ShortagePolicy = "clamp"
)

// IsValid returns true if the policy is a known ShortagePolicy
func (p ShortagePolicy) IsValid() bool {
	return p == ShortagePolicyReject || p == ShortagePolicyClamp
}

// InventoryItem is raw stock tracked by the back office. Its stock
// level is mutated only through the recipe-driven deduction protocol
// and explicit adjustments, never by direct client edits.
type InventoryItem struct {
	shared.BaseAggregateRoot
	Name         string          `gorm:"type:varchar(100);not null"`
	CurrentStock decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Unit         string          `gorm:"type:varchar(20);not null"`
	MinThreshold decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CostPerUnit  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Category     string          `gorm:"type:varchar(50);index"`
	LastUpdated  time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// NewInventoryItem creates a new inventory item
func NewInventoryItem(name, unit, category string, currentStock, minThreshold, costPerUnit decimal.Decimal) (*InventoryItem, error) {
	if name == "" {
		return nil, shared.NewValidationError("Inventory item name cannot be empty")
	}
	if unit == "" {
		return nil, shared.NewValidationError("Unit cannot be empty")
	}
	if currentStock.IsNegative() {
		return nil, shared.NewValidationError("Current stock cannot be negative")
	}
	if minThreshold.IsNegative() {
		return nil, shared.NewValidationError("Minimum threshold cannot be negative")
	}
	if costPerUnit.IsNegative() {
		return nil, shared.NewValidationError("Cost per unit cannot be negative")
	}

	return &InventoryItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		CurrentStock:      currentStock,
		Unit:              unit,
		MinThreshold:      minThreshold,
		CostPerUnit:       costPerUnit,
		Category:          category,
		LastUpdated:       time.Now(),
	}, nil
}

// IsBelowThreshold returns true when stock has fallen under the
// configured minimum.
func (i *InventoryItem) IsBelowThreshold() bool {
	return i.CurrentStock.LessThan(i.MinThreshold)
}

// Deduct lowers stock by quantity under the given shortage policy.
// It returns the quantity actually removed, which under the clamp
// policy may be less than requested, together with a shortage flag.
func (i *InventoryItem) Deduct(quantity decimal.Decimal, policy ShortagePolicy) (applied decimal.Decimal, short bool, err error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, false, shared.NewValidationError("Deduction quantity must be positive")
	}

	remaining := i.CurrentStock.Sub(quantity)
	if remaining.IsNegative() {
		switch policy {
		case ShortagePolicyClamp:
			applied = i.CurrentStock
			i.CurrentStock = decimal.Zero
			short = true
		case ShortagePolicyReject:
			return decimal.Zero, false, shared.NewInsufficientStockError(
				fmt.Sprintf("Insufficient stock of %s: have %s, need %s",
					i.Name, i.CurrentStock.String(), quantity.String()))
		default:
			return decimal.Zero, false, shared.NewValidationError("Unknown shortage policy")
		}
	} else {
		applied = quantity
		i.CurrentStock = remaining
	}

	i.LastUpdated = time.Now()
	i.UpdatedAt = i.LastUpdated
	i.IncrementVersion()
	return applied, short, nil
}

// Restore raises stock by quantity. Used to reverse a prior deduction;
// the caller replays the exact applied quantities so the round trip is
// decimal-exact.
func (i *InventoryItem) Restore(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewValidationError("Restore quantity must be positive")
	}

	i.CurrentStock = i.CurrentStock.Add(quantity)
	i.LastUpdated = time.Now()
	i.UpdatedAt = i.LastUpdated
	i.IncrementVersion()
	return nil
}

// Adjust applies a signed stock delta from a manual correction.
func (i *InventoryItem) Adjust(delta decimal.Decimal) error {
	next := i.CurrentStock.Add(delta)
	if next.IsNegative() {
		return shared.NewInsufficientStockError(
			fmt.Sprintf("Adjustment would drive %s stock negative", i.Name))
	}

	i.CurrentStock = next
	i.LastUpdated = time.Now()
	i.UpdatedAt = i.LastUpdated
	i.IncrementVersion()
	return nil
}

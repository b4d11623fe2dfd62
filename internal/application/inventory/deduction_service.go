package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/domain/inventory"
	"github.com/warungpos/backend/internal/domain/order"
	"github.com/warungpos/backend/internal/domain/shared"
)

// Repositories groups the inventory-side repositories one deduction or
// restoration run needs. All three must be scoped to the same database
// transaction; the caller owns the transaction boundary.
type Repositories struct {
	Items     inventory.ItemRepository
	Recipes   inventory.RecipeRepository
	Movements inventory.MovementRepository
}

// DeductionService applies recipe-driven stock deductions for orders
// and replays them back on cancellation. Stock rows are fetched with
// row locks so concurrent deductions against the same item serialize.
type DeductionService struct {
	policy inventory.ShortagePolicy
}

// NewDeductionService creates a DeductionService with the configured
// shortage policy.
func NewDeductionService(policy inventory.ShortagePolicy) (*DeductionService, error) {
	if !policy.IsValid() {
		return nil, shared.NewValidationError(
			fmt.Sprintf("Unknown shortage policy %q", policy))
	}
	return &DeductionService{policy: policy}, nil
}

// Policy returns the configured shortage policy
func (s *DeductionService) Policy() inventory.ShortagePolicy {
	return s.policy
}

// DeductForOrder decrements stock for every recipe component behind
// every line item of the order and records one movement per touched
// inventory item. Items without a recipe consume nothing. An error
// leaves the transaction to roll back everything already applied.
func (s *DeductionService) DeductForOrder(ctx context.Context, repos Repositories, o *order.Order) error {
	required, err := s.requiredQuantities(ctx, repos, o)
	if err != nil {
		return err
	}

	for _, itemID := range sortedKeys(required) {
		quantity := required[itemID]

		item, err := repos.Items.FindByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}

		applied, short, err := item.Deduct(quantity, s.policy)
		if err != nil {
			return err
		}
		if err := repos.Items.Save(ctx, item); err != nil {
			return err
		}

		// Movements record applied quantities, not requested ones, so a
		// later restoration replays exactly what happened.
		movement, err := inventory.NewStockMovement(itemID, &o.ID, inventory.MovementKindDeduction, applied, short)
		if err != nil {
			return err
		}
		if err := repos.Movements.Create(ctx, movement); err != nil {
			return err
		}
	}

	return nil
}

// RestoreForOrder reverses the order's recorded deductions exactly. A
// second call finds only already-restored movements and does nothing.
func (s *DeductionService) RestoreForOrder(ctx context.Context, repos Repositories, orderID uuid.UUID) error {
	deductions, err := repos.Movements.FindByOrder(ctx, orderID, inventory.MovementKindDeduction)
	if err != nil {
		return err
	}
	restorations, err := repos.Movements.FindByOrder(ctx, orderID, inventory.MovementKindRestoration)
	if err != nil {
		return err
	}

	net := make(map[uuid.UUID]decimal.Decimal)
	for i := range deductions {
		m := &deductions[i]
		net[m.InventoryItemID] = net[m.InventoryItemID].Add(m.Quantity)
	}
	for i := range restorations {
		m := &restorations[i]
		net[m.InventoryItemID] = net[m.InventoryItemID].Sub(m.Quantity)
	}

	for _, itemID := range sortedKeys(net) {
		quantity := net[itemID]
		if quantity.LessThanOrEqual(decimal.Zero) {
			continue
		}

		item, err := repos.Items.FindByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if err := item.Restore(quantity); err != nil {
			return err
		}
		if err := repos.Items.Save(ctx, item); err != nil {
			return err
		}

		movement, err := inventory.NewStockMovement(itemID, &orderID, inventory.MovementKindRestoration, quantity, false)
		if err != nil {
			return err
		}
		if err := repos.Movements.Create(ctx, movement); err != nil {
			return err
		}
	}

	return nil
}

// requiredQuantities folds the order's line items through their recipes
// into one total per inventory item, so each stock row is locked and
// written once per order.
func (s *DeductionService) requiredQuantities(ctx context.Context, repos Repositories, o *order.Order) (map[uuid.UUID]decimal.Decimal, error) {
	required := make(map[uuid.UUID]decimal.Decimal)

	for i := range o.Items {
		item := &o.Items[i]
		components, err := repos.Recipes.FindByProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		itemQty := decimal.NewFromInt(int64(item.Quantity))
		for j := range components {
			c := &components[j]
			required[c.InventoryItemID] = required[c.InventoryItemID].Add(c.Quantity.Mul(itemQty))
		}
	}

	return required, nil
}

// sortedKeys returns map keys in a stable order. Locking stock rows in
// a fixed order keeps two concurrent multi-item deductions from
// deadlocking against each other.
func sortedKeys(m map[uuid.UUID]decimal.Decimal) []uuid.UUID {
	keys := make([]uuid.UUID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}

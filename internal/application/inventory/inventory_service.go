package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/warungpos/backend/internal/domain/inventory"
	"github.com/warungpos/backend/internal/domain/shared"
)

// Service handles inventory item CRUD and manual stock adjustments
type Service struct {
	items inventory.ItemRepository
	scope TransactionScope
}

// NewService creates a new inventory Service
func NewService(items inventory.ItemRepository, scope TransactionScope) *Service {
	return &Service{items: items, scope: scope}
}

// Create registers a new inventory item
func (s *Service) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	item, err := inventory.NewInventoryItem(req.Name, req.Unit, req.Category,
		req.CurrentStock, req.MinThreshold, req.CostPerUnit)
	if err != nil {
		return nil, err
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	resp := ToItemResponse(item)
	return &resp, nil
}

// GetByID retrieves an inventory item
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToItemResponse(item)
	return &resp, nil
}

// List retrieves inventory items, optionally filtered to one category
// or to items under their minimum threshold.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]ItemResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "name",
		OrderDir: "asc",
		Filters:  make(map[string]interface{}),
	}
	if filter.Category != nil {
		domainFilter.Filters["category"] = *filter.Category
	}
	if filter.LowStock {
		domainFilter.Filters["low_stock"] = true
	}

	items, err := s.items.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.items.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToItemResponses(items), total, nil
}

// Update changes an item's descriptive fields
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.MinThreshold != nil {
		if req.MinThreshold.IsNegative() {
			return nil, shared.NewValidationError("Minimum threshold cannot be negative")
		}
		item.MinThreshold = *req.MinThreshold
	}
	if req.CostPerUnit != nil {
		if req.CostPerUnit.IsNegative() {
			return nil, shared.NewValidationError("Cost per unit cannot be negative")
		}
		item.CostPerUnit = *req.CostPerUnit
	}
	item.UpdatedAt = time.Now()

	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}

	resp := ToItemResponse(item)
	return &resp, nil
}

// AdjustStock applies a manual signed correction to an item's stock and
// records the movement. The item row stays locked for the whole
// read-modify-write so a concurrent deduction cannot be lost, and the
// movement keeps the delta's sign.
func (s *Service) AdjustStock(ctx context.Context, id uuid.UUID, req AdjustStockRequest) (*ItemResponse, error) {
	if req.Delta.IsZero() {
		return nil, shared.NewValidationError("Adjustment delta cannot be zero")
	}

	var result *inventory.InventoryItem
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		item, err := repos.ItemRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := item.Adjust(req.Delta); err != nil {
			return err
		}
		if err := repos.ItemRepo().Save(ctx, item); err != nil {
			return err
		}

		movement, err := inventory.NewStockMovement(item.ID, nil, inventory.MovementKindAdjustment, req.Delta, false)
		if err != nil {
			return err
		}
		if err := repos.MovementRepo().Create(ctx, movement); err != nil {
			return err
		}

		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := ToItemResponse(result)
	return &resp, nil
}

// Delete removes an inventory item
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.items.FindByID(ctx, id); err != nil {
		return err
	}
	return s.items.Delete(ctx, id)
}

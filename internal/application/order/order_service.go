package order

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appinventory "github.com/warungpos/backend/internal/application/inventory"
	appledger "github.com/warungpos/backend/internal/application/ledger"
	"github.com/warungpos/backend/internal/domain/order"
	"github.com/warungpos/backend/internal/domain/shared"
	"github.com/warungpos/backend/internal/domain/shared/valueobject"
)

// maxOrderNumberAttempts bounds the generate-and-recheck loop before
// giving up with a conflict.
const maxOrderNumberAttempts = 5

// Service handles order creation, reads and the status lifecycle with
// its inventory and ledger side effects.
type Service struct {
	repo      order.Repository
	scope     TransactionScope
	deduction *appinventory.DeductionService
	posting   *appledger.PostingService
}

// NewService creates a new order Service
func NewService(
	repo order.Repository,
	scope TransactionScope,
	deduction *appinventory.DeductionService,
	posting *appledger.PostingService,
) *Service {
	return &Service{
		repo:      repo,
		scope:     scope,
		deduction: deduction,
		posting:   posting,
	}
}

// Create creates a new order with its line items in one atomic write.
// When no order number is supplied one is generated, retrying on the
// rare collision.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*Response, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewValidationError("Order must have at least one item")
	}

	total := decimal.Zero
	for _, item := range req.Items {
		if item.Price.IsNegative() {
			return nil, shared.NewValidationError("Item price cannot be negative")
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if req.TotalAmount != nil && !req.TotalAmount.Equal(total) {
		return nil, shared.NewValidationError(fmt.Sprintf(
			"Total amount %s does not match the item sum %s", req.TotalAmount, total))
	}

	orderNumber := req.OrderNumber
	if orderNumber == "" {
		generated, err := s.generateOrderNumber(ctx)
		if err != nil {
			return nil, err
		}
		orderNumber = generated
	}

	o, err := order.NewOrder(orderNumber, req.OrderType, total)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		if _, err := o.AddItem(item.ProductID, item.Quantity, valueobject.NewMoneyIDR(item.Price), item.Note); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	resp := ToResponse(o)
	return &resp, nil
}

// GetByID retrieves an order with its items
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Response, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToResponse(o)
	return &resp, nil
}

// List retrieves orders with filtering and pagination
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Response, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = string(*filter.Status)
	}
	if filter.OrderType != nil {
		domainFilter.Filters["order_type"] = *filter.OrderType
	}
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}

	orders, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToResponses(orders), total, nil
}

// UpdateStatus advances the order along its status graph. Completing an
// order deducts inventory and posts the sale entry inside the same
// transaction as the status write; any failure rolls the whole
// transition back. Cancellation restores whatever the order had
// deducted and posts nothing.
func (s *Service) UpdateStatus(ctx context.Context, orderID uuid.UUID, target order.Status) (*Response, error) {
	if !target.IsValid() {
		return nil, shared.NewValidationError(fmt.Sprintf("Unknown order status %q", target))
	}

	var result *order.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		o, err := repos.OrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := o.TransitionTo(target); err != nil {
			return err
		}

		invRepos := appinventory.Repositories{
			Items:     repos.InventoryRepo(),
			Recipes:   repos.RecipeRepo(),
			Movements: repos.MovementRepo(),
		}

		switch target {
		case order.StatusCompleted:
			if err := s.deduction.DeductForOrder(ctx, invRepos, o); err != nil {
				return err
			}
			if _, err := s.posting.PostSaleForOrder(ctx, repos.LedgerRepo(), o); err != nil {
				return err
			}
		case order.StatusCanceled:
			if err := s.deduction.RestoreForOrder(ctx, invRepos, o.ID); err != nil {
				return err
			}
		}

		// The version check makes the loser of two concurrent
		// transitions fail instead of double-applying side effects.
		if err := repos.OrderRepo().SaveWithLock(ctx, o); err != nil {
			return err
		}

		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := ToResponse(result)
	return &resp, nil
}

// generateOrderNumber produces ORD-YYYYMMDD-<8 hex> and rechecks
// uniqueness, retrying a bounded number of times. The database unique
// constraint still backs the check against racing writers.
func (s *Service) generateOrderNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		suffix := make([]byte, 4)
		if _, err := rand.Read(suffix); err != nil {
			return "", shared.NewPersistenceError("Failed to generate order number")
		}

		candidate := fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), hex.EncodeToString(suffix))

		exists, err := s.repo.ExistsByOrderNumber(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", shared.NewConflictError("Could not generate a unique order number")
}

package order

import (
	"context"

	"github.com/google/uuid"

	"github.com/warungpos/backend/internal/domain/shared"
)

// Repository persists Order aggregates. Create writes the order row and
// all item rows as a single atomic unit; a reader never observes a
// partially written item list. SaveWithLock performs an optimistic
// version check so two concurrent status transitions cannot both win.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	SaveWithLock(ctx context.Context, o *Order) error
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

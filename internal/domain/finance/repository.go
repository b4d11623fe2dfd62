package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/warungpos/backend/internal/domain/shared"
)

// ExpenseFilter narrows expense queries
type ExpenseFilter struct {
	Category  *string
	StartDate *time.Time
	EndDate   *time.Time
}

// Repository defines expense persistence operations
type Repository interface {
	Create(ctx context.Context, expense *Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	FindAll(ctx context.Context, filter ExpenseFilter, page shared.Filter) ([]*Expense, error)
	Count(ctx context.Context, filter ExpenseFilter) (int64, error)
	Update(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

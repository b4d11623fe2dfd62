package payroll

import (
	"context"

	"github.com/google/uuid"

	"github.com/warungpos/backend/internal/domain/shared"
)

// EmployeeRepository defines employee persistence operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindAll(ctx context.Context, activeOnly bool, page shared.Filter) ([]*Employee, error)
	Save(ctx context.Context, employee *Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EntryFilter narrows payroll entry queries
type EntryFilter struct {
	EmployeeID *uuid.UUID
	Status     *EntryStatus
}

// EntryRepository defines payroll entry persistence operations
type EntryRepository interface {
	Create(ctx context.Context, entry *PayrollEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*PayrollEntry, error)
	FindAll(ctx context.Context, filter EntryFilter, page shared.Filter) ([]*PayrollEntry, error)
	Update(ctx context.Context, entry *PayrollEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EntryFilter narrows ledger queries. Date bounds are inclusive;
// a nil bound leaves that side unbounded.
type EntryFilter struct {
	TransactionType *TransactionType
	StartDate       *time.Time
	EndDate         *time.Time
}

// Repository persists cash ledger entries. The store is
// append-oriented: entries are created once per qualifying event,
// corrected via Update on non-identity fields, and deleted only
// administratively.
type Repository interface {
	Create(ctx context.Context, e *CashEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*CashEntry, error)
	// FindByReference locates the entry posted for a source document,
	// if any. It backs the at-most-one-sale-entry-per-order check.
	FindByReference(ctx context.Context, ref Reference, txType TransactionType) (*CashEntry, error)
	FindAll(ctx context.Context, filter EntryFilter) ([]CashEntry, error)
	Update(ctx context.Context, e *CashEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warungpos/backend/internal/domain/ledger"
	"github.com/warungpos/backend/internal/domain/shared"
)

// GormCashEntryRepository implements ledger.Repository using GORM
type GormCashEntryRepository struct {
	db *gorm.DB
}

// NewGormCashEntryRepository creates a new GormCashEntryRepository
func NewGormCashEntryRepository(db *gorm.DB) *GormCashEntryRepository {
	return &GormCashEntryRepository{db: db}
}

// Create appends a cash ledger entry
func (r *GormCashEntryRepository) Create(ctx context.Context, e *ledger.CashEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// FindByID finds a cash entry by its ID
func (r *GormCashEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.CashEntry, error) {
	var entry ledger.CashEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Cash entry not found")
		}
		return nil, err
	}
	return &entry, nil
}

// FindByReference locates the entry posted for a source document, if any
func (r *GormCashEntryRepository) FindByReference(ctx context.Context, ref ledger.Reference, txType ledger.TransactionType) (*ledger.CashEntry, error) {
	var entry ledger.CashEntry
	if err := r.db.WithContext(ctx).
		Where("reference_kind = ? AND reference_id = ? AND transaction_type = ?",
			ref.Kind, ref.ID, txType).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Cash entry not found")
		}
		return nil, err
	}
	return &entry, nil
}

// FindAll finds cash entries matching the filter, newest first
func (r *GormCashEntryRepository) FindAll(ctx context.Context, filter ledger.EntryFilter) ([]ledger.CashEntry, error) {
	var entries []ledger.CashEntry
	query := r.db.WithContext(ctx).Model(&ledger.CashEntry{})

	if filter.TransactionType != nil {
		query = query.Where("transaction_type = ?", *filter.TransactionType)
	}
	if filter.StartDate != nil {
		query = query.Where("transaction_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("transaction_date <= ?", *filter.EndDate)
	}

	if err := query.Order("transaction_date DESC, created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Update saves a corrected cash entry
func (r *GormCashEntryRepository) Update(ctx context.Context, e *ledger.CashEntry) error {
	result := r.db.WithContext(ctx).Model(&ledger.CashEntry{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"amount":           e.Amount,
			"transaction_date": e.TransactionDate,
			"notes":            e.Notes,
			"updated_at":       e.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Cash entry not found")
	}
	return nil
}

// Delete removes a cash entry
func (r *GormCashEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ledger.CashEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Cash entry not found")
	}
	return nil
}

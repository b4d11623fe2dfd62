package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warungpos/backend/internal/domain/payroll"
	"github.com/warungpos/backend/internal/domain/shared"
)

// GormEmployeeRepository implements payroll.EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Create persists a new employee
func (r *GormEmployeeRepository) Create(ctx context.Context, employee *payroll.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

// FindByID finds an employee by their ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*payroll.Employee, error) {
	var employee payroll.Employee
	if err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Employee not found")
		}
		return nil, err
	}
	return &employee, nil
}

// FindAll finds employees, optionally restricted to active ones
func (r *GormEmployeeRepository) FindAll(ctx context.Context, activeOnly bool, page shared.Filter) ([]*payroll.Employee, error) {
	var employees []*payroll.Employee
	query := r.db.WithContext(ctx).Model(&payroll.Employee{})

	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if page.Page > 0 && page.PageSize > 0 {
		offset := (page.Page - 1) * page.PageSize
		query = query.Offset(offset).Limit(page.PageSize)
	}

	if err := query.Order("name ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Save persists changes to an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, employee *payroll.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

// Delete removes an employee
func (r *GormEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&payroll.Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Employee not found")
	}
	return nil
}

// GormPayrollEntryRepository implements payroll.EntryRepository using GORM
type GormPayrollEntryRepository struct {
	db *gorm.DB
}

// NewGormPayrollEntryRepository creates a new GormPayrollEntryRepository
func NewGormPayrollEntryRepository(db *gorm.DB) *GormPayrollEntryRepository {
	return &GormPayrollEntryRepository{db: db}
}

// Create persists a new payroll entry
func (r *GormPayrollEntryRepository) Create(ctx context.Context, entry *payroll.PayrollEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindByID finds a payroll entry by its ID
func (r *GormPayrollEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*payroll.PayrollEntry, error) {
	var entry payroll.PayrollEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Payroll entry not found")
		}
		return nil, err
	}
	return &entry, nil
}

// FindAll finds payroll entries matching the filter, newest period first
func (r *GormPayrollEntryRepository) FindAll(ctx context.Context, filter payroll.EntryFilter, page shared.Filter) ([]*payroll.PayrollEntry, error) {
	var entries []*payroll.PayrollEntry
	query := r.db.WithContext(ctx).Model(&payroll.PayrollEntry{})

	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if page.Page > 0 && page.PageSize > 0 {
		offset := (page.Page - 1) * page.PageSize
		query = query.Offset(offset).Limit(page.PageSize)
	}

	if err := query.Order("period_start DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Update saves changes to a payroll entry
func (r *GormPayrollEntryRepository) Update(ctx context.Context, entry *payroll.PayrollEntry) error {
	result := r.db.WithContext(ctx).Model(&payroll.PayrollEntry{}).
		Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"hours_worked": entry.HoursWorked,
			"amount_paid":  entry.AmountPaid,
			"payment_date": entry.PaymentDate,
			"status":       entry.Status,
			"notes":        entry.Notes,
			"updated_at":   entry.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Payroll entry not found")
	}
	return nil
}

// Delete removes a payroll entry
func (r *GormPayrollEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&payroll.PayrollEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Payroll entry not found")
	}
	return nil
}

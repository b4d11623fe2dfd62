package payroll

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/domain/shared"
)

// EntryStatus is the payment status of a payroll entry
type EntryStatus string

const (
	EntryStatusPending EntryStatus = "pending"
	EntryStatusPaid    EntryStatus = "paid"
)

// IsValid checks if the status is a known value
func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusPending, EntryStatusPaid:
		return true
	}
	return false
}

// String returns the string representation
func (s EntryStatus) String() string {
	return string(s)
}

// PayrollEntry records pay owed to an employee for a work period
type PayrollEntry struct {
	shared.BaseEntity
	EmployeeID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	PeriodStart time.Time       `gorm:"not null"`
	PeriodEnd   time.Time       `gorm:"not null"`
	HoursWorked decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	AmountPaid  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PaymentDate *time.Time
	Status      EntryStatus `gorm:"type:varchar(20);not null;index"`
	Notes       string      `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (PayrollEntry) TableName() string {
	return "payroll_entries"
}

// NewPayrollEntry creates a pending payroll entry for a work period
func NewPayrollEntry(employeeID uuid.UUID, periodStart, periodEnd time.Time, hoursWorked, amountPaid decimal.Decimal, notes string) (*PayrollEntry, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewValidationError("Payroll entry requires an employee")
	}
	if periodStart.IsZero() || periodEnd.IsZero() {
		return nil, shared.NewValidationError("Payroll period is required")
	}
	if periodEnd.Before(periodStart) {
		return nil, shared.NewValidationError("Payroll period end cannot precede its start")
	}
	if hoursWorked.IsNegative() {
		return nil, shared.NewValidationError("Hours worked cannot be negative")
	}
	if amountPaid.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("Payroll amount must be positive")
	}

	return &PayrollEntry{
		BaseEntity:  shared.NewBaseEntity(),
		EmployeeID:  employeeID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		HoursWorked: hoursWorked,
		AmountPaid:  amountPaid,
		Status:      EntryStatusPending,
		Notes:       notes,
	}, nil
}

// MarkPaid settles the entry. paymentDate falls back to now when zero.
func (p *PayrollEntry) MarkPaid(paymentDate time.Time) error {
	if p.Status == EntryStatusPaid {
		return shared.NewInvalidTransitionError(
			fmt.Sprintf("Payroll entry %s is already paid", p.ID))
	}
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}
	p.Status = EntryStatusPaid
	p.PaymentDate = &paymentDate
	p.UpdatedAt = time.Now()
	return nil
}

package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/domain/shared"
)

// Expense is an operational cost record. Posting it to the cash ledger
// is the coordinator's job; the record itself carries no sign.
type Expense struct {
	shared.BaseEntity
	Date        time.Time       `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Category    string          `gorm:"type:varchar(50);not null;index"`
	Description string          `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates a new expense record. date falls back to the
// current time when zero.
func NewExpense(date time.Time, amount decimal.Decimal, category, description string) (*Expense, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("Expense amount must be positive")
	}
	if category == "" {
		return nil, shared.NewValidationError("Expense category cannot be empty")
	}

	if date.IsZero() {
		date = time.Now()
	}

	return &Expense{
		BaseEntity:  shared.NewBaseEntity(),
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: description,
	}, nil
}

// Update corrects the mutable fields of an expense record
func (e *Expense) Update(amount *decimal.Decimal, category, description *string) error {
	if amount != nil {
		if amount.LessThanOrEqual(decimal.Zero) {
			return shared.NewValidationError("Expense amount must be positive")
		}
		e.Amount = *amount
	}
	if category != nil {
		if *category == "" {
			return shared.NewValidationError("Expense category cannot be empty")
		}
		e.Category = *category
	}
	if description != nil {
		e.Description = *description
	}
	e.UpdatedAt = time.Now()
	return nil
}

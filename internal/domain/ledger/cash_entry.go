package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/domain/shared"
)

// TransactionType classifies a cash ledger entry. The set is closed:
// sign-convention and state-machine sites switch over it exhaustively
// so an unrecognized type can never be silently aggregated.
type TransactionType string

const (
	TransactionTypeOpening    TransactionType = "opening"
	TransactionTypeClosing    TransactionType = "closing"
	TransactionTypeSale       TransactionType = "sale"
	TransactionTypeExpense    TransactionType = "expense"
	TransactionTypeAdjustment TransactionType = "adjustment"
)

// IsValid returns true if the transaction type is a member of the closed set
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeOpening, TransactionTypeClosing, TransactionTypeSale,
		TransactionTypeExpense, TransactionTypeAdjustment:
		return true
	}
	return false
}

// String returns the string representation of TransactionType
func (t TransactionType) String() string {
	return string(t)
}

// Sign returns +1 for types that increase the cash balance and -1 for
// types that decrease it. opening, sale and adjustment add to the
// balance; closing and expense subtract from it.
func (t TransactionType) Sign() int {
	switch t {
	case TransactionTypeOpening, TransactionTypeSale, TransactionTypeAdjustment:
		return 1
	case TransactionTypeClosing, TransactionTypeExpense:
		return -1
	}
	return 0
}

// ReferenceKind tags what a ledger entry's reference points at
type ReferenceKind string

const (
	ReferenceKindNone    ReferenceKind = ""
	ReferenceKindOrder   ReferenceKind = "order"
	ReferenceKindExpense ReferenceKind = "expense"
	ReferenceKindPayroll ReferenceKind = "payroll"
)

// Reference is a weak, typed link from a ledger entry to the document
// that produced it. It is never enforced by a foreign key and never
// dereferenced by the ledger itself; the kind tag replaces the bare
// "some id" column so the dynamic relationship stays checkable.
type Reference struct {
	Kind ReferenceKind `gorm:"type:varchar(20)"`
	ID   uuid.UUID     `gorm:"type:uuid"`
}

// NoReference returns the empty reference
func NoReference() Reference {
	return Reference{Kind: ReferenceKindNone}
}

// OrderReference returns a reference to an order
func OrderReference(orderID uuid.UUID) Reference {
	return Reference{Kind: ReferenceKindOrder, ID: orderID}
}

// ExpenseReference returns a reference to an expense record
func ExpenseReference(expenseID uuid.UUID) Reference {
	return Reference{Kind: ReferenceKindExpense, ID: expenseID}
}

// PayrollReference returns a reference to a payroll entry
func PayrollReference(entryID uuid.UUID) Reference {
	return Reference{Kind: ReferenceKindPayroll, ID: entryID}
}

// IsZero returns true for the empty reference
func (r Reference) IsZero() bool {
	return r.Kind == ReferenceKindNone
}

// CashEntry represents a single typed cash movement. Amount is always
// stored non-negative; the direction of effect on the balance derives
// from the transaction type alone.
type CashEntry struct {
	shared.BaseEntity
	TransactionDate time.Time       `gorm:"not null;index"`
	TransactionType TransactionType `gorm:"type:varchar(20);not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Reference       Reference       `gorm:"embedded;embeddedPrefix:reference_"`
	Notes           string          `gorm:"type:varchar(255)"`
	RecordedBy      uuid.UUID       `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (CashEntry) TableName() string {
	return "cash_entries"
}

// NewCashEntry creates a new cash ledger entry. transactionDate falls
// back to the current time when zero.
func NewCashEntry(
	txType TransactionType,
	amount decimal.Decimal,
	transactionDate time.Time,
	reference Reference,
	notes string,
	recordedBy uuid.UUID,
) (*CashEntry, error) {
	if !txType.IsValid() {
		return nil, shared.NewValidationError("Unknown transaction type")
	}
	if amount.IsNegative() {
		return nil, shared.NewValidationError("Amount cannot be negative")
	}
	if recordedBy == uuid.Nil {
		return nil, shared.NewValidationError("Recording user is required")
	}

	if transactionDate.IsZero() {
		transactionDate = time.Now()
	}

	return &CashEntry{
		BaseEntity:      shared.NewBaseEntity(),
		TransactionDate: transactionDate,
		TransactionType: txType,
		Amount:          amount,
		Reference:       reference,
		Notes:           notes,
		RecordedBy:      recordedBy,
	}, nil
}

// SignedAmount returns the amount with the sign implied by the
// transaction type.
func (e *CashEntry) SignedAmount() decimal.Decimal {
	if e.TransactionType.Sign() < 0 {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Correct updates the non-identity fields of an entry. The transaction
// type and reference are immutable after creation: summaries and the
// sale-per-order idempotency check are keyed on them, so retyping a
// posted entry would corrupt published aggregates.
func (e *CashEntry) Correct(amount *decimal.Decimal, transactionDate *time.Time, notes *string) error {
	if amount != nil {
		if amount.IsNegative() {
			return shared.NewValidationError("Amount cannot be negative")
		}
		e.Amount = *amount
	}
	if transactionDate != nil {
		if transactionDate.IsZero() {
			return shared.NewValidationError("Transaction date cannot be zero")
		}
		e.TransactionDate = *transactionDate
	}
	if notes != nil {
		e.Notes = *notes
	}
	e.UpdatedAt = time.Now()
	return nil
}

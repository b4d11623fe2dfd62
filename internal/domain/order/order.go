package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/domain/shared"
	"github.com/warungpos/backend/internal/domain/shared/valueobject"
)

// Status represents the lifecycle status of an order
type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusCooking   Status = "cooking"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusCooking, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// The graph is waiting -> cooking -> completed, with cancellation allowed
// from waiting and cooking. Completed and canceled are terminal.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusWaiting:
		return target == StatusCooking || target == StatusCanceled
	case StatusCooking:
		return target == StatusCompleted || target == StatusCanceled
	case StatusCompleted, StatusCanceled:
		return false
	}
	return false
}

// IsTerminal returns true for statuses that accept no further transitions
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// Item represents a priced line item owned by an Order. Quantity and
// price are frozen at order time and never follow later product edits.
type Item struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	LineNo    int             `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Note      string          `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "order_items"
}

// NewItem creates a new order line item
func NewItem(orderID, productID uuid.UUID, lineNo, quantity int, price valueobject.Money, note string) (*Item, error) {
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewValidationError("Quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewValidationError("Price cannot be negative")
	}

	now := time.Now()
	return &Item{
		ID:        uuid.New(),
		OrderID:   orderID,
		ProductID: productID,
		LineNo:    lineNo,
		Quantity:  quantity,
		Price:     price.Amount(),
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Subtotal returns price multiplied by quantity
func (i *Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the aggregate root for a customer transaction. It owns its
// line items: they are created with the order, persisted atomically
// with it, and cascade-deleted with it.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Timestamp   time.Time       `gorm:"not null"`
	Status      Status          `gorm:"type:varchar(20);not null;index"`
	OrderType   string          `gorm:"type:varchar(30);not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Items       []Item          `gorm:"foreignKey:OrderID"`
	CompletedAt *time.Time
	CanceledAt  *time.Time
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new order in the waiting state. TotalAmount is
// supplied by the caller and must equal the sum of line item subtotals;
// the engine stores it without recomputation.
func NewOrder(orderNumber, orderType string, totalAmount decimal.Decimal) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewValidationError("Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewValidationError("Order number cannot exceed 50 characters")
	}
	if orderType == "" {
		return nil, shared.NewValidationError("Order type cannot be empty")
	}
	if totalAmount.IsNegative() {
		return nil, shared.NewValidationError("Total amount cannot be negative")
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		Timestamp:         time.Now().UTC(),
		Status:            StatusWaiting,
		OrderType:         orderType,
		TotalAmount:       totalAmount,
		Items:             make([]Item, 0),
	}, nil
}

// AddItem appends a line item. Items can only be added while the order
// is still waiting; line numbers record insertion order for read-back.
func (o *Order) AddItem(productID uuid.UUID, quantity int, price valueobject.Money, note string) (*Item, error) {
	if o.Status != StatusWaiting {
		return nil, shared.NewInvalidTransitionError("Cannot add items to a non-waiting order")
	}

	item, err := NewItem(o.ID, productID, len(o.Items)+1, quantity, price, note)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.UpdatedAt = time.Now()

	return item, nil
}

// TransitionTo advances the order along the status graph. Illegal
// transitions leave the order untouched.
func (o *Order) TransitionTo(target Status) error {
	if !target.IsValid() {
		return shared.NewValidationError(fmt.Sprintf("Unknown order status %q", target))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewInvalidTransitionError(
			fmt.Sprintf("Cannot transition order from %s to %s", o.Status, target))
	}

	now := time.Now()
	o.Status = target
	o.UpdatedAt = now

	switch target {
	case StatusCompleted:
		o.CompletedAt = &now
	case StatusCanceled:
		o.CanceledAt = &now
	}

	return nil
}

// ItemsTotal returns the sum of line item subtotals. Callers are
// responsible for keeping TotalAmount equal to this value at creation.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ItemCount returns the number of line items
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// IsCompleted returns true if the order is completed
func (o *Order) IsCompleted() bool {
	return o.Status == StatusCompleted
}

// IsCanceled returns true if the order is canceled
func (o *Order) IsCanceled() bool {
	return o.Status == StatusCanceled
}

package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/domain/order"
)

// CreateOrderRequest represents a request to create an order
type CreateOrderRequest struct {
	OrderNumber string                 `json:"order_number" binding:"omitempty,max=50"`
	OrderType   string                 `json:"order_type" binding:"required,min=1,max=50"`
	// TotalAmount, when supplied, must equal the sum of the line
	// items' price times quantity. Left nil, the sum is used as is.
	TotalAmount *decimal.Decimal       `json:"total_amount"`
	Items       []CreateOrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// CreateOrderItemInput represents one line of the create order request
type CreateOrderItemInput struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	Note      string          `json:"note" binding:"max=500"`
}

// UpdateStatusRequest represents a request to move an order along its
// status graph
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=waiting cooking completed canceled"`
}

// ListFilter represents filter options for the order list
type ListFilter struct {
	Status    *order.Status `form:"status"`
	OrderType *string       `form:"order_type"`
	StartDate *time.Time    `form:"start_date"`
	EndDate   *time.Time    `form:"end_date"`
	Page      int           `form:"page" binding:"omitempty,min=1"`
	PageSize  int           `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string        `form:"order_by"`
	OrderDir  string        `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ItemResponse represents an order line item in API responses
type ItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	LineNo    int             `json:"line_no"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Note      string          `json:"note,omitempty"`
}

// Response represents an order in API responses
type Response struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"order_number"`
	Timestamp   time.Time       `json:"timestamp"`
	Status      string          `json:"status"`
	OrderType   string          `json:"order_type"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []ItemResponse  `json:"items"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	CanceledAt  *time.Time      `json:"canceled_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// ToResponse maps an order aggregate onto its API representation
func ToResponse(o *order.Order) Response {
	items := make([]ItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, ItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			LineNo:    item.LineNo,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal(),
			Note:      item.Note,
		})
	}

	return Response{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Timestamp:   o.Timestamp,
		Status:      o.Status.String(),
		OrderType:   o.OrderType,
		TotalAmount: o.TotalAmount,
		Items:       items,
		CompletedAt: o.CompletedAt,
		CanceledAt:  o.CanceledAt,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		Version:     o.GetVersion(),
	}
}

// ToResponses maps a slice of orders onto API representations
func ToResponses(orders []order.Order) []Response {
	responses := make([]Response, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToResponse(&orders[i]))
	}
	return responses
}

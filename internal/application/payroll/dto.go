package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/domain/payroll"
)

// CreateEmployeeRequest represents a request to register an employee
type CreateEmployeeRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Role          string          `json:"role" binding:"max=100"`
	Phone         string          `json:"phone" binding:"max=50"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	HireDate      *time.Time      `json:"hire_date"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Role          string          `json:"role,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	HireDate      time.Time       `json:"hire_date"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreatePayrollEntryRequest represents a request to open a payroll entry
type CreatePayrollEntryRequest struct {
	EmployeeID  uuid.UUID       `json:"employee_id" binding:"required"`
	PeriodStart time.Time       `json:"period_start" binding:"required"`
	PeriodEnd   time.Time       `json:"period_end" binding:"required"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	AmountPaid  decimal.Decimal `json:"amount_paid" binding:"required"`
	Notes       string          `json:"notes" binding:"max=500"`
}

// MarkPaidRequest settles a payroll entry
type MarkPaidRequest struct {
	PaymentDate *time.Time `json:"payment_date"`
	// PostToLedger posts a matching expense-typed cash entry.
	PostToLedger bool `json:"post_to_ledger"`
}

// EntryListFilter represents filter options for the payroll entry list
type EntryListFilter struct {
	EmployeeID *uuid.UUID `form:"employee_id"`
	Status     *string    `form:"status" binding:"omitempty,oneof=pending paid"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// EntryResponse represents a payroll entry in API responses
type EntryResponse struct {
	ID          uuid.UUID       `json:"id"`
	EmployeeID  uuid.UUID       `json:"employee_id"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToEmployeeResponse maps an employee onto its API representation
func ToEmployeeResponse(e *payroll.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Role:          e.Role,
		Phone:         e.Phone,
		HourlyRate:    e.HourlyRate,
		MonthlySalary: e.MonthlySalary,
		HireDate:      e.HireDate,
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
	}
}

// ToEmployeeResponses maps a slice of employees
func ToEmployeeResponses(employees []*payroll.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, ToEmployeeResponse(e))
	}
	return responses
}

// ToEntryResponse maps a payroll entry onto its API representation
func ToEntryResponse(p *payroll.PayrollEntry) EntryResponse {
	return EntryResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		PeriodStart: p.PeriodStart,
		PeriodEnd:   p.PeriodEnd,
		HoursWorked: p.HoursWorked,
		AmountPaid:  p.AmountPaid,
		PaymentDate: p.PaymentDate,
		Status:      p.Status.String(),
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToEntryResponses maps a slice of payroll entries
func ToEntryResponses(entries []*payroll.PayrollEntry) []EntryResponse {
	responses := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, ToEntryResponse(e))
	}
	return responses
}

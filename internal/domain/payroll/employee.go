package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/domain/shared"
)

// Employee is a staff member eligible for payroll
type Employee struct {
	shared.BaseAggregateRoot
	Name          string          `gorm:"type:varchar(100);not null"`
	Role          string          `gorm:"type:varchar(50)"`
	Phone         string          `gorm:"type:varchar(30)"`
	HourlyRate    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	MonthlySalary decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	HireDate      time.Time       `gorm:"not null"`
	IsActive      bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates an active employee. At least one of hourlyRate
// and monthlySalary must be positive.
func NewEmployee(name, role, phone string, hourlyRate, monthlySalary decimal.Decimal, hireDate time.Time) (*Employee, error) {
	if name == "" {
		return nil, shared.NewValidationError("Employee name cannot be empty")
	}
	if hourlyRate.IsNegative() || monthlySalary.IsNegative() {
		return nil, shared.NewValidationError("Employee pay rates cannot be negative")
	}
	if hourlyRate.IsZero() && monthlySalary.IsZero() {
		return nil, shared.NewValidationError("Employee must have an hourly rate or a monthly salary")
	}

	if hireDate.IsZero() {
		hireDate = time.Now()
	}

	return &Employee{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Role:              role,
		Phone:             phone,
		HourlyRate:        hourlyRate,
		MonthlySalary:     monthlySalary,
		HireDate:          hireDate,
		IsActive:          true,
	}, nil
}

// Deactivate marks the employee as no longer on staff
func (e *Employee) Deactivate() {
	e.IsActive = false
	e.UpdatedAt = time.Now()
}

// Activate restores a deactivated employee
func (e *Employee) Activate() {
	e.IsActive = true
	e.UpdatedAt = time.Now()
}

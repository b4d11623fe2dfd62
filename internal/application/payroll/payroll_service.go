package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/warungpos/backend/internal/application/identity"
	appledger "github.com/warungpos/backend/internal/application/ledger"
	"github.com/warungpos/backend/internal/domain/payroll"
	"github.com/warungpos/backend/internal/domain/shared"
)

// Service handles employees and payroll entries. Settling an entry may
// post an expense-typed cash entry so payroll shows up in the ledger
// balance; the status write and the posting share one transaction.
type Service struct {
	employees payroll.EmployeeRepository
	entries   payroll.EntryRepository
	scope     TransactionScope
	posting   *appledger.PostingService
}

// NewService creates a new payroll Service
func NewService(
	employees payroll.EmployeeRepository,
	entries payroll.EntryRepository,
	scope TransactionScope,
	posting *appledger.PostingService,
) *Service {
	return &Service{
		employees: employees,
		entries:   entries,
		scope:     scope,
		posting:   posting,
	}
}

// CreateEmployee registers an employee
func (s *Service) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	var hireDate time.Time
	if req.HireDate != nil {
		hireDate = *req.HireDate
	}

	employee, err := payroll.NewEmployee(req.Name, req.Role, req.Phone, req.HourlyRate, req.MonthlySalary, hireDate)
	if err != nil {
		return nil, err
	}

	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}

	resp := ToEmployeeResponse(employee)
	return &resp, nil
}

// GetEmployee retrieves an employee
func (s *Service) GetEmployee(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToEmployeeResponse(employee)
	return &resp, nil
}

// ListEmployees retrieves employees, optionally active ones only
func (s *Service) ListEmployees(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error) {
	employees, err := s.employees.FindAll(ctx, activeOnly, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToEmployeeResponses(employees), nil
}

// DeactivateEmployee takes an employee off staff without deleting
// their payroll history.
func (s *Service) DeactivateEmployee(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return err
	}
	employee.Deactivate()
	return s.employees.Save(ctx, employee)
}

// CreateEntry opens a pending payroll entry for a work period
func (s *Service) CreateEntry(ctx context.Context, req CreatePayrollEntryRequest) (*EntryResponse, error) {
	if _, err := s.employees.FindByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	entry, err := payroll.NewPayrollEntry(req.EmployeeID, req.PeriodStart, req.PeriodEnd,
		req.HoursWorked, req.AmountPaid, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}

	resp := ToEntryResponse(entry)
	return &resp, nil
}

// ListEntries retrieves payroll entries with optional filters
func (s *Service) ListEntries(ctx context.Context, filter EntryListFilter) ([]EntryResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	domainFilter := payroll.EntryFilter{EmployeeID: filter.EmployeeID}
	if filter.Status != nil {
		status := payroll.EntryStatus(*filter.Status)
		domainFilter.Status = &status
	}

	page := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "period_start",
		OrderDir: "desc",
	}

	entries, err := s.entries.FindAll(ctx, domainFilter, page)
	if err != nil {
		return nil, err
	}
	return ToEntryResponses(entries), nil
}

// MarkPaid settles a payroll entry, optionally posting the amount as an
// expense-typed cash entry. The paid-status write and the posting run
// in one transaction, so a failed posting leaves the entry pending and
// retryable.
func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID, req MarkPaidRequest) (*EntryResponse, error) {
	if req.PostToLedger {
		if _, ok := identity.ActorFrom(ctx); !ok {
			return nil, shared.NewValidationError("No acting user in request context")
		}
	}

	var paymentDate time.Time
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	var result *payroll.PayrollEntry
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		entry, err := repos.EntryRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := entry.MarkPaid(paymentDate); err != nil {
			return err
		}
		if err := repos.EntryRepo().Update(ctx, entry); err != nil {
			return err
		}

		if req.PostToLedger {
			employee, err := s.employees.FindByID(ctx, entry.EmployeeID)
			if err != nil {
				return err
			}
			notes := fmt.Sprintf("Payroll for %s (%s to %s)", employee.Name,
				entry.PeriodStart.Format("2006-01-02"), entry.PeriodEnd.Format("2006-01-02"))
			if _, err := s.posting.PostPayroll(ctx, repos.LedgerRepo(), entry.ID, entry.AmountPaid, notes); err != nil {
				return err
			}
		}

		result = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := ToEntryResponse(result)
	return &resp, nil
}

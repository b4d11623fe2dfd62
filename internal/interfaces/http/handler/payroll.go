package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apppayroll "github.com/warungpos/backend/internal/application/payroll"
)

// PayrollHandler handles employee and payroll entry endpoints
type PayrollHandler struct {
	BaseHandler
	service *apppayroll.Service
}

// NewPayrollHandler creates a new payroll handler
func NewPayrollHandler(service *apppayroll.Service) *PayrollHandler {
	return &PayrollHandler{service: service}
}

// RegisterRoutes registers payroll routes
func (h *PayrollHandler) RegisterRoutes(rg *gin.RouterGroup) {
	employees := rg.Group("/employees")
	{
		employees.POST("", h.CreateEmployee)
		employees.GET("", h.ListEmployees)
		employees.GET("/:id", h.GetEmployee)
		employees.DELETE("/:id", h.DeactivateEmployee)
	}

	entries := rg.Group("/payroll")
	{
		entries.POST("", h.CreateEntry)
		entries.GET("", h.ListEntries)
		entries.POST("/:id/pay", h.MarkPaid)
	}
}

// CreateEmployee handles POST /employees
func (h *PayrollHandler) CreateEmployee(c *gin.Context) {
	var req apppayroll.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetEmployee handles GET /employees/:id
func (h *PayrollHandler) GetEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	resp, err := h.service.GetEmployee(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListEmployees handles GET /employees
func (h *PayrollHandler) ListEmployees(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	responses, err := h.service.ListEmployees(c.Request.Context(), activeOnly)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, responses)
}

// DeactivateEmployee handles DELETE /employees/:id
func (h *PayrollHandler) DeactivateEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.service.DeactivateEmployee(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateEntry handles POST /payroll
func (h *PayrollHandler) CreateEntry(c *gin.Context) {
	var req apppayroll.CreatePayrollEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.CreateEntry(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListEntries handles GET /payroll
func (h *PayrollHandler) ListEntries(c *gin.Context) {
	var filter apppayroll.EntryListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = 20
	}

	responses, err := h.service.ListEntries(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, responses)
}

// MarkPaid handles POST /payroll/:id/pay
func (h *PayrollHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payroll entry ID")
		return
	}

	var req apppayroll.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.MarkPaid(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

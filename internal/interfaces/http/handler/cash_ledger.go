package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appledger "github.com/warungpos/backend/internal/application/ledger"
)

// CashLedgerHandler handles cash ledger endpoints
type CashLedgerHandler struct {
	BaseHandler
	service *appledger.Service
}

// NewCashLedgerHandler creates a new cash ledger handler
func NewCashLedgerHandler(service *appledger.Service) *CashLedgerHandler {
	return &CashLedgerHandler{service: service}
}

// RegisterRoutes registers cash ledger routes
func (h *CashLedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ledger := rg.Group("/cash-ledger")
	{
		ledger.POST("", h.Create)
		ledger.GET("", h.List)
		ledger.GET("/summary", h.Summary)
		ledger.GET("/:id", h.GetByID)
		ledger.PUT("/:id", h.Update)
		ledger.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /cash-ledger
func (h *CashLedgerHandler) Create(c *gin.Context) {
	var req appledger.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID handles GET /cash-ledger/:id
func (h *CashLedgerHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /cash-ledger
func (h *CashLedgerHandler) List(c *gin.Context) {
	var filter appledger.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	responses, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, responses)
}

// Summary handles GET /cash-ledger/summary
func (h *CashLedgerHandler) Summary(c *gin.Context) {
	var filter appledger.SummaryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.Summarize(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update handles PUT /cash-ledger/:id
func (h *CashLedgerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	var req appledger.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /cash-ledger/:id
func (h *CashLedgerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

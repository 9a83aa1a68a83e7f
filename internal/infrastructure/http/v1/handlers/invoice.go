package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/id"
	"ferreo/internal/domain"
	"ferreo/internal/domain/documents/invoice"
	"ferreo/internal/infrastructure/http/v1/dto"
	"ferreo/internal/infrastructure/storage/postgres"
	"ferreo/pkg/logger"
)

// InvoiceHandler serves sales invoice endpoints.
type InvoiceHandler struct {
	*BaseHandler
	service *invoice.Service
	audit   *postgres.AuditService
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *invoice.Service, audit *postgres.AuditService) *InvoiceHandler {
	return &InvoiceHandler{BaseHandler: base, service: service, audit: audit}
}

// List handles GET /documents/invoices.
func (h *InvoiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := invoice.ListFilter{
		ListFilter: domain.ListFilter{
			Search:         c.Query("search"),
			Limit:          h.ParseIntQuery(c, "limit", 50),
			Offset:         h.ParseIntQuery(c, "offset", 0),
			OrderBy:        c.Query("orderBy"),
			IncludeDeleted: c.Query("includeDeleted") == "true",
		},
	}

	if customerStr := c.Query("customerId"); customerStr != "" {
		customerID, err := id.Parse(customerStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid customerId format"))
			return
		}
		filter.CustomerID = &customerID
	}

	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}

	var ok bool
	if filter.DateFrom, ok = h.parseDateQuery(c, "dateFrom"); !ok {
		return
	}
	if filter.DateTo, ok = h.parseDateQuery(c, "dateTo"); !ok {
		return
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, doc := range result.Items {
		items[i] = dto.FromInvoice(doc)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Create handles POST /documents/invoices.
func (h *InvoiceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if _, err := id.Parse(req.CustomerID); err != nil {
		h.Error(c, apperror.NewValidation("invalid customerId format"))
		return
	}

	doc := req.ToEntity()

	if err := h.service.Create(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	h.logAudit(ctx, doc.ID, postgres.AuditActionCreate, map[string]any{
		"number": doc.Number,
		"total":  doc.Total.String(),
	})

	c.JSON(http.StatusCreated, dto.FromInvoice(doc))
}

// Get handles GET /documents/invoices/:id.
func (h *InvoiceHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromInvoice(doc))
}

// Update handles PUT /documents/invoices/:id. Only invoices without
// payment allocations accept changes.
func (h *InvoiceHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(doc)

	if err := h.service.Update(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	h.logAudit(ctx, doc.ID, postgres.AuditActionUpdate, map[string]any{
		"number": doc.Number,
		"total":  doc.Total.String(),
	})

	h.OK(c, dto.FromInvoice(doc))
}

// Delete handles DELETE /documents/invoices/:id.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, docID); err != nil {
		h.Error(c, err)
		return
	}

	h.logAudit(ctx, docID, postgres.AuditActionDelete, nil)

	h.NoContent(c)
}

// logAudit records document history; failures are logged, not surfaced.
func (h *InvoiceHandler) logAudit(ctx context.Context, docID id.ID, action postgres.AuditAction, changes map[string]any) {
	if h.audit == nil {
		return
	}
	if err := h.audit.LogChange(ctx, "invoice", docID, action, changes); err != nil {
		logger.Warn(ctx, "audit log failed", "entity", "invoice", "error", err)
	}
}

// parseDateQuery parses an RFC 3339 or YYYY-MM-DD date query parameter.
func (h *BaseHandler) parseDateQuery(c *gin.Context, key string) (*time.Time, bool) {
	val := c.Query(key)
	if val == "" {
		return nil, true
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, val); err == nil {
			return &t, true
		}
	}

	h.Error(c, apperror.NewValidation("invalid date format").WithDetail("param", key))
	return nil, false
}

package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/id"
	"ferreo/internal/domain"
	"ferreo/internal/domain/documents/payment"
	"ferreo/internal/infrastructure/http/v1/dto"
	"ferreo/internal/infrastructure/storage/postgres"
	"ferreo/pkg/logger"
)

// PaymentHandler serves payment endpoints. Payments are immutable once
// applied, so there is no update or delete route.
type PaymentHandler struct {
	*BaseHandler
	service *payment.Service
	audit   *postgres.AuditService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(base *BaseHandler, service *payment.Service, audit *postgres.AuditService) *PaymentHandler {
	return &PaymentHandler{BaseHandler: base, service: service, audit: audit}
}

// List handles GET /documents/payments.
func (h *PaymentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := payment.ListFilter{
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
		items[i] = dto.FromPayment(doc)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Create handles POST /documents/payments. Applying the payment mints
// the receipt number and allocates the amount across the customer's
// open invoices, oldest first.
func (h *PaymentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreatePaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if _, err := id.Parse(req.CustomerID); err != nil {
		h.Error(c, apperror.NewValidation("invalid customerId format"))
		return
	}

	if req.InvoiceID != nil {
		if _, err := id.Parse(*req.InvoiceID); err != nil {
			h.Error(c, apperror.NewValidation("invalid invoiceId format"))
			return
		}
	}

	doc := req.ToEntity()

	if err := h.service.Apply(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	h.logAudit(ctx, doc.ID, postgres.AuditActionApply, map[string]any{
		"number":  doc.Number,
		"total":   doc.Total.String(),
		"applied": doc.AppliedAmount.String(),
		"credit":  doc.CreditAmount.String(),
	})

	c.JSON(http.StatusCreated, dto.FromPayment(doc))
}

// Get handles GET /documents/payments/:id.
func (h *PaymentHandler) Get(c *gin.Context) {
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

	h.OK(c, dto.FromPayment(doc))
}

// Receipt handles GET /documents/payments/:id/receipt. The payload
// carries the total spelled out in Spanish for printing.
func (h *PaymentHandler) Receipt(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	receipt, err := h.service.BuildReceipt(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, receipt)
}

// CreditBalance handles GET /documents/payments/credit/:customerId.
func (h *PaymentHandler) CreditBalance(c *gin.Context) {
	ctx := c.Request.Context()

	customerID, err := id.Parse(c.Param("customerId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid customerId format"))
		return
	}

	summary, err := h.service.CreditBalance(ctx, customerID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.CreditBalanceResponse{
		CustomerID: summary.CustomerID.String(),
		Credit:     summary.Credit,
	})
}

func (h *PaymentHandler) logAudit(ctx context.Context, docID id.ID, action postgres.AuditAction, changes map[string]any) {
	if h.audit == nil {
		return
	}
	if err := h.audit.LogChange(ctx, "payment", docID, action, changes); err != nil {
		logger.Warn(ctx, "audit log failed", "entity", "payment", "error", err)
	}
}

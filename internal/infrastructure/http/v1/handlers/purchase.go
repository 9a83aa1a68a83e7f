package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ferreo/internal/core/apperror"
	appctx "ferreo/internal/core/context"
	"ferreo/internal/core/id"
	"ferreo/internal/domain"
	"ferreo/internal/domain/documents/purchase"
	"ferreo/internal/infrastructure/http/v1/dto"
	"ferreo/internal/infrastructure/storage/postgres"
	"ferreo/pkg/logger"
)

// PurchaseHandler serves purchase invoice endpoints.
type PurchaseHandler struct {
	*BaseHandler
	service *purchase.Service
	audit   *postgres.AuditService
}

// NewPurchaseHandler creates a new purchase invoice handler.
func NewPurchaseHandler(base *BaseHandler, service *purchase.Service, audit *postgres.AuditService) *PurchaseHandler {
	return &PurchaseHandler{BaseHandler: base, service: service, audit: audit}
}

// List handles GET /documents/purchase-invoices.
func (h *PurchaseHandler) List(c *gin.Context) {
	h.list(c, nil)
}

// ListForPortal handles GET /portal/purchase-invoices. The supplier
// filter comes from the session, never from the query string.
func (h *PurchaseHandler) ListForPortal(c *gin.Context) {
	supplierStr := appctx.GetSupplierID(c.Request.Context())
	supplierID, err := id.Parse(supplierStr)
	if err != nil {
		h.Error(c, apperror.NewForbidden("supplier session required"))
		return
	}
	h.list(c, &supplierID)
}

func (h *PurchaseHandler) list(c *gin.Context, forcedSupplier *id.ID) {
	ctx := c.Request.Context()

	filter := purchase.ListFilter{
		ListFilter: domain.ListFilter{
			Search:  c.Query("search"),
			Limit:   h.ParseIntQuery(c, "limit", 50),
			Offset:  h.ParseIntQuery(c, "offset", 0),
			OrderBy: c.Query("orderBy"),
		},
	}

	if forcedSupplier != nil {
		filter.SupplierID = forcedSupplier
	} else if supplierStr := c.Query("supplierId"); supplierStr != "" {
		supplierID, err := id.Parse(supplierStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid supplierId format"))
			return
		}
		filter.SupplierID = &supplierID
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
		items[i] = dto.FromPurchaseInvoice(doc)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Create handles POST /documents/purchase-invoices.
func (h *PurchaseHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreatePurchaseInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if _, err := id.Parse(req.SupplierID); err != nil {
		h.Error(c, apperror.NewValidation("invalid supplierId format"))
		return
	}

	doc := req.ToEntity()

	if err := h.service.Create(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	h.logAudit(ctx, doc.ID, postgres.AuditActionCreate, map[string]any{
		"number":                doc.Number,
		"supplierInvoiceNumber": doc.SupplierInvoiceNumber,
		"total":                 doc.Total.String(),
	})

	c.JSON(http.StatusCreated, dto.FromPurchaseInvoice(doc))
}

// Get handles GET /documents/purchase-invoices/:id.
func (h *PurchaseHandler) Get(c *gin.Context) {
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

	h.OK(c, dto.FromPurchaseInvoice(doc))
}

// Delete handles DELETE /documents/purchase-invoices/:id. Deleting
// reverses the stock the document brought in.
func (h *PurchaseHandler) Delete(c *gin.Context) {
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

func (h *PurchaseHandler) logAudit(ctx context.Context, docID id.ID, action postgres.AuditAction, changes map[string]any) {
	if h.audit == nil {
		return
	}
	if err := h.audit.LogChange(ctx, "purchase_invoice", docID, action, changes); err != nil {
		logger.Warn(ctx, "audit log failed", "entity", "purchase_invoice", "error", err)
	}
}

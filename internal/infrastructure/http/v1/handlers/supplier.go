package handlers

import (
	"github.com/gin-gonic/gin"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/id"
	"ferreo/internal/domain/catalogs/supplier"
	"ferreo/internal/infrastructure/http/v1/dto"
)

type SupplierHTTPHandler struct {
	*CatalogHandler[*supplier.Supplier, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]
	service *supplier.Service
}

// NewSupplierHandler wires the generic catalog handler for suppliers,
// plus the portal access code endpoint.
func NewSupplierHandler(
	base *BaseHandler,
	service *supplier.Service,
) *SupplierHTTPHandler {
	config := CatalogHandlerConfig[
		*supplier.Supplier,
		dto.CreateSupplierRequest,
		dto.UpdateSupplierRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "supplier",

		MapCreateDTO: func(req dto.CreateSupplierRequest) *supplier.Supplier {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateSupplierRequest, existing *supplier.Supplier) *supplier.Supplier {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *supplier.Supplier) any {
			return dto.FromSupplier(entity)
		},
	}

	return &SupplierHTTPHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// SetAccessCode handles POST /catalog/suppliers/:id/access-code.
// An empty access code disables portal login.
func (h *SupplierHTTPHandler) SetAccessCode(c *gin.Context) {
	ctx := c.Request.Context()

	supplierID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.SetAccessCodeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.SetAccessCode(ctx, supplierID, req.AccessCode); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "access code updated")
}

package dto

import (
	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
	"ferreo/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code           string      `json:"code"`
	Name           string      `json:"name" binding:"required"`
	Unit           string      `json:"unit" binding:"required"`
	SupplierID     *string     `json:"supplierId"`
	Barcode        *string     `json:"barcode"`
	PriceRetail    types.Money `json:"priceRetail"`
	PriceWholesale types.Money `json:"priceWholesale"`
	PricePreferred types.Money `json:"pricePreferred"`
	Cost           types.Money `json:"cost"`
	MinStockQty    types.Money `json:"minStockQty"`
	Comment        *string     `json:"comment"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	p := product.NewProduct(r.Code, r.Name, r.Unit)
	if r.SupplierID != nil {
		if supplierID, err := id.Parse(*r.SupplierID); err == nil {
			p.SupplierID = &supplierID
		}
	}
	p.Barcode = r.Barcode
	p.PriceRetail = r.PriceRetail
	p.PriceWholesale = r.PriceWholesale
	p.PricePreferred = r.PricePreferred
	p.Cost = r.Cost
	p.MinStockQty = r.MinStockQty
	p.Comment = r.Comment
	return p
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	Code           string      `json:"code"`
	Name           string      `json:"name" binding:"required"`
	Unit           string      `json:"unit" binding:"required"`
	SupplierID     *string     `json:"supplierId"`
	Barcode        *string     `json:"barcode"`
	PriceRetail    types.Money `json:"priceRetail"`
	PriceWholesale types.Money `json:"priceWholesale"`
	PricePreferred types.Money `json:"pricePreferred"`
	Cost           types.Money `json:"cost"`
	MinStockQty    types.Money `json:"minStockQty"`
	Comment        *string     `json:"comment"`
	Version        int         `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity. The cached stock
// quantity is never set through the API.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) {
	p.Code = r.Code
	p.Name = r.Name
	p.Unit = r.Unit
	p.SupplierID = nil
	if r.SupplierID != nil {
		if supplierID, err := id.Parse(*r.SupplierID); err == nil {
			p.SupplierID = &supplierID
		}
	}
	p.Barcode = r.Barcode
	p.PriceRetail = r.PriceRetail
	p.PriceWholesale = r.PriceWholesale
	p.PricePreferred = r.PricePreferred
	p.Cost = r.Cost
	p.MinStockQty = r.MinStockQty
	p.Comment = r.Comment
	p.Version = r.Version
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	ID             string      `json:"id"`
	Code           string      `json:"code"`
	Name           string      `json:"name"`
	Unit           string      `json:"unit"`
	SupplierID     *string     `json:"supplierId,omitempty"`
	Barcode        *string     `json:"barcode,omitempty"`
	PriceRetail    types.Money `json:"priceRetail"`
	PriceWholesale types.Money `json:"priceWholesale"`
	PricePreferred types.Money `json:"pricePreferred"`
	Cost           types.Money `json:"cost"`
	StockQty       types.Money `json:"stockQty"`
	MinStockQty    types.Money `json:"minStockQty"`
	LowStock       bool        `json:"lowStock"`
	Comment        *string     `json:"comment,omitempty"`
	DeletionMark   bool        `json:"deletionMark"`
	Version        int         `json:"version"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	resp := &ProductResponse{
		ID:             p.ID.String(),
		Code:           p.Code,
		Name:           p.Name,
		Unit:           p.Unit,
		Barcode:        p.Barcode,
		PriceRetail:    p.PriceRetail,
		PriceWholesale: p.PriceWholesale,
		PricePreferred: p.PricePreferred,
		Cost:           p.Cost,
		StockQty:       p.StockQty,
		MinStockQty:    p.MinStockQty,
		LowStock:       p.LowStock(),
		Comment:        p.Comment,
		DeletionMark:   p.DeletionMark,
		Version:        p.Version,
	}
	if p.SupplierID != nil {
		s := p.SupplierID.String()
		resp.SupplierID = &s
	}
	return resp
}

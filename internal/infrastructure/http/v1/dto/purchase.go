package dto

import (
	"time"

	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
	"ferreo/internal/domain/documents/purchase"
)

// --- Request DTOs ---

type CreatePurchaseInvoiceRequest struct {
	Date                  time.Time             `json:"date" binding:"required"`
	SupplierID            string                `json:"supplierId" binding:"required"`
	SupplierInvoiceNumber string                `json:"supplierInvoiceNumber" binding:"required"`
	Comment               string                `json:"comment,omitempty"`
	Lines                 []PurchaseLineRequest `json:"lines" binding:"required,min=1,dive"`
}

type PurchaseLineRequest struct {
	ProductID string      `json:"productId" binding:"required"`
	Quantity  types.Money `json:"quantity" binding:"required"`
	UnitCost  types.Money `json:"unitCost" binding:"required"`
}

func (r *CreatePurchaseInvoiceRequest) ToEntity() *purchase.PurchaseInvoice {
	supplierID, _ := id.Parse(r.SupplierID)

	doc := purchase.NewPurchaseInvoice(supplierID, r.SupplierInvoiceNumber)
	doc.Date = r.Date
	doc.Comment = r.Comment

	for _, line := range r.Lines {
		productID, _ := id.Parse(line.ProductID)
		doc.AddLine(productID, line.Quantity, line.UnitCost)
	}

	return doc
}

// --- Response DTOs ---

type PurchaseInvoiceResponse struct {
	ID                    string                 `json:"id"`
	Number                string                 `json:"number"`
	Date                  time.Time              `json:"date"`
	SupplierID            string                 `json:"supplierId"`
	SupplierInvoiceNumber string                 `json:"supplierInvoiceNumber"`
	Total                 types.Money            `json:"total"`
	Comment               string                 `json:"comment,omitempty"`
	Lines                 []PurchaseLineResponse `json:"lines,omitempty"`
	DeletionMark          bool                   `json:"deletionMark"`
	Version               int                    `json:"version"`
	CreatedAt             time.Time              `json:"createdAt"`
}

type PurchaseLineResponse struct {
	LineNo    int         `json:"lineNo"`
	ProductID string      `json:"productId"`
	Quantity  types.Money `json:"quantity"`
	UnitCost  types.Money `json:"unitCost"`
	Amount    types.Money `json:"amount"`
}

func FromPurchaseInvoice(doc *purchase.PurchaseInvoice) *PurchaseInvoiceResponse {
	resp := &PurchaseInvoiceResponse{
		ID:                    doc.ID.String(),
		Number:                doc.Number,
		Date:                  doc.Date,
		SupplierID:            doc.SupplierID.String(),
		SupplierInvoiceNumber: doc.SupplierInvoiceNumber,
		Total:                 doc.Total,
		Comment:               doc.Comment,
		DeletionMark:          doc.DeletionMark,
		Version:               doc.Version,
		CreatedAt:             doc.CreatedAt,
	}

	for _, line := range doc.Lines {
		resp.Lines = append(resp.Lines, PurchaseLineResponse{
			LineNo:    line.LineNo,
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			UnitCost:  line.UnitCost,
			Amount:    line.Amount,
		})
	}

	return resp
}

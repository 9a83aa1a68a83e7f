package dto

import (
	"time"

	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
	"ferreo/internal/domain/documents/invoice"
)

// --- Request DTOs ---

type CreateInvoiceRequest struct {
	Number     string               `json:"number,omitempty"`
	Date       time.Time            `json:"date" binding:"required"`
	CustomerID string               `json:"customerId" binding:"required"`
	Comment    string               `json:"comment,omitempty"`
	Lines      []InvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
}

type InvoiceLineRequest struct {
	ProductID string      `json:"productId" binding:"required"`
	Quantity  types.Money `json:"quantity" binding:"required"`
	// UnitPrice zero or omitted means "price from the customer's tier".
	UnitPrice types.Money `json:"unitPrice"`
}

func (r *CreateInvoiceRequest) ToEntity() *invoice.Invoice {
	customerID, _ := id.Parse(r.CustomerID)

	doc := invoice.NewInvoice(customerID)
	doc.Number = r.Number
	doc.Date = r.Date
	doc.Comment = r.Comment

	for _, line := range r.Lines {
		productID, _ := id.Parse(line.ProductID)
		doc.AddLine(productID, line.Quantity, line.UnitPrice)
	}

	return doc
}

type UpdateInvoiceRequest struct {
	Date    *time.Time           `json:"date,omitempty"`
	Comment *string              `json:"comment,omitempty"`
	Lines   []InvoiceLineRequest `json:"lines,omitempty"`
	Version int                  `json:"version" binding:"required"`
}

func (r *UpdateInvoiceRequest) ApplyTo(doc *invoice.Invoice) {
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.Comment != nil {
		doc.Comment = *r.Comment
	}
	if r.Lines != nil {
		doc.Lines = nil
		for _, line := range r.Lines {
			productID, _ := id.Parse(line.ProductID)
			doc.AddLine(productID, line.Quantity, line.UnitPrice)
		}
	}
	doc.Version = r.Version
}

// --- Response DTOs ---

type InvoiceResponse struct {
	ID           string                `json:"id"`
	Number       string                `json:"number"`
	Date         time.Time             `json:"date"`
	CustomerID   string                `json:"customerId"`
	Status       string                `json:"status"`
	Total        types.Money           `json:"total"`
	PaidAmount   types.Money           `json:"paidAmount"`
	Balance      types.Money           `json:"balance"`
	Comment      string                `json:"comment,omitempty"`
	Lines        []InvoiceLineResponse `json:"lines,omitempty"`
	DeletionMark bool                  `json:"deletionMark"`
	Version      int                   `json:"version"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

type InvoiceLineResponse struct {
	LineNo    int         `json:"lineNo"`
	ProductID string      `json:"productId"`
	Quantity  types.Money `json:"quantity"`
	UnitPrice types.Money `json:"unitPrice"`
	Amount    types.Money `json:"amount"`
}

func FromInvoice(doc *invoice.Invoice) *InvoiceResponse {
	resp := &InvoiceResponse{
		ID:           doc.ID.String(),
		Number:       doc.Number,
		Date:         doc.Date,
		CustomerID:   doc.CustomerID.String(),
		Status:       doc.Status,
		Total:        doc.Total,
		PaidAmount:   doc.PaidAmount,
		Balance:      doc.Balance(),
		Comment:      doc.Comment,
		DeletionMark: doc.DeletionMark,
		Version:      doc.Version,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}

	for _, line := range doc.Lines {
		resp.Lines = append(resp.Lines, InvoiceLineResponse{
			LineNo:    line.LineNo,
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Amount:    line.Amount,
		})
	}

	return resp
}

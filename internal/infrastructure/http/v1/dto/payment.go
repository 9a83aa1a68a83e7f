package dto

import (
	"time"

	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
	"ferreo/internal/domain/documents/payment"
)

// --- Request DTOs ---

type CreatePaymentRequest struct {
	Date       time.Time            `json:"date" binding:"required"`
	CustomerID string               `json:"customerId" binding:"required"`
	// InvoiceID optionally names the invoice the payment was taken
	// against; that invoice settles first.
	InvoiceID   *string              `json:"invoiceId"`
	Comment     string               `json:"comment,omitempty"`
	MethodLines []MethodLineRequest  `json:"methodLines" binding:"required,min=1,dive"`
}

type MethodLineRequest struct {
	Method    string      `json:"method" binding:"required"`
	Amount    types.Money `json:"amount" binding:"required"`
	Reference *string     `json:"reference"`
}

func (r *CreatePaymentRequest) ToEntity() *payment.Payment {
	customerID, _ := id.Parse(r.CustomerID)

	doc := payment.NewPayment(customerID)
	doc.Date = r.Date
	doc.Comment = r.Comment

	if r.InvoiceID != nil {
		if invoiceID, err := id.Parse(*r.InvoiceID); err == nil {
			doc.InvoiceID = &invoiceID
		}
	}

	for _, line := range r.MethodLines {
		doc.AddMethodLine(line.Method, line.Amount, line.Reference)
	}

	return doc
}

// --- Response DTOs ---

type PaymentResponse struct {
	ID            string               `json:"id"`
	Number        string               `json:"number"`
	Date          time.Time            `json:"date"`
	CustomerID    string               `json:"customerId"`
	InvoiceID     *string              `json:"invoiceId,omitempty"`
	Total         types.Money          `json:"total"`
	AppliedAmount types.Money          `json:"appliedAmount"`
	CreditAmount  types.Money          `json:"creditAmount"`
	Comment       string               `json:"comment,omitempty"`
	MethodLines   []payment.MethodLine `json:"methodLines,omitempty"`
	Allocations   []payment.Allocation `json:"allocations,omitempty"`
	Version       int                  `json:"version"`
	CreatedAt     time.Time            `json:"createdAt"`
}

func FromPayment(doc *payment.Payment) *PaymentResponse {
	resp := &PaymentResponse{
		ID:            doc.ID.String(),
		Number:        doc.Number,
		Date:          doc.Date,
		CustomerID:    doc.CustomerID.String(),
		Total:         doc.Total,
		AppliedAmount: doc.AppliedAmount,
		CreditAmount:  doc.CreditAmount,
		Comment:       doc.Comment,
		MethodLines:   doc.MethodLines,
		Allocations:   doc.Allocations,
		Version:       doc.Version,
		CreatedAt:     doc.CreatedAt,
	}
	if doc.InvoiceID != nil {
		s := doc.InvoiceID.String()
		resp.InvoiceID = &s
	}
	return resp
}

// CreditBalanceResponse reports the customer's accumulated credit.
type CreditBalanceResponse struct {
	CustomerID string      `json:"customerId"`
	Credit     types.Money `json:"credit"`
}

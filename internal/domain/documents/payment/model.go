// Package payment provides customer payment documents and the
// allocation logic that settles them against open invoices.
package payment

import (
	"context"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/entity"
	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
)

// Payment methods accepted on a method line.
const (
	MethodCash     = "CASH"
	MethodTransfer = "TRANSFER"
	MethodCard     = "CARD"
	MethodCheck    = "CHECK"
)

// ValidMethod reports whether m is an accepted payment method.
func ValidMethod(m string) bool {
	switch m {
	case MethodCash, MethodTransfer, MethodCard, MethodCheck:
		return true
	}
	return false
}

// Payment represents money received from a customer. Its document
// number is the receipt number (monthly prefix with a leading "R").
type Payment struct {
	entity.Document

	CustomerID id.ID `db:"customer_id" json:"customerId"`

	// InvoiceID optionally names the invoice that triggered the
	// payment; the allocator settles it first.
	InvoiceID *id.ID `db:"invoice_id" json:"invoiceId,omitempty"`

	// Total is the sum of method line amounts.
	Total types.Money `db:"total" json:"total"`

	// AppliedAmount is the part of Total allocated to invoices.
	AppliedAmount types.Money `db:"applied_amount" json:"appliedAmount"`

	// CreditAmount is the unallocated remainder, kept in the
	// customer's favor.
	CreditAmount types.Money `db:"credit_amount" json:"creditAmount"`

	// Table parts
	MethodLines []MethodLine `db:"-" json:"methodLines"`
	Allocations []Allocation `db:"-" json:"allocations"`
}

// MethodLine is one payment instrument within the payment.
type MethodLine struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	Method string      `db:"method" json:"method"`
	Amount types.Money `db:"amount" json:"amount"`

	// Reference holds the check or transfer number when applicable
	Reference *string `db:"reference" json:"reference,omitempty"`
}

// Allocation records how much of the payment settled one invoice.
type Allocation struct {
	ID id.ID `db:"id" json:"id"`

	InvoiceID     id.ID       `db:"invoice_id" json:"invoiceId"`
	InvoiceNumber string      `db:"invoice_number" json:"invoiceNumber"`
	Amount        types.Money `db:"amount" json:"amount"`
}

// NewPayment creates a payment for a customer.
func NewPayment(customerID id.ID) *Payment {
	return &Payment{
		Document:      entity.NewDocument(),
		CustomerID:    customerID,
		Total:         types.Zero(),
		AppliedAmount: types.Zero(),
		CreditAmount:  types.Zero(),
		MethodLines:   make([]MethodLine, 0),
		Allocations:   make([]Allocation, 0),
	}
}

// AddMethodLine appends a payment instrument and recalculates the total.
func (p *Payment) AddMethodLine(method string, amount types.Money, reference *string) {
	p.MethodLines = append(p.MethodLines, MethodLine{
		LineID:    id.New(),
		LineNo:    len(p.MethodLines) + 1,
		Method:    method,
		Amount:    amount,
		Reference: reference,
	})
	p.recalculateTotal()
}

func (p *Payment) recalculateTotal() {
	total := types.Zero()
	for _, line := range p.MethodLines {
		total = total.Add(line.Amount)
	}
	p.Total = types.RoundHalfUp(total)
}

// Validate implements entity.Validatable.
func (p *Payment) Validate(ctx context.Context) error {
	if err := p.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(p.CustomerID) {
		return apperror.NewValidation("el cliente es obligatorio").
			WithDetail("field", "customerId")
	}

	if len(p.MethodLines) == 0 {
		return apperror.NewValidation("no hay líneas de pago válidas").
			WithDetail("field", "methodLines")
	}

	for i, line := range p.MethodLines {
		if !ValidMethod(line.Method) {
			return apperror.NewValidation("medio de pago inválido").
				WithDetail("field", "methodLines").
				WithDetail("lineNo", i+1).
				WithDetail("method", line.Method)
		}
		if !line.Amount.IsPositive() {
			return apperror.NewValidation("no hay líneas de pago válidas").
				WithDetail("field", "methodLines").
				WithDetail("lineNo", i+1)
		}
	}

	if !p.Total.IsPositive() {
		return apperror.NewValidation("no hay líneas de pago válidas").
			WithDetail("field", "total")
	}

	return nil
}

// Package invoice provides the sales invoice document.
// Invoices accumulate payments through allocations; the balance and
// status transitions are the ground truth the payment allocator works on.
package invoice

import (
	"context"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/entity"
	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
)

// Invoice settlement status.
const (
	// StatusPending means no payment has been allocated yet.
	StatusPending = "PENDING"
	// StatusPartial means some, but not all, of the total is covered.
	StatusPartial = "PARTIAL"
	// StatusPaid means the balance is exactly zero.
	StatusPaid = "PAID"
)

// Invoice represents a sales invoice issued to a customer.
type Invoice struct {
	entity.Document

	CustomerID id.ID `db:"customer_id" json:"customerId"`

	// Status is PENDING, PARTIAL or PAID. It is derived from PaidAmount
	// and Total and kept denormalized for filtering.
	Status string `db:"status" json:"status"`

	// Total is the sum of line amounts, rounded to cents.
	Total types.Money `db:"total" json:"total"`

	// PaidAmount accumulates allocations; never exceeds Total.
	PaidAmount types.Money `db:"paid_amount" json:"paidAmount"`

	// Table part: invoiced items
	Lines []Line `db:"-" json:"lines"`
}

// Line represents one invoiced item.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductID id.ID       `db:"product_id" json:"productId"`
	Quantity  types.Money `db:"quantity" json:"quantity"`
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`
	Amount    types.Money `db:"amount" json:"amount"`
}

// NewInvoice creates a new invoice for a customer.
func NewInvoice(customerID id.ID) *Invoice {
	return &Invoice{
		Document:   entity.NewDocument(),
		CustomerID: customerID,
		Status:     StatusPending,
		Total:      types.Zero(),
		PaidAmount: types.Zero(),
		Lines:      make([]Line, 0),
	}
}

// AddLine adds a line and recalculates the total.
// The line amount is quantity times unit price, rounded to cents.
func (inv *Invoice) AddLine(productID id.ID, quantity, unitPrice types.Money) {
	line := Line{
		LineID:    id.New(),
		LineNo:    len(inv.Lines) + 1,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Amount:    roundLineAmount(quantity, unitPrice),
	}

	inv.Lines = append(inv.Lines, line)
	inv.recalculateTotal()
}

func roundLineAmount(quantity, unitPrice types.Money) types.Money {
	return types.RoundHalfUp(quantity.Mul(unitPrice))
}

func (inv *Invoice) recalculateTotal() {
	total := types.Zero()
	for _, line := range inv.Lines {
		total = total.Add(line.Amount)
	}
	inv.Total = total
}

// Balance returns the unpaid remainder, Total minus PaidAmount.
func (inv *Invoice) Balance() types.Money {
	return inv.Total.Sub(inv.PaidAmount)
}

// IsOpen reports whether the invoice can still receive allocations.
func (inv *Invoice) IsOpen() bool {
	return inv.Status != StatusPaid && inv.Balance().IsPositive()
}

// ApplyAmount allocates amount against the balance and refreshes the
// status. The amount must not exceed the balance; the allocator always
// passes min(remaining, balance).
func (inv *Invoice) ApplyAmount(amount types.Money) error {
	if amount.IsNegative() {
		return apperror.NewValidation("el monto a imputar no puede ser negativo").
			WithDetail("invoice", inv.Number)
	}
	if amount.GreaterThan(inv.Balance()) {
		return apperror.NewBusinessRule(apperror.CodeInvoiceSettled,
			"el monto a imputar supera el saldo de la factura").
			WithDetail("invoice", inv.Number).
			WithDetail("balance", inv.Balance().String())
	}

	inv.PaidAmount = inv.PaidAmount.Add(amount)
	inv.refreshStatus()
	return nil
}

// refreshStatus derives the status from the balance: PAID exactly when
// the balance is zero, PARTIAL when something was paid, else PENDING.
func (inv *Invoice) refreshStatus() {
	switch {
	case inv.Balance().IsZero():
		inv.Status = StatusPaid
	case inv.PaidAmount.IsPositive():
		inv.Status = StatusPartial
	default:
		inv.Status = StatusPending
	}
}

// Validate implements entity.Validatable.
func (inv *Invoice) Validate(ctx context.Context) error {
	if err := inv.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(inv.CustomerID) {
		return apperror.NewValidation("el cliente es obligatorio").
			WithDetail("field", "customerId")
	}

	if len(inv.Lines) == 0 {
		return apperror.NewValidation("la factura debe tener al menos una línea").
			WithDetail("field", "lines")
	}

	for i, line := range inv.Lines {
		if id.IsNil(line.ProductID) {
			return apperror.NewValidation("el producto es obligatorio").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if !line.Quantity.IsPositive() {
			return apperror.NewValidation("la cantidad debe ser positiva").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.UnitPrice.IsNegative() {
			return apperror.NewValidation("el precio no puede ser negativo").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

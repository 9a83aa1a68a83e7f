// Package purchase provides the purchase invoice document.
// Purchase invoices record goods received from suppliers; posting one
// increases stock and refreshes each product's last cost.
package purchase

import (
	"context"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/entity"
	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
)

// PurchaseInvoice represents a supplier invoice entered manually.
type PurchaseInvoice struct {
	entity.Document

	SupplierID id.ID `db:"supplier_id" json:"supplierId"`

	// SupplierInvoiceNumber is the number printed on the supplier's
	// own document.
	SupplierInvoiceNumber string `db:"supplier_invoice_number" json:"supplierInvoiceNumber"`

	Total types.Money `db:"total" json:"total"`

	Lines []Line `db:"-" json:"lines"`
}

// Line represents one received item.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductID id.ID       `db:"product_id" json:"productId"`
	Quantity  types.Money `db:"quantity" json:"quantity"`
	UnitCost  types.Money `db:"unit_cost" json:"unitCost"`
	Amount    types.Money `db:"amount" json:"amount"`
}

// NewPurchaseInvoice creates a new purchase invoice for a supplier.
func NewPurchaseInvoice(supplierID id.ID, supplierInvoiceNumber string) *PurchaseInvoice {
	return &PurchaseInvoice{
		Document:              entity.NewDocument(),
		SupplierID:            supplierID,
		SupplierInvoiceNumber: supplierInvoiceNumber,
		Total:                 types.Zero(),
		Lines:                 make([]Line, 0),
	}
}

// AddLine adds a received item and recalculates the total.
func (pi *PurchaseInvoice) AddLine(productID id.ID, quantity, unitCost types.Money) {
	line := Line{
		LineID:    id.New(),
		LineNo:    len(pi.Lines) + 1,
		ProductID: productID,
		Quantity:  quantity,
		UnitCost:  unitCost,
		Amount:    types.RoundHalfUp(quantity.Mul(unitCost)),
	}

	pi.Lines = append(pi.Lines, line)
	pi.recalculateTotal()
}

func (pi *PurchaseInvoice) recalculateTotal() {
	total := types.Zero()
	for _, line := range pi.Lines {
		total = total.Add(line.Amount)
	}
	pi.Total = total
}

// Validate implements entity.Validatable.
func (pi *PurchaseInvoice) Validate(ctx context.Context) error {
	if err := pi.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(pi.SupplierID) {
		return apperror.NewValidation("el proveedor es obligatorio").
			WithDetail("field", "supplierId")
	}

	if pi.SupplierInvoiceNumber == "" {
		return apperror.NewValidation("el número de factura del proveedor es obligatorio").
			WithDetail("field", "supplierInvoiceNumber")
	}

	if len(pi.Lines) == 0 {
		return apperror.NewValidation("la factura debe tener al menos una línea").
			WithDetail("field", "lines")
	}

	for i, line := range pi.Lines {
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
		if line.UnitCost.IsNegative() {
			return apperror.NewValidation("el costo no puede ser negativo").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

package entity

import (
	"context"
	"time"

	"ferreo/internal/core/apperror"
)

// Document is the base type for business transactions.
// Examples: Invoice, Payment, PurchaseInvoice.
type Document struct {
	BaseDocument

	// Number is the document number (auto-generated, unique within type+month)
	Number string `db:"number" json:"number"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`

	// Comment is an optional user comment
	Comment string `db:"comment" json:"comment,omitempty"`
}

// NewDocument creates a new Document with generated ID.
func NewDocument() Document {
	return Document{
		BaseDocument: NewBaseDocument(),
		Date:         time.Now().UTC(),
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if d.Date.IsZero() {
		return apperror.NewValidation("la fecha es obligatoria").
			WithDetail("field", "date")
	}

	return nil
}

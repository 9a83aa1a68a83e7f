package purchase

import (
	"context"
	"time"

	"ferreo/internal/core/id"
	"ferreo/internal/domain"
)

// Repository defines operations for purchase invoice documents.
type Repository interface {
	Create(ctx context.Context, doc *PurchaseInvoice) error
	GetByID(ctx context.Context, docID id.ID) (*PurchaseInvoice, error)
	Delete(ctx context.Context, docID id.ID) error

	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*PurchaseInvoice], error)

	// ExistsBySupplierNumber reports whether the supplier's document
	// number was already entered, to catch duplicate data entry.
	ExistsBySupplierNumber(ctx context.Context, supplierID id.ID, supplierInvoiceNumber string) (bool, error)
}

// ListFilter for filtering purchase invoices.
type ListFilter struct {
	domain.ListFilter

	SupplierID *id.ID
	DateFrom   *time.Time
	DateTo     *time.Time
}

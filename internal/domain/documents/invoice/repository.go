package invoice

import (
	"context"
	"time"

	"ferreo/internal/core/id"
	"ferreo/internal/domain"
)

// Repository defines operations for invoice documents.
type Repository interface {
	Create(ctx context.Context, doc *Invoice) error
	GetByID(ctx context.Context, docID id.ID) (*Invoice, error)
	GetByNumber(ctx context.Context, number string) (*Invoice, error)
	Update(ctx context.Context, doc *Invoice) error
	Delete(ctx context.Context, docID id.ID) error

	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Invoice], error)

	// GetForUpdate loads an invoice under a row lock; must run inside a
	// transaction.
	GetForUpdate(ctx context.Context, docID id.ID) (*Invoice, error)

	// ListOpenForUpdate loads the customer's unpaid invoices ordered by
	// date ascending, then by number, under row locks. Must run inside
	// a transaction; the allocator builds its worklist from this.
	ListOpenForUpdate(ctx context.Context, customerID id.ID) ([]*Invoice, error)

	// UpdateAllocation persists the paid amount and status after the
	// allocator has run. Must run inside the allocator's transaction.
	UpdateAllocation(ctx context.Context, doc *Invoice) error
}

// ListFilter for filtering invoices.
type ListFilter struct {
	domain.ListFilter

	CustomerID *id.ID
	Status     *string
	DateFrom   *time.Time
	DateTo     *time.Time
}

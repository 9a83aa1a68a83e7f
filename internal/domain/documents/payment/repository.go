package payment

import (
	"context"
	"time"

	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
	"ferreo/internal/domain"
)

// Repository defines operations for payment documents.
type Repository interface {
	Create(ctx context.Context, doc *Payment) error
	GetByID(ctx context.Context, docID id.ID) (*Payment, error)
	GetByNumber(ctx context.Context, number string) (*Payment, error)

	GetMethodLines(ctx context.Context, docID id.ID) ([]MethodLine, error)
	SaveMethodLines(ctx context.Context, docID id.ID, lines []MethodLine) error

	GetAllocations(ctx context.Context, docID id.ID) ([]Allocation, error)
	SaveAllocations(ctx context.Context, docID id.ID, allocations []Allocation) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Payment], error)

	// CreditBalance sums the customer's unallocated payment remainders.
	CreditBalance(ctx context.Context, customerID id.ID) (CreditSummary, error)
}

// CreditSummary aggregates a customer's accumulated credit.
type CreditSummary struct {
	CustomerID id.ID       `db:"customer_id" json:"customerId"`
	Credit     types.Money `db:"credit" json:"credit"`
}

// ListFilter for filtering payments.
type ListFilter struct {
	domain.ListFilter

	CustomerID *id.ID
	DateFrom   *time.Time
	DateTo     *time.Time
}

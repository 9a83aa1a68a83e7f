package stock

import (
	"context"

	"ferreo/internal/core/id"
	"ferreo/internal/domain"
)

// Repository persists stock movements. Writes always happen inside the
// transaction of the document that produced them.
type Repository interface {
	Insert(ctx context.Context, movements []Movement) error

	// DeleteByDocument removes the movements of a document, used when a
	// document is deleted before settlement.
	DeleteByDocument(ctx context.Context, documentID id.ID) error

	ListByProduct(ctx context.Context, productID id.ID, filter domain.ListFilter) (domain.ListResult[Movement], error)
}

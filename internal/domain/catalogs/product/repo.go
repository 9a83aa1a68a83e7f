package product

import (
	"context"

	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
	"ferreo/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// FindByBarcode retrieves a product by its barcode (unique when present).
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// ListBySupplier returns products referencing the supplier.
	ListBySupplier(ctx context.Context, supplierID id.ID, filter domain.ListFilter) (domain.ListResult[*Product], error)

	// AdjustStock applies a signed quantity delta to the cached stock
	// counter. It must run inside the caller's transaction.
	AdjustStock(ctx context.Context, productID id.ID, delta types.Money) error
}

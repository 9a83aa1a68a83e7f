package supplier

import (
	"context"

	"ferreo/internal/domain"
)

// Repository defines the interface for Supplier persistence.
type Repository interface {
	domain.CatalogRepository[*Supplier]

	// GetByTaxID retrieves a supplier by its fiscal identifier. The
	// tax id is unique among suppliers without a deletion mark.
	GetByTaxID(ctx context.Context, taxID string) (*Supplier, error)
}

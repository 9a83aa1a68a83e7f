package customer

import (
	"context"

	"ferreo/internal/domain"
)

// Repository defines the interface for Customer persistence.
type Repository interface {
	domain.CatalogRepository[*Customer]

	// FindByTaxID retrieves a customer by fiscal number (unique).
	FindByTaxID(ctx context.Context, taxID string) (*Customer, error)
}

package product

import (
	"context"
	"fmt"

	"ferreo/internal/core/id"
	"ferreo/internal/core/numerator"
	"ferreo/internal/core/tx"
	"ferreo/internal/domain"
)

// Service provides business logic for the Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
	repo  Repository
	codes numerator.CodeGenerator
}

// NewService creates a new Product service.
func NewService(repo Repository, codes numerator.CodeGenerator, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "producto",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		codes:          codes,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, p *Product) error {
	if p.Code == "" {
		code, err := s.codes.NextCode(ctx, "ART")
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		p.Code = code
	}
	return nil
}

// FindByBarcode retrieves a product by barcode.
func (s *Service) FindByBarcode(ctx context.Context, barcode string) (*Product, error) {
	return s.repo.FindByBarcode(ctx, barcode)
}

// ListBySupplier returns the supplier's products.
func (s *Service) ListBySupplier(ctx context.Context, supplierID id.ID, filter domain.ListFilter) (domain.ListResult[*Product], error) {
	return s.repo.ListBySupplier(ctx, supplierID, filter)
}

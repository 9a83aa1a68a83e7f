package customer

import (
	"context"
	"fmt"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/id"
	"ferreo/internal/core/numerator"
	"ferreo/internal/core/tx"
	"ferreo/internal/domain"
)

// Service provides business logic for the Customer catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Customer]
	repo  Repository
	codes numerator.CodeGenerator
}

// NewService creates a new Customer service.
func NewService(repo Repository, codes numerator.CodeGenerator, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Customer]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "cliente",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		codes:          codes,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.checkTaxIDUnique)

	return svc
}

// prepareForCreate handles code generation and uniqueness checks before create.
func (s *Service) prepareForCreate(ctx context.Context, c *Customer) error {
	if c.Code == "" {
		code, err := s.codes.NextCode(ctx, "CLI")
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		c.Code = code
	}

	return s.checkTaxIDUnique(ctx, c)
}

// checkTaxIDUnique rejects a second customer with the same fiscal number.
func (s *Service) checkTaxIDUnique(ctx context.Context, c *Customer) error {
	if c.TaxID == nil || *c.TaxID == "" {
		return nil
	}

	existing, err := s.repo.FindByTaxID(ctx, *c.TaxID)
	if err != nil {
		// Not found is OK; other errors must be propagated.
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != c.ID {
		return apperror.NewConflict("ya existe un cliente con este CUIT").
			WithDetail("taxId", *c.TaxID)
	}
	return nil
}

// FindByTaxID retrieves a customer by fiscal number.
func (s *Service) FindByTaxID(ctx context.Context, taxID string) (*Customer, error) {
	return s.repo.FindByTaxID(ctx, taxID)
}

// Exists reports whether the customer exists.
func (s *Service) Exists(ctx context.Context, customerID id.ID) (bool, error) {
	return s.repo.Exists(ctx, customerID)
}

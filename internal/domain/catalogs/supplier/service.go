package supplier

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/id"
	"ferreo/internal/core/numerator"
	"ferreo/internal/core/tx"
	"ferreo/internal/domain"
)

// Service provides business logic for the Supplier catalog.
type Service struct {
	*domain.CatalogService[*Supplier]
	repo  Repository
	codes numerator.CodeGenerator
}

// NewService creates a new Supplier service.
func NewService(repo Repository, codes numerator.CodeGenerator, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Supplier]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "proveedor",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		codes:          codes,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, sp *Supplier) error {
	if sp.Code == "" {
		code, err := s.codes.NextCode(ctx, "PRV")
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		sp.Code = code
	}
	return nil
}

// SetAccessCode hashes and stores a new portal access code for the
// supplier. An empty code disables portal access.
func (s *Service) SetAccessCode(ctx context.Context, supplierID id.ID, accessCode string) error {
	sp, err := s.GetByID(ctx, supplierID)
	if err != nil {
		return err
	}

	if accessCode == "" {
		sp.AccessCodeHash = ""
		return s.Update(ctx, sp)
	}

	if len(accessCode) < 6 {
		return apperror.NewValidation("el código de acceso debe tener al menos 6 caracteres").
			WithDetail("field", "accessCode")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(accessCode), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewInternal(err)
	}
	sp.AccessCodeHash = string(hash)

	return s.Update(ctx, sp)
}

// VerifyAccessCode checks a portal access code against the stored hash.
// Portal sessions identify the supplier by fiscal identifier, not by
// catalog code.
func (s *Service) VerifyAccessCode(ctx context.Context, taxID, accessCode string) (*Supplier, error) {
	sp, err := s.repo.GetByTaxID(ctx, taxID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("credenciales inválidas")
		}
		return nil, err
	}

	if !sp.PortalEnabled() {
		return nil, apperror.NewUnauthorized("credenciales inválidas")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(sp.AccessCodeHash), []byte(accessCode)); err != nil {
		return nil, apperror.NewUnauthorized("credenciales inválidas")
	}

	return sp, nil
}

// Package supplier provides the Supplier catalog.
// Suppliers are referenced by products and purchase invoices, and may
// access a restricted portal authenticated by a per-supplier access code.
package supplier

import (
	"context"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/entity"
)

// Supplier represents a selling counterparty.
type Supplier struct {
	entity.Catalog

	// BusinessName is the official registered name
	BusinessName string `db:"business_name" json:"businessName"`

	// TaxID is the fiscal identification number
	TaxID *string `db:"tax_id" json:"taxId,omitempty"`

	Address *string `db:"address" json:"address,omitempty"`
	Phone   *string `db:"phone" json:"phone,omitempty"`
	Email   *string `db:"email" json:"email,omitempty"`

	// AccessCodeHash is the bcrypt hash of the portal access code.
	// Empty means portal access is disabled for this supplier.
	AccessCodeHash string `db:"access_code_hash" json:"-"`

	Comment *string `db:"comment" json:"comment,omitempty"`
}

// NewSupplier creates a new Supplier with required fields.
func NewSupplier(code, name, businessName string) *Supplier {
	return &Supplier{
		Catalog:      entity.NewCatalog(code, name),
		BusinessName: businessName,
	}
}

// PortalEnabled reports whether the supplier can log into the portal.
func (s *Supplier) PortalEnabled() bool {
	return s.AccessCodeHash != ""
}

// Validate implements entity.Validatable interface.
func (s *Supplier) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}

	if s.BusinessName == "" {
		return apperror.NewValidation("la razón social es obligatoria").
			WithDetail("field", "businessName")
	}

	return nil
}

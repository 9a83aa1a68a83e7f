// Package customer provides the Customer catalog.
// Customers are the buyers referenced by invoices and payments; the
// allocation logic reads them but never mutates them.
package customer

import (
	"context"
	"regexp"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/entity"
)

// Pre-compiled regex patterns for validation
var (
	whitespaceRE = regexp.MustCompile(`[\s-]`)
	digitsOnlyRE = regexp.MustCompile(`^\d+$`)
	emailRE      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Price list tiers. Products carry one price per tier; the customer's
// tier selects which one a new invoice line defaults to.
const (
	TierRetail    = 1
	TierWholesale = 2
	TierPreferred = 3
)

// Customer represents a buying counterparty.
type Customer struct {
	entity.Catalog

	// BusinessName is the official registered name
	BusinessName string `db:"business_name" json:"businessName"`

	// TaxID is the fiscal identification number (unique when present)
	TaxID *string `db:"tax_id" json:"taxId,omitempty"`

	// PriceTier selects the product price list (1..3)
	PriceTier int `db:"price_tier" json:"priceTier"`

	Address *string `db:"address" json:"address,omitempty"`
	Phone   *string `db:"phone" json:"phone,omitempty"`
	Email   *string `db:"email" json:"email,omitempty"`

	// Comment is a free-form note
	Comment *string `db:"comment" json:"comment,omitempty"`
}

// NewCustomer creates a new Customer with required fields.
func NewCustomer(code, name, businessName string, priceTier int) *Customer {
	return &Customer{
		Catalog:      entity.NewCatalog(code, name),
		BusinessName: businessName,
		PriceTier:    priceTier,
	}
}

// Validate implements entity.Validatable interface.
func (c *Customer) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.BusinessName == "" {
		return apperror.NewValidation("la razón social es obligatoria").
			WithDetail("field", "businessName")
	}

	if c.PriceTier < TierRetail || c.PriceTier > TierPreferred {
		return apperror.NewValidation("lista de precios inválida").
			WithDetail("field", "priceTier").
			WithDetail("value", c.PriceTier)
	}

	if c.TaxID != nil && *c.TaxID != "" {
		if err := validateTaxID(*c.TaxID); err != nil {
			return err
		}
	}

	if c.Email != nil && *c.Email != "" && !emailRE.MatchString(*c.Email) {
		return apperror.NewValidation("formato de email inválido").
			WithDetail("field", "email")
	}

	return nil
}

// validateTaxID checks the fiscal number: digits only, 7 to 13 digits.
func validateTaxID(taxID string) error {
	cleaned := whitespaceRE.ReplaceAllString(taxID, "")

	if len(cleaned) < 7 || len(cleaned) > 13 {
		return apperror.NewValidation("el CUIT debe tener entre 7 y 13 dígitos").
			WithDetail("field", "taxId")
	}

	if !digitsOnlyRE.MatchString(cleaned) {
		return apperror.NewValidation("el CUIT debe contener solo dígitos").
			WithDetail("field", "taxId")
	}

	return nil
}

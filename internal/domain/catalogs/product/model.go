// Package product provides the Product catalog.
// Products carry three tiered list prices and a cached stock quantity
// maintained by invoice and purchase-invoice postings.
package product

import (
	"context"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/entity"
	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
	"ferreo/internal/domain/catalogs/customer"
)

// Product represents a stock item or a service sold to customers.
type Product struct {
	entity.Catalog

	// SupplierID references the usual supplier (optional)
	SupplierID *id.ID `db:"supplier_id" json:"supplierId,omitempty"`

	// Unit is the measurement unit ("un", "kg", "m", "caja")
	Unit string `db:"unit" json:"unit"`

	// Barcode is the EAN/UPC code when present
	Barcode *string `db:"barcode" json:"barcode,omitempty"`

	// PriceRetail, PriceWholesale and PricePreferred are the three
	// list prices; the customer's tier selects one.
	PriceRetail    types.Money `db:"price_retail" json:"priceRetail"`
	PriceWholesale types.Money `db:"price_wholesale" json:"priceWholesale"`
	PricePreferred types.Money `db:"price_preferred" json:"pricePreferred"`

	// Cost is the last purchase cost
	Cost types.Money `db:"cost" json:"cost"`

	// StockQty is the cached on-hand quantity, denormalized from the
	// stock movement ledger.
	StockQty types.Money `db:"stock_qty" json:"stockQty"`

	// MinStockQty triggers the low-stock flag when StockQty falls below it
	MinStockQty types.Money `db:"min_stock_qty" json:"minStockQty"`

	Comment *string `db:"comment" json:"comment,omitempty"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(code, name, unit string) *Product {
	return &Product{
		Catalog: entity.NewCatalog(code, name),
		Unit:    unit,
	}
}

// PriceForTier returns the list price matching a customer tier,
// rounded to cents. Unknown tiers fall back to the retail price.
func (p *Product) PriceForTier(tier int) types.Money {
	var price types.Money
	switch tier {
	case customer.TierWholesale:
		price = p.PriceWholesale
	case customer.TierPreferred:
		price = p.PricePreferred
	default:
		price = p.PriceRetail
	}
	return types.RoundHalfUp(price)
}

// LowStock reports whether the cached quantity is at or below the minimum.
func (p *Product) LowStock() bool {
	if p.MinStockQty.IsZero() {
		return false
	}
	return p.StockQty.LessThanOrEqual(p.MinStockQty)
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.Unit == "" {
		return apperror.NewValidation("la unidad de medida es obligatoria").
			WithDetail("field", "unit")
	}

	for field, price := range map[string]types.Money{
		"priceRetail":    p.PriceRetail,
		"priceWholesale": p.PriceWholesale,
		"pricePreferred": p.PricePreferred,
		"cost":           p.Cost,
	} {
		if price.IsNegative() {
			return apperror.NewValidation("el precio no puede ser negativo").
				WithDetail("field", field)
		}
	}

	return nil
}

package purchase

import (
	"context"
	"fmt"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/id"
	"ferreo/internal/core/numerator"
	"ferreo/internal/core/tx"
	"ferreo/internal/domain"
	"ferreo/internal/domain/catalogs/product"
	"ferreo/internal/domain/catalogs/supplier"
	"ferreo/internal/domain/stock"
	"ferreo/pkg/logger"
)

// Service provides business operations for purchase invoices.
type Service struct {
	repo      Repository
	suppliers supplier.Repository
	products  product.Repository
	stock     stock.Repository
	codes     numerator.CodeGenerator
	txManager tx.Manager
}

// NewService creates a new purchase invoice service.
func NewService(
	repo Repository,
	suppliers supplier.Repository,
	products product.Repository,
	stockRepo stock.Repository,
	codes numerator.CodeGenerator,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		suppliers: suppliers,
		products:  products,
		stock:     stockRepo,
		codes:     codes,
		txManager: txManager,
	}
}

// Create records a purchase invoice, increases stock and refreshes the
// last cost of each received product, all in one transaction.
func (s *Service) Create(ctx context.Context, doc *PurchaseInvoice) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	exists, err := s.suppliers.Exists(ctx, doc.SupplierID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NewValidation("proveedor no encontrado").
			WithDetail("supplierId", doc.SupplierID)
	}

	dup, err := s.repo.ExistsBySupplierNumber(ctx, doc.SupplierID, doc.SupplierInvoiceNumber)
	if err != nil {
		return err
	}
	if dup {
		return apperror.NewConflict("la factura del proveedor ya fue ingresada").
			WithDetail("supplierInvoiceNumber", doc.SupplierInvoiceNumber)
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if doc.Number == "" {
			number, err := s.codes.NextCode(ctx, "FC")
			if err != nil {
				return fmt.Errorf("generate number: %w", err)
			}
			doc.Number = number
		}

		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return s.postStock(ctx, doc)
	})

	if err != nil {
		return err
	}

	logger.Info(ctx, "purchase invoice created",
		"id", doc.ID, "number", doc.Number,
		"supplierInvoice", doc.SupplierInvoiceNumber,
		"total", doc.Total.String())
	return nil
}

// postStock writes incoming movements, bumps cached quantities and
// refreshes each product's last cost.
func (s *Service) postStock(ctx context.Context, doc *PurchaseInvoice) error {
	movements := make([]stock.Movement, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		m := stock.NewMovement(line.ProductID, doc.ID, "PurchaseInvoice", stock.DirectionIn, line.Quantity, doc.Date)
		movements = append(movements, m)

		if err := s.products.AdjustStock(ctx, line.ProductID, m.SignedQuantity()); err != nil {
			return fmt.Errorf("adjust stock: %w", err)
		}

		prod, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return fmt.Errorf("get product: %w", err)
		}
		prod.Cost = line.UnitCost
		if err := s.products.Update(ctx, prod); err != nil {
			return fmt.Errorf("update product cost: %w", err)
		}
	}
	if err := s.stock.Insert(ctx, movements); err != nil {
		return fmt.Errorf("insert stock movements: %w", err)
	}
	return nil
}

// GetByID retrieves a purchase invoice with lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*PurchaseInvoice, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines

	return doc, nil
}

// Delete removes a purchase invoice and reverses its stock effect.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		lines, err := s.repo.GetLines(ctx, doc.ID)
		if err != nil {
			return fmt.Errorf("get lines: %w", err)
		}
		for _, line := range lines {
			if err := s.products.AdjustStock(ctx, line.ProductID, line.Quantity.Neg()); err != nil {
				return fmt.Errorf("adjust stock: %w", err)
			}
		}
		if err := s.stock.DeleteByDocument(ctx, doc.ID); err != nil {
			return fmt.Errorf("delete stock movements: %w", err)
		}
		return s.repo.Delete(ctx, docID)
	})
}

// List retrieves purchase invoices with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*PurchaseInvoice], error) {
	return s.repo.List(ctx, filter)
}

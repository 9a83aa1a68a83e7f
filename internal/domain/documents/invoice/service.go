package invoice

import (
	"context"
	"fmt"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/id"
	"ferreo/internal/core/numerator"
	"ferreo/internal/core/tx"
	"ferreo/internal/domain"
	"ferreo/internal/domain/catalogs/customer"
	"ferreo/internal/domain/catalogs/product"
	"ferreo/internal/domain/stock"
	"ferreo/pkg/logger"
)

// Service provides business operations for invoice documents.
type Service struct {
	repo      Repository
	customers customer.Repository
	products  product.Repository
	stock     stock.Repository
	numbers   numerator.Generator
	txManager tx.Manager
}

// NewService creates a new invoice service.
func NewService(
	repo Repository,
	customers customer.Repository,
	products product.Repository,
	stockRepo stock.Repository,
	numbers numerator.Generator,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		customers: customers,
		products:  products,
		stock:     stockRepo,
		numbers:   numbers,
		txManager: txManager,
	}
}

// Create creates a new invoice. Lines without a unit price are priced
// from the product list matching the customer's tier. The document
// number is minted and the stock movements written in the same
// transaction that persists the invoice.
func (s *Service) Create(ctx context.Context, doc *Invoice) error {
	cust, err := s.customers.GetByID(ctx, doc.CustomerID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewValidation("cliente no encontrado").
				WithDetail("customerId", doc.CustomerID)
		}
		return err
	}

	if err := s.priceLines(ctx, doc, cust.PriceTier); err != nil {
		return err
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if doc.Number == "" {
			number, err := s.numbers.NextNumber(ctx, numerator.KindInvoice, doc.Date)
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

	logger.Info(ctx, "invoice created",
		"id", doc.ID, "number", doc.Number, "total", doc.Total.String())
	return nil
}

// priceLines fills missing unit prices from the tier price list and
// recalculates line amounts.
func (s *Service) priceLines(ctx context.Context, doc *Invoice, tier int) error {
	for i := range doc.Lines {
		line := &doc.Lines[i]
		if !line.UnitPrice.IsZero() {
			continue
		}

		prod, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewValidation("producto no encontrado").
					WithDetail("productId", line.ProductID).
					WithDetail("lineNo", line.LineNo)
			}
			return err
		}
		line.UnitPrice = prod.PriceForTier(tier)
	}

	for i := range doc.Lines {
		line := &doc.Lines[i]
		line.Amount = roundLineAmount(line.Quantity, line.UnitPrice)
	}
	doc.recalculateTotal()
	return nil
}

// postStock writes the outgoing movements and adjusts cached quantities.
func (s *Service) postStock(ctx context.Context, doc *Invoice) error {
	movements := make([]stock.Movement, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		m := stock.NewMovement(line.ProductID, doc.ID, "Invoice", stock.DirectionOut, line.Quantity, doc.Date)
		movements = append(movements, m)

		if err := s.products.AdjustStock(ctx, line.ProductID, m.SignedQuantity()); err != nil {
			return fmt.Errorf("adjust stock: %w", err)
		}
	}
	if err := s.stock.Insert(ctx, movements); err != nil {
		return fmt.Errorf("insert stock movements: %w", err)
	}
	return nil
}

// GetByID retrieves an invoice with lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Invoice, error) {
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

// GetByNumber retrieves an invoice by document number.
func (s *Service) GetByNumber(ctx context.Context, number string) (*Invoice, error) {
	doc, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, doc.ID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines

	return doc, nil
}

// Update modifies an invoice. Only PENDING invoices can change; once a
// payment touched the invoice its amounts are settled history.
func (s *Service) Update(ctx context.Context, doc *Invoice) error {
	current, err := s.repo.GetByID(ctx, doc.ID)
	if err != nil {
		return err
	}
	if current.Status != StatusPending {
		return apperror.NewBusinessRule(apperror.CodeInvoiceSettled,
			"no se puede modificar una factura con pagos imputados").
			WithDetail("invoice", current.Number).
			WithDetail("status", current.Status)
	}

	cust, err := s.customers.GetByID(ctx, doc.CustomerID)
	if err != nil {
		return err
	}
	if err := s.priceLines(ctx, doc, cust.PriceTier); err != nil {
		return err
	}
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.reverseStock(ctx, current); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return s.postStock(ctx, doc)
	})
}

// reverseStock undoes the cached quantity effect of the stored lines
// and drops the document's movements.
func (s *Service) reverseStock(ctx context.Context, doc *Invoice) error {
	lines, err := s.repo.GetLines(ctx, doc.ID)
	if err != nil {
		return fmt.Errorf("get lines: %w", err)
	}
	for _, line := range lines {
		if err := s.products.AdjustStock(ctx, line.ProductID, line.Quantity); err != nil {
			return fmt.Errorf("adjust stock: %w", err)
		}
	}
	if err := s.stock.DeleteByDocument(ctx, doc.ID); err != nil {
		return fmt.Errorf("delete stock movements: %w", err)
	}
	return nil
}

// Delete removes a PENDING invoice and reverses its stock effect.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	if doc.Status != StatusPending {
		return apperror.NewBusinessRule(apperror.CodeInvoiceSettled,
			"no se puede eliminar una factura con pagos imputados").
			WithDetail("invoice", doc.Number).
			WithDetail("status", doc.Status)
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.reverseStock(ctx, doc); err != nil {
			return err
		}
		return s.repo.Delete(ctx, docID)
	})
}

// List retrieves invoices with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Invoice], error) {
	return s.repo.List(ctx, filter)
}

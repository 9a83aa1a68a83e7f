package payment

import (
	"context"
	"fmt"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/id"
	"ferreo/internal/core/numerator"
	"ferreo/internal/core/tx"
	"ferreo/internal/domain"
	"ferreo/internal/domain/catalogs/customer"
	"ferreo/internal/domain/documents/invoice"
	"ferreo/pkg/amountwords"
	"ferreo/pkg/logger"
)

// Service provides business operations for payment documents.
type Service struct {
	repo      Repository
	invoices  invoice.Repository
	customers customer.Repository
	numbers   numerator.Generator
	txManager tx.Manager
}

// NewService creates a new payment service.
func NewService(
	repo Repository,
	invoices invoice.Repository,
	customers customer.Repository,
	numbers numerator.Generator,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		invoices:  invoices,
		customers: customers,
		numbers:   numbers,
		txManager: txManager,
	}
}

// Apply registers the payment and settles it against the customer's
// open invoices. Everything happens inside one transaction: the open
// invoices are loaded under row locks, the allocator distributes the
// total, the receipt number is minted, and the payment with its
// allocations is persisted together with the updated invoice balances.
func (s *Service) Apply(ctx context.Context, doc *Payment) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	exists, err := s.customers.Exists(ctx, doc.CustomerID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NewValidation("cliente no encontrado").
			WithDetail("customerId", doc.CustomerID)
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		worklist, err := s.buildWorklist(ctx, doc)
		if err != nil {
			return err
		}

		touched, err := Allocate(doc, worklist)
		if err != nil {
			return err
		}

		if doc.Number == "" {
			number, err := s.numbers.NextNumber(ctx, numerator.KindReceipt, doc.Date)
			if err != nil {
				return fmt.Errorf("generate receipt number: %w", err)
			}
			doc.Number = number
		}

		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		if err := s.repo.SaveMethodLines(ctx, doc.ID, doc.MethodLines); err != nil {
			return fmt.Errorf("save method lines: %w", err)
		}
		if err := s.repo.SaveAllocations(ctx, doc.ID, doc.Allocations); err != nil {
			return fmt.Errorf("save allocations: %w", err)
		}

		for _, inv := range touched {
			if err := s.invoices.UpdateAllocation(ctx, inv); err != nil {
				return fmt.Errorf("update invoice %s: %w", inv.Number, err)
			}
		}
		return nil
	})

	if err != nil {
		return err
	}

	logger.Info(ctx, "payment applied",
		"id", doc.ID,
		"receipt", doc.Number,
		"total", doc.Total.String(),
		"applied", doc.AppliedAmount.String(),
		"credit", doc.CreditAmount.String(),
		"invoices", len(doc.Allocations))
	return nil
}

// buildWorklist locks and orders the invoices the allocator will visit.
// Must run inside the Apply transaction.
func (s *Service) buildWorklist(ctx context.Context, doc *Payment) ([]*invoice.Invoice, error) {
	var trigger *invoice.Invoice
	if doc.InvoiceID != nil {
		inv, err := s.invoices.GetForUpdate(ctx, *doc.InvoiceID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return nil, apperror.NewValidation("factura no encontrada").
					WithDetail("invoiceId", *doc.InvoiceID)
			}
			return nil, err
		}
		if inv.CustomerID != doc.CustomerID {
			return nil, apperror.NewValidation("la factura no pertenece al cliente").
				WithDetail("invoiceId", *doc.InvoiceID).
				WithDetail("invoice", inv.Number)
		}
		trigger = inv
	}

	open, err := s.invoices.ListOpenForUpdate(ctx, doc.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("list open invoices: %w", err)
	}

	return BuildWorklist(trigger, open), nil
}

// GetByID retrieves a payment with method lines and allocations.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Payment, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if doc.MethodLines, err = s.repo.GetMethodLines(ctx, docID); err != nil {
		return nil, fmt.Errorf("get method lines: %w", err)
	}
	if doc.Allocations, err = s.repo.GetAllocations(ctx, docID); err != nil {
		return nil, fmt.Errorf("get allocations: %w", err)
	}

	return doc, nil
}

// List retrieves payments with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Payment], error) {
	return s.repo.List(ctx, filter)
}

// CreditBalance returns the customer's accumulated unallocated credit.
func (s *Service) CreditBalance(ctx context.Context, customerID id.ID) (CreditSummary, error) {
	return s.repo.CreditBalance(ctx, customerID)
}

// Receipt is the printable payload for a payment receipt.
type Receipt struct {
	Number        string       `json:"number"`
	Date          string       `json:"date"`
	CustomerName  string       `json:"customerName"`
	Total         string       `json:"total"`
	AmountInWords string       `json:"amountInWords"`
	MethodLines   []MethodLine `json:"methodLines"`
	Allocations   []Allocation `json:"allocations"`
	Credit        string       `json:"credit"`
}

// BuildReceipt assembles the receipt payload for a stored payment,
// spelling the total in Spanish words.
func (s *Service) BuildReceipt(ctx context.Context, docID id.ID) (*Receipt, error) {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	cust, err := s.customers.GetByID(ctx, doc.CustomerID)
	if err != nil {
		return nil, err
	}

	return &Receipt{
		Number:        doc.Number,
		Date:          doc.Date.Format("02/01/2006"),
		CustomerName:  cust.Name,
		Total:         doc.Total.StringFixed(2),
		AmountInWords: amountwords.Pesos(doc.Total),
		MethodLines:   doc.MethodLines,
		Allocations:   doc.Allocations,
		Credit:        doc.CreditAmount.StringFixed(2),
	}, nil
}

package reports

import (
	"context"
	"fmt"

	"ferreo/internal/domain/catalogs/customer"
)

// Service assembles reports from the read repositories.
type Service struct {
	repo      Repository
	customers customer.Repository
}

// NewService creates a new reports service.
func NewService(repo Repository, customers customer.Repository) *Service {
	return &Service{repo: repo, customers: customers}
}

// CustomerStatement builds the account statement for a customer over a
// period, computing the running balance from the opening balance.
func (s *Service) CustomerStatement(ctx context.Context, filter Filter) (*Statement, error) {
	cust, err := s.customers.GetByID(ctx, filter.CustomerID)
	if err != nil {
		return nil, err
	}

	opening, err := s.repo.OpeningBalance(ctx, filter.CustomerID, filter.From)
	if err != nil {
		return nil, fmt.Errorf("opening balance: %w", err)
	}

	entries, err := s.repo.Entries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("statement entries: %w", err)
	}

	balance := opening
	for i := range entries {
		balance = balance.Add(entries[i].Debit).Sub(entries[i].Credit)
		entries[i].Balance = balance
	}

	return &Statement{
		CustomerID:     filter.CustomerID,
		CustomerName:   cust.Name,
		From:           filter.From,
		To:             filter.To,
		OpeningBalance: opening,
		ClosingBalance: balance,
		Entries:        entries,
	}, nil
}

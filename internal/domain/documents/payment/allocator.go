package payment

import (
	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
	"ferreo/internal/domain/documents/invoice"
)

// BuildWorklist orders the invoices a payment will settle against.
// The triggering invoice goes first when it still carries a balance;
// the remaining open invoices follow in the order given by the caller,
// expected to be date ascending. Duplicates and settled invoices are
// dropped.
func BuildWorklist(trigger *invoice.Invoice, open []*invoice.Invoice) []*invoice.Invoice {
	worklist := make([]*invoice.Invoice, 0, len(open)+1)
	seen := make(map[id.ID]bool, len(open)+1)

	if trigger != nil && trigger.IsOpen() {
		worklist = append(worklist, trigger)
		seen[trigger.ID] = true
	}

	for _, inv := range open {
		if seen[inv.ID] || !inv.IsOpen() {
			continue
		}
		worklist = append(worklist, inv)
		seen[inv.ID] = true
	}

	return worklist
}

// Allocate distributes the payment total across the worklist in order,
// applying min(remaining, balance) to each invoice until the money runs
// out. Touched invoices get their paid amount and status updated in
// place; the payment's allocations, applied amount and credit amount
// are filled in. The leftover stays as customer credit.
//
// Returns the invoices whose state changed so the caller can persist
// exactly those rows.
func Allocate(p *Payment, worklist []*invoice.Invoice) ([]*invoice.Invoice, error) {
	remaining := p.Total
	p.Allocations = p.Allocations[:0]
	touched := make([]*invoice.Invoice, 0, len(worklist))

	for _, inv := range worklist {
		if !remaining.IsPositive() {
			break
		}

		apply := types.MinMoney(remaining, inv.Balance())
		if !apply.IsPositive() {
			continue
		}

		if err := inv.ApplyAmount(apply); err != nil {
			return nil, err
		}

		p.Allocations = append(p.Allocations, Allocation{
			ID:            id.New(),
			InvoiceID:     inv.ID,
			InvoiceNumber: inv.Number,
			Amount:        apply,
		})
		touched = append(touched, inv)
		remaining = remaining.Sub(apply)
	}

	p.AppliedAmount = p.Total.Sub(remaining)
	p.CreditAmount = remaining

	return touched, nil
}

// Package reports provides read-only reporting services.
package reports

import (
	"context"
	"time"

	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
)

// Entry types in a customer statement.
const (
	EntryInvoice = "INVOICE"
	EntryPayment = "PAYMENT"
)

// StatementEntry is one row of the customer statement: invoices debit
// the account, payments credit it.
type StatementEntry struct {
	Date     time.Time   `db:"date" json:"date"`
	Type     string      `db:"type" json:"type"`
	Number   string      `db:"number" json:"number"`
	Debit    types.Money `db:"debit" json:"debit"`
	Credit   types.Money `db:"credit" json:"credit"`
	Balance  types.Money `db:"-" json:"balance"`
	Comment  *string     `db:"comment" json:"comment,omitempty"`
	EntityID id.ID       `db:"entity_id" json:"entityId"`
}

// Statement is the customer account statement over a period.
type Statement struct {
	CustomerID     id.ID            `json:"customerId"`
	CustomerName   string           `json:"customerName"`
	From           time.Time        `json:"from"`
	To             time.Time        `json:"to"`
	OpeningBalance types.Money      `json:"openingBalance"`
	ClosingBalance types.Money      `json:"closingBalance"`
	Entries        []StatementEntry `json:"entries"`
}

// Filter selects the statement period.
type Filter struct {
	CustomerID id.ID
	From       time.Time
	To         time.Time
}

// Repository reads the raw statement data. Implementations union the
// invoice and payment tables ordered by date.
type Repository interface {
	// OpeningBalance returns debits minus credits strictly before from.
	OpeningBalance(ctx context.Context, customerID id.ID, from time.Time) (types.Money, error)

	// Entries returns the period's rows ordered by date ascending,
	// with Balance left unset.
	Entries(ctx context.Context, filter Filter) ([]StatementEntry, error)
}

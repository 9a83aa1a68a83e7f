// Package report_repo provides read-only PostgreSQL queries for reports.
package report_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
	"ferreo/internal/domain/reports"
	"ferreo/internal/infrastructure/storage/postgres"
)

// StatementRepo implements reports.Repository over the invoice and
// payment document tables.
type StatementRepo struct {
	txm *postgres.TxManager
}

// NewStatementRepo creates a new statement repository.
func NewStatementRepo(txm *postgres.TxManager) *StatementRepo {
	return &StatementRepo{txm: txm}
}

const openingBalanceQuery = `
SELECT COALESCE((
    SELECT SUM(total) FROM doc_invoices
    WHERE customer_id = $1 AND deletion_mark = false AND date < $2
), 0) - COALESCE((
    SELECT SUM(total) FROM doc_payments
    WHERE customer_id = $1 AND deletion_mark = false AND date < $2
), 0)`

func (r *StatementRepo) OpeningBalance(ctx context.Context, customerID id.ID, from time.Time) (types.Money, error) {
	var balance types.Money
	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, openingBalanceQuery, customerID, from).Scan(&balance); err != nil {
		return types.Zero(), fmt.Errorf("opening balance: %w", err)
	}
	return balance, nil
}

const entriesQuery = `
SELECT date, 'INVOICE' AS type, number, total AS debit, 0 AS credit, comment, id AS entity_id
FROM doc_invoices
WHERE customer_id = $1 AND deletion_mark = false AND date >= $2 AND date <= $3
UNION ALL
SELECT date, 'PAYMENT' AS type, number, 0 AS debit, total AS credit, comment, id AS entity_id
FROM doc_payments
WHERE customer_id = $1 AND deletion_mark = false AND date >= $2 AND date <= $3
ORDER BY date ASC, type ASC, number ASC`

func (r *StatementRepo) Entries(ctx context.Context, filter reports.Filter) ([]reports.StatementEntry, error) {
	var entries []reports.StatementEntry
	err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &entries, entriesQuery,
		filter.CustomerID, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("statement entries: %w", err)
	}
	return entries, nil
}

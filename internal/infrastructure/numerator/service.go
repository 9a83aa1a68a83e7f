// Package numerator provides the PostgreSQL implementation of document
// and catalog-code numbering.
package numerator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	corenumerator "ferreo/internal/core/numerator"
)

// Querier is the database subset the numerator needs. The TxManager's
// GetQuerier satisfies it, so numbers mint inside the caller's transaction.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// QuerierProvider yields the querier for a context. Wired with
// TxManager.GetQuerier.
type QuerierProvider func(ctx context.Context) Querier

// Service mints document numbers and catalog codes from atomic counter
// rows in doc_sequences.
type Service struct {
	querier QuerierProvider
}

var (
	_ corenumerator.Generator     = (*Service)(nil)
	_ corenumerator.CodeGenerator = (*Service)(nil)
)

// New creates a numerator service.
func New(querier QuerierProvider) *Service {
	return &Service{querier: querier}
}

const bumpSequenceQuery = `
UPDATE doc_sequences SET last_seq = last_seq + 1
WHERE kind = $1 AND period = $2
RETURNING last_seq`

const seedSequenceQuery = `
INSERT INTO doc_sequences (kind, period, last_seq)
VALUES ($1, $2, $3)
ON CONFLICT (kind, period) DO UPDATE SET last_seq = doc_sequences.last_seq + 1
RETURNING last_seq`

// lastNumberQuery scans the kind's document table for the highest number
// already issued in the scope. The prefix match and the date range must
// agree; a number that satisfies only one of them is not part of the scope.
const lastNumberQuery = `
SELECT COALESCE(MAX(number), '') FROM %s
WHERE number LIKE $1 AND date BETWEEN $2 AND $3`

// numberTables maps each document kind to the table its numbers live in.
var numberTables = map[corenumerator.Kind]string{
	corenumerator.KindInvoice: "doc_invoices",
	corenumerator.KindReceipt: "doc_payments",
}

// NextNumber returns the next number for the kind in the month of
// referenceDate. The counter row is scoped by (kind, month); the row lock
// is held until the surrounding transaction ends, so concurrent documents
// of the same scope serialize on it. The first call in a scope seeds the
// counter from numbers already present in the document table, so numbering
// continues a series that predates the counter row.
func (s *Service) NextNumber(ctx context.Context, kind corenumerator.Kind, referenceDate time.Time) (string, error) {
	period := corenumerator.PeriodKey(referenceDate)
	q := s.querier(ctx)

	var seq int64
	err := q.QueryRow(ctx, bumpSequenceQuery, string(kind), period).Scan(&seq)
	switch {
	case err == nil:
		return corenumerator.Format(kind, referenceDate, seq), nil
	case !errors.Is(err, pgx.ErrNoRows):
		return "", fmt.Errorf("next number %s %s: %w", kind, period, err)
	}

	seed, err := s.seedSequence(ctx, q, kind, referenceDate)
	if err != nil {
		return "", fmt.Errorf("next number %s %s: %w", kind, period, err)
	}

	// A concurrent first caller may have inserted the row since the bump
	// missed; the conflict branch then increments whatever it seeded.
	err = q.QueryRow(ctx, seedSequenceQuery, string(kind), period, seed+1).Scan(&seq)
	if err != nil {
		return "", fmt.Errorf("next number %s %s: %w", kind, period, err)
	}

	return corenumerator.Format(kind, referenceDate, seq), nil
}

func (s *Service) seedSequence(ctx context.Context, q Querier, kind corenumerator.Kind, referenceDate time.Time) (int64, error) {
	table, ok := numberTables[kind]
	if !ok {
		return 0, fmt.Errorf("no document table for kind %q", kind)
	}

	prefix := corenumerator.MonthPrefix(kind, referenceDate)
	from, to := corenumerator.MonthRange(referenceDate)

	var last string
	query := fmt.Sprintf(lastNumberQuery, table)
	if err := q.QueryRow(ctx, query, prefix+"%", from, to).Scan(&last); err != nil {
		return 0, fmt.Errorf("seed from %s: %w", table, err)
	}
	if last == "" {
		return 0, nil
	}

	if seed := corenumerator.ParseSequence(kind, referenceDate, last); seed > 0 {
		return seed, nil
	}
	return 0, nil
}

const nextCodeQuery = `
INSERT INTO doc_sequences (kind, period, last_seq)
VALUES ($1, $2, 1)
ON CONFLICT (kind, period) DO UPDATE SET last_seq = doc_sequences.last_seq + 1
RETURNING last_seq`

// Catalog codes use the same counter table with a fixed pseudo-period, so
// one unique index covers both scopes. Codes never predate their counter
// row, so there is no seed scan.
const codePeriod = "-"

// NextCode returns the next catalog code for the prefix ("CLI-00042").
func (s *Service) NextCode(ctx context.Context, prefix string) (string, error) {
	var seq int64
	err := s.querier(ctx).QueryRow(ctx, nextCodeQuery, prefix, codePeriod).Scan(&seq)
	if err != nil {
		return "", fmt.Errorf("next code %s: %w", prefix, err)
	}

	return fmt.Sprintf("%s-%05d", prefix, seq), nil
}

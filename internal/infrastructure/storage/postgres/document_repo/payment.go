package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
	"ferreo/internal/domain"
	"ferreo/internal/domain/documents/payment"
	"ferreo/internal/infrastructure/storage/postgres"
)

const (
	paymentsTable           = "doc_payments"
	paymentMethodLinesTable = "doc_payment_method_lines"
	paymentAllocationsTable = "doc_payment_allocations"
)

// PaymentRepo implements payment.Repository.
type PaymentRepo struct {
	*BaseDocumentRepo[*payment.Payment]
}

// NewPaymentRepo creates a new payment repository.
func NewPaymentRepo(txm *postgres.TxManager) *PaymentRepo {
	return &PaymentRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*payment.Payment](
			txm,
			paymentsTable,
			postgres.ExtractDBColumns[payment.Payment](),
			func() *payment.Payment { return &payment.Payment{} },
		),
	}
}

func (r *PaymentRepo) GetMethodLines(ctx context.Context, docID id.ID) ([]payment.MethodLine, error) {
	sql, args, err := r.Builder().
		Select("line_id", "line_no", "method", "amount", "reference").
		From(paymentMethodLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []payment.MethodLine
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get method lines: %w", err)
	}

	return lines, nil
}

func (r *PaymentRepo) SaveMethodLines(ctx context.Context, docID id.ID, lines []payment.MethodLine) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + paymentMethodLinesTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing method lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(paymentMethodLinesTable).
		Columns("line_id", "document_id", "line_no", "method", "amount", "reference")

	for _, line := range lines {
		q = q.Values(line.LineID, docID, line.LineNo, line.Method, line.Amount, line.Reference)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert method lines: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert method lines: %w", err)
	}

	return nil
}

func (r *PaymentRepo) GetAllocations(ctx context.Context, docID id.ID) ([]payment.Allocation, error) {
	sql, args, err := r.Builder().
		Select("id", "invoice_id", "invoice_number", "amount").
		From(paymentAllocationsTable).
		Where(squirrel.Eq{"payment_id": docID}).
		OrderBy("invoice_number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var allocations []payment.Allocation
	if err := pgxscan.Select(ctx, r.Querier(ctx), &allocations, sql, args...); err != nil {
		return nil, fmt.Errorf("get allocations: %w", err)
	}

	return allocations, nil
}

func (r *PaymentRepo) SaveAllocations(ctx context.Context, docID id.ID, allocations []payment.Allocation) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + paymentAllocationsTable + " WHERE payment_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing allocations: %w", err)
	}

	if len(allocations) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(paymentAllocationsTable).
		Columns("id", "payment_id", "invoice_id", "invoice_number", "amount")

	for _, a := range allocations {
		q = q.Values(a.ID, docID, a.InvoiceID, a.InvoiceNumber, a.Amount)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert allocations: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert allocations: %w", err)
	}

	return nil
}

// CreditBalance sums the customer's unallocated payment remainders.
func (r *PaymentRepo) CreditBalance(ctx context.Context, customerID id.ID) (payment.CreditSummary, error) {
	summary := payment.CreditSummary{CustomerID: customerID, Credit: types.Zero()}

	sql, args, err := r.Builder().
		Select("COALESCE(SUM(credit_amount), 0)").
		From(paymentsTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		ToSql()
	if err != nil {
		return summary, fmt.Errorf("build query: %w", err)
	}

	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&summary.Credit); err != nil {
		return summary, fmt.Errorf("credit balance: %w", err)
	}

	return summary, nil
}

func (r *PaymentRepo) List(ctx context.Context, filter payment.ListFilter) (domain.ListResult[*payment.Payment], error) {
	q := r.baseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}
	if filter.CustomerID != nil {
		q = q.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"date": *filter.DateTo})
	}
	if filter.Search != "" {
		q = q.Where(squirrel.ILike{"number": "%" + filter.Search + "%"})
	}

	return r.listWithQuery(ctx, q, filter.ListFilter)
}

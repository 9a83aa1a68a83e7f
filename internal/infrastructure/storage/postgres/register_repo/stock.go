// Package register_repo provides PostgreSQL storage for ledger-style
// registers written alongside documents.
package register_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"ferreo/internal/core/id"
	"ferreo/internal/domain"
	"ferreo/internal/domain/stock"
	"ferreo/internal/infrastructure/storage/postgres"
)

const stockMovementsTable = "stock_movements"

// StockRepo implements stock.Repository.
type StockRepo struct {
	txm *postgres.TxManager
}

// NewStockRepo creates a new stock movement repository.
func NewStockRepo(txm *postgres.TxManager) *StockRepo {
	return &StockRepo{txm: txm}
}

func (r *StockRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *StockRepo) Insert(ctx context.Context, movements []stock.Movement) error {
	if len(movements) == 0 {
		return nil
	}

	q := r.builder().
		Insert(stockMovementsTable).
		Columns("id", "product_id", "document_id", "document_type", "direction", "quantity", "date", "created_at")

	for _, m := range movements {
		q = q.Values(m.ID, m.ProductID, m.DocumentID, m.DocumentType, m.Direction, m.Quantity, m.Date, m.CreatedAt)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert stock movements: %w", err)
	}

	return nil
}

func (r *StockRepo) DeleteByDocument(ctx context.Context, documentID id.ID) error {
	sql, args, err := r.builder().
		Delete(stockMovementsTable).
		Where(squirrel.Eq{"document_id": documentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete stock movements: %w", err)
	}

	return nil
}

func (r *StockRepo) ListByProduct(ctx context.Context, productID id.ID, filter domain.ListFilter) (domain.ListResult[stock.Movement], error) {
	result := domain.ListResult[stock.Movement]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.builder().
		Select("id", "product_id", "document_id", "document_type", "direction", "quantity", "date", "created_at").
		From(stockMovementsTable).
		Where(squirrel.Eq{"product_id": productID})

	countSQL, countArgs, err := r.builder().
		Select("COUNT(*)").
		FromSelect(q, "sub").
		ToSql()
	if err != nil {
		return result, fmt.Errorf("build count: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	q = q.OrderBy("date DESC", "created_at DESC")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("select: %w", err)
	}

	return result, nil
}

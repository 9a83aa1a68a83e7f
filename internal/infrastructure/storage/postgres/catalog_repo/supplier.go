package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"ferreo/internal/core/apperror"
	"ferreo/internal/domain/catalogs/supplier"
	"ferreo/internal/infrastructure/storage/postgres"
)

const supplierTable = "cat_suppliers"

// SupplierRepo implements supplier.Repository.
type SupplierRepo struct {
	*BaseCatalogRepo[*supplier.Supplier]
}

// NewSupplierRepo creates a new supplier repository.
func NewSupplierRepo(txm *postgres.TxManager) *SupplierRepo {
	return &SupplierRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*supplier.Supplier](
			txm,
			supplierTable,
			postgres.ExtractDBColumns[supplier.Supplier](),
			func() *supplier.Supplier { return &supplier.Supplier{} },
		),
	}
}

// GetByTaxID retrieves a supplier by fiscal identifier. Marked suppliers
// are excluded; the partial unique index guarantees at most one match.
func (r *SupplierRepo) GetByTaxID(ctx context.Context, taxID string) (*supplier.Supplier, error) {
	sp := &supplier.Supplier{}

	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"tax_id": taxID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1).
		ToSql()
	if err != nil {
		return sp, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), sp, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return sp, apperror.NewNotFound(supplierTable, taxID)
		}
		return sp, fmt.Errorf("get by tax id: %w", err)
	}

	return sp, nil
}

package invoice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
)

// fakeInvoiceRepo serves a single document; the embedded interface
// covers the methods the guard never reaches.
type fakeInvoiceRepo struct {
	Repository
	doc *Invoice
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, docID id.ID) (*Invoice, error) {
	if f.doc == nil || f.doc.ID != docID {
		return nil, apperror.NewNotFound("doc_invoices", docID.String())
	}
	return f.doc, nil
}

func TestDelete_RejectsInvoiceWithAllocations(t *testing.T) {
	ctx := context.Background()

	partial := testInvoice(t, [2]string{"1", "1000"})
	require.NoError(t, partial.ApplyAmount(types.MustMoney("400")))
	require.Equal(t, StatusPartial, partial.Status)

	paid := testInvoice(t, [2]string{"1", "500"})
	require.NoError(t, paid.ApplyAmount(types.MustMoney("500")))
	require.Equal(t, StatusPaid, paid.Status)

	for _, doc := range []*Invoice{partial, paid} {
		svc := NewService(&fakeInvoiceRepo{doc: doc}, nil, nil, nil, nil, nil)

		err := svc.Delete(ctx, doc.ID)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeInvoiceSettled, appErr.Code)
	}
}

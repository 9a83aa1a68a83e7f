package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
)

func testInvoice(t *testing.T, lines ...[2]string) *Invoice {
	t.Helper()
	inv := NewInvoice(id.New())
	inv.Number = "554000001"
	inv.Date = time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	for _, line := range lines {
		inv.AddLine(id.New(), types.MustMoney(line[0]), types.MustMoney(line[1]))
	}
	return inv
}

func TestAddLine_TotalsAndRounding(t *testing.T) {
	inv := testInvoice(t, [2]string{"3", "33.335"}, [2]string{"2", "10"})

	require.Len(t, inv.Lines, 2)
	assert.Equal(t, 1, inv.Lines[0].LineNo)
	assert.Equal(t, 2, inv.Lines[1].LineNo)

	// 3 * 33.335 = 100.005, rounded half up to cents.
	assert.Equal(t, "100.01", inv.Lines[0].Amount.String())
	assert.Equal(t, "20", inv.Lines[1].Amount.String())
	assert.Equal(t, "120.01", inv.Total.String())
}

func TestApplyAmount_StatusTransitions(t *testing.T) {
	inv := testInvoice(t, [2]string{"1", "1000"})

	assert.Equal(t, StatusPending, inv.Status)
	assert.True(t, inv.IsOpen())
	assert.Equal(t, "1000", inv.Balance().String())

	require.NoError(t, inv.ApplyAmount(types.MustMoney("400")))
	assert.Equal(t, StatusPartial, inv.Status)
	assert.Equal(t, "600", inv.Balance().String())
	assert.True(t, inv.IsOpen())

	require.NoError(t, inv.ApplyAmount(types.MustMoney("600")))
	assert.Equal(t, StatusPaid, inv.Status)
	assert.True(t, inv.Balance().IsZero())
	assert.False(t, inv.IsOpen())
}

func TestApplyAmount_ZeroKeepsPendingStatus(t *testing.T) {
	inv := testInvoice(t, [2]string{"1", "100"})

	require.NoError(t, inv.ApplyAmount(types.Zero()))
	assert.Equal(t, StatusPending, inv.Status)
}

func TestApplyAmount_RejectsOverpayment(t *testing.T) {
	inv := testInvoice(t, [2]string{"1", "100"})

	err := inv.ApplyAmount(types.MustMoney("100.01"))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvoiceSettled, appErr.Code)

	// Nothing changed on failure.
	assert.Equal(t, StatusPending, inv.Status)
	assert.Equal(t, "100", inv.Balance().String())
}

func TestApplyAmount_RejectsNegative(t *testing.T) {
	inv := testInvoice(t, [2]string{"1", "100"})

	err := inv.ApplyAmount(types.MustMoney("-1"))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		inv := testInvoice(t, [2]string{"2", "50"})
		assert.NoError(t, inv.Validate(ctx))
	})

	t.Run("missing customer", func(t *testing.T) {
		inv := testInvoice(t, [2]string{"2", "50"})
		inv.CustomerID = id.Nil()
		assert.Error(t, inv.Validate(ctx))
	})

	t.Run("no lines", func(t *testing.T) {
		inv := testInvoice(t)
		assert.Error(t, inv.Validate(ctx))
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		inv := testInvoice(t)
		inv.Lines = append(inv.Lines, Line{
			LineID:    id.New(),
			LineNo:    1,
			ProductID: id.New(),
			Quantity:  types.Zero(),
			UnitPrice: types.MustMoney("10"),
		})
		assert.Error(t, inv.Validate(ctx))
	})

	t.Run("negative price", func(t *testing.T) {
		inv := testInvoice(t)
		inv.AddLine(id.New(), types.MustMoney("1"), types.MustMoney("-5"))
		assert.Error(t, inv.Validate(ctx))
	})
}

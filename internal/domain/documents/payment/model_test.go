package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
)

func stringPtr(s string) *string { return &s }

func TestAddMethodLine_SumsTotal(t *testing.T) {
	p := NewPayment(id.New())
	p.Date = time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)

	p.AddMethodLine(MethodCash, types.MustMoney("500"), nil)
	p.AddMethodLine(MethodTransfer, types.MustMoney("700.50"), stringPtr("OP-1234"))

	require.Len(t, p.MethodLines, 2)
	assert.Equal(t, 1, p.MethodLines[0].LineNo)
	assert.Equal(t, 2, p.MethodLines[1].LineNo)
	assert.Equal(t, "1200.5", p.Total.String())
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	valid := func() *Payment {
		p := NewPayment(id.New())
		p.Date = time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)
		p.AddMethodLine(MethodCash, types.MustMoney("100"), nil)
		return p
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate(ctx))
	})

	t.Run("missing customer", func(t *testing.T) {
		p := valid()
		p.CustomerID = id.Nil()
		assert.Error(t, p.Validate(ctx))
	})

	t.Run("no method lines", func(t *testing.T) {
		p := NewPayment(id.New())
		p.Date = time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)
		assert.Error(t, p.Validate(ctx))
	})

	t.Run("unknown method", func(t *testing.T) {
		p := valid()
		p.AddMethodLine("bitcoin", types.MustMoney("10"), nil)
		assert.Error(t, p.Validate(ctx))
	})

	t.Run("non-positive line amount", func(t *testing.T) {
		p := valid()
		p.AddMethodLine(MethodCard, types.Zero(), nil)
		assert.Error(t, p.Validate(ctx))
	})
}

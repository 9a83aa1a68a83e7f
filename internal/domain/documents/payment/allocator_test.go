package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferreo/internal/core/id"
	"ferreo/internal/core/types"
	"ferreo/internal/domain/documents/invoice"
)

func openInvoice(t *testing.T, number string, date time.Time, total string) *invoice.Invoice {
	t.Helper()
	inv := invoice.NewInvoice(id.New())
	inv.Number = number
	inv.Date = date
	inv.AddLine(id.New(), types.MustMoney("1"), types.MustMoney(total))
	require.True(t, inv.IsOpen())
	return inv
}

func paymentOf(amount string) *Payment {
	p := NewPayment(id.New())
	p.Date = time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC)
	p.AddMethodLine(MethodCash, types.MustMoney(amount), nil)
	return p
}

func TestAllocate_TriggeredInvoiceSettlesFirst(t *testing.T) {
	inv1 := openInvoice(t, "554000001", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "1000")
	inv2 := openInvoice(t, "554000002", time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), "500")

	p := paymentOf("1200")
	worklist := BuildWorklist(inv2, []*invoice.Invoice{inv1, inv2})

	touched, err := Allocate(p, worklist)
	require.NoError(t, err)
	require.Len(t, touched, 2)

	// inv2 triggered the payment, so it settles first and fully.
	assert.Equal(t, invoice.StatusPaid, inv2.Status)
	assert.True(t, inv2.Balance().IsZero())

	// inv1 absorbs the remaining 700, leaving 300 unpaid.
	assert.Equal(t, invoice.StatusPartial, inv1.Status)
	assert.Equal(t, "300", inv1.Balance().String())

	assert.Equal(t, "1200", p.AppliedAmount.String())
	assert.True(t, p.CreditAmount.IsZero())

	require.Len(t, p.Allocations, 2)
	assert.Equal(t, "554000002", p.Allocations[0].InvoiceNumber)
	assert.Equal(t, "500", p.Allocations[0].Amount.String())
	assert.Equal(t, "554000001", p.Allocations[1].InvoiceNumber)
	assert.Equal(t, "700", p.Allocations[1].Amount.String())
}

func TestAllocate_SurplusBecomesCredit(t *testing.T) {
	inv1 := openInvoice(t, "554000001", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "1000")
	inv2 := openInvoice(t, "554000002", time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), "500")

	p := paymentOf("2000")
	worklist := BuildWorklist(nil, []*invoice.Invoice{inv1, inv2})

	touched, err := Allocate(p, worklist)
	require.NoError(t, err)
	require.Len(t, touched, 2)

	assert.Equal(t, invoice.StatusPaid, inv1.Status)
	assert.Equal(t, invoice.StatusPaid, inv2.Status)
	assert.Equal(t, "1500", p.AppliedAmount.String())
	assert.Equal(t, "500", p.CreditAmount.String())
}

func TestAllocate_PartialPaymentOnSingleInvoice(t *testing.T) {
	inv := openInvoice(t, "554000001", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "1000")

	p := paymentOf("400")
	touched, err := Allocate(p, BuildWorklist(inv, nil))
	require.NoError(t, err)
	require.Len(t, touched, 1)

	assert.Equal(t, invoice.StatusPartial, inv.Status)
	assert.Equal(t, "600", inv.Balance().String())
	assert.Equal(t, "400", p.AppliedAmount.String())
	assert.True(t, p.CreditAmount.IsZero())
}

func TestAllocate_NoOpenInvoicesMeansAllCredit(t *testing.T) {
	p := paymentOf("250.50")

	touched, err := Allocate(p, BuildWorklist(nil, nil))
	require.NoError(t, err)
	assert.Empty(t, touched)
	assert.Empty(t, p.Allocations)
	assert.True(t, p.AppliedAmount.IsZero())
	assert.Equal(t, "250.5", p.CreditAmount.String())
}

func TestAllocate_CentPrecision(t *testing.T) {
	inv := openInvoice(t, "554000001", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "100.05")

	p := paymentOf("100.05")
	_, err := Allocate(p, BuildWorklist(inv, nil))
	require.NoError(t, err)

	assert.Equal(t, invoice.StatusPaid, inv.Status)
	assert.True(t, inv.Balance().IsZero())
	assert.True(t, p.CreditAmount.IsZero())
}

func TestBuildWorklist_DeduplicatesTrigger(t *testing.T) {
	inv1 := openInvoice(t, "554000001", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "1000")
	inv2 := openInvoice(t, "554000002", time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), "500")

	worklist := BuildWorklist(inv2, []*invoice.Invoice{inv1, inv2})

	require.Len(t, worklist, 2)
	assert.Equal(t, inv2.ID, worklist[0].ID)
	assert.Equal(t, inv1.ID, worklist[1].ID)
}

func TestBuildWorklist_SkipsSettledInvoices(t *testing.T) {
	paid := openInvoice(t, "554000001", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "100")
	require.NoError(t, paid.ApplyAmount(types.MustMoney("100")))

	open := openInvoice(t, "554000002", time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), "500")

	worklist := BuildWorklist(paid, []*invoice.Invoice{paid, open})

	require.Len(t, worklist, 1)
	assert.Equal(t, open.ID, worklist[0].ID)
}

func TestBuildWorklist_PreservesDateOrder(t *testing.T) {
	jan := openInvoice(t, "554000001", time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), "100")
	feb := openInvoice(t, "554000001", time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC), "100")
	mar := openInvoice(t, "555000001", time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), "100")

	worklist := BuildWorklist(nil, []*invoice.Invoice{jan, feb, mar})

	require.Len(t, worklist, 3)
	assert.Equal(t, jan.ID, worklist[0].ID)
	assert.Equal(t, feb.ID, worklist[1].ID)
	assert.Equal(t, mar.ID, worklist[2].ID)
}

func TestPaymentValidate_RejectsEmptyMethodLines(t *testing.T) {
	p := NewPayment(id.New())
	p.Date = time.Now()

	err := p.Validate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no hay líneas de pago válidas")
}

func TestPaymentValidate_RejectsUnknownMethod(t *testing.T) {
	p := NewPayment(id.New())
	p.Date = time.Now()
	p.AddMethodLine("BARTER", types.MustMoney("100"), nil)

	err := p.Validate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "medio de pago inválido")
}

func TestPaymentValidate_RejectsNonPositiveAmount(t *testing.T) {
	p := NewPayment(id.New())
	p.Date = time.Now()
	p.AddMethodLine(MethodCash, types.Zero(), nil)

	err := p.Validate(context.Background())
	require.Error(t, err)
}

func TestPaymentTotal_SumsMethodLines(t *testing.T) {
	p := NewPayment(id.New())
	p.AddMethodLine(MethodCash, types.MustMoney("100.50"), nil)
	ref := "OP-12345"
	p.AddMethodLine(MethodTransfer, types.MustMoney("899.50"), &ref)

	assert.Equal(t, "1000", p.Total.String())
}

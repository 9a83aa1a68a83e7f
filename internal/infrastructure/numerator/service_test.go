package numerator

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	corenumerator "ferreo/internal/core/numerator"
)

type fakeRow struct {
	val any
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	switch v := r.val.(type) {
	case int64:
		*(dest[0].(*int64)) = v
	case string:
		*(dest[0].(*string)) = v
	}
	return nil
}

// fakeQuerier models the counter table: the bump misses until a row
// exists, the upsert seeds or increments, and the seed scan answers with
// a canned highest issued number.
type fakeQuerier struct {
	counters   map[string]int64
	lastNumber string
	scanArgs   []any
}

func newFakeQuerier() *fakeQuerier {
	return &fakeQuerier{counters: map[string]int64{}}
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	switch {
	case strings.HasPrefix(strings.TrimSpace(sql), "UPDATE"):
		key := args[0].(string) + "|" + args[1].(string)
		if _, ok := q.counters[key]; !ok {
			return fakeRow{err: pgx.ErrNoRows}
		}
		q.counters[key]++
		return fakeRow{val: q.counters[key]}

	case strings.HasPrefix(strings.TrimSpace(sql), "SELECT"):
		q.scanArgs = args
		return fakeRow{val: q.lastNumber}

	default: // upsert
		key := args[0].(string) + "|" + args[1].(string)
		if _, ok := q.counters[key]; ok {
			q.counters[key]++
		} else if len(args) == 3 {
			q.counters[key] = args[2].(int64)
		} else {
			q.counters[key] = 1
		}
		return fakeRow{val: q.counters[key]}
	}
}

func newTestService(q *fakeQuerier) *Service {
	return New(func(ctx context.Context) Querier { return q })
}

func TestNextNumber_FormatsMonthlySequence(t *testing.T) {
	ctx := context.Background()
	q := newFakeQuerier()
	svc := newTestService(q)

	date := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

	number, err := svc.NextNumber(ctx, corenumerator.KindInvoice, date)
	require.NoError(t, err)
	assert.Equal(t, "554000001", number)

	number, err = svc.NextNumber(ctx, corenumerator.KindInvoice, date)
	require.NoError(t, err)
	assert.Equal(t, "554000002", number)
}

func TestNextNumber_ReceiptPrefix(t *testing.T) {
	ctx := context.Background()
	q := newFakeQuerier()
	svc := newTestService(q)

	date := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	number, err := svc.NextNumber(ctx, corenumerator.KindReceipt, date)
	require.NoError(t, err)
	assert.Equal(t, "R555000001", number)
}

func TestNextNumber_SeedsFromIssuedNumbers(t *testing.T) {
	ctx := context.Background()
	q := newFakeQuerier()
	q.lastNumber = "554000037"
	svc := newTestService(q)

	date := time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC)

	number, err := svc.NextNumber(ctx, corenumerator.KindInvoice, date)
	require.NoError(t, err)
	assert.Equal(t, "554000038", number)

	// Once seeded the counter row carries the series on its own.
	number, err = svc.NextNumber(ctx, corenumerator.KindInvoice, date)
	require.NoError(t, err)
	assert.Equal(t, "554000039", number)
}

func TestNextNumber_SeedScanFiltersByPrefixAndMonth(t *testing.T) {
	ctx := context.Background()
	q := newFakeQuerier()
	svc := newTestService(q)

	date := time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)

	_, err := svc.NextNumber(ctx, corenumerator.KindReceipt, date)
	require.NoError(t, err)

	require.Len(t, q.scanArgs, 3)
	assert.Equal(t, "R555%", q.scanArgs[0])
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), q.scanArgs[1])
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), q.scanArgs[2])
}

func TestNextNumber_IgnoresForeignLastNumber(t *testing.T) {
	ctx := context.Background()
	q := newFakeQuerier()
	q.lastNumber = "garbage"
	svc := newTestService(q)

	date := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	number, err := svc.NextNumber(ctx, corenumerator.KindInvoice, date)
	require.NoError(t, err)
	assert.Equal(t, "554000001", number)
}

func TestNextCode_PrefixedCounter(t *testing.T) {
	ctx := context.Background()
	q := newFakeQuerier()
	svc := newTestService(q)

	code, err := svc.NextCode(ctx, "CLI")
	require.NoError(t, err)
	assert.Equal(t, "CLI-00001", code)

	code, err = svc.NextCode(ctx, "CLI")
	require.NoError(t, err)
	assert.Equal(t, "CLI-00002", code)

	code, err = svc.NextCode(ctx, "ART")
	require.NoError(t, err)
	assert.Equal(t, "ART-00001", code)
}

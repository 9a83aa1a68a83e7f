// Package numerator provides domain contracts for document auto-numbering.
//
// Numbers are scoped to a calendar month through a derived numeric prefix:
// the prefix increases by exactly one every month, so lexicographic and
// numeric comparisons of prefixes agree. Within a month the sequence is
// strictly increasing. Implementations live in the infrastructure layer.
package numerator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the document series a number belongs to.
type Kind string

const (
	// KindInvoice numbers sales invoices (bare numeric monthly prefix).
	KindInvoice Kind = "invoice"
	// KindReceipt numbers payment receipts ("R" + numeric monthly prefix).
	KindReceipt Kind = "receipt"
)

// SequenceWidth is the zero-padded width of the per-month sequence.
const SequenceWidth = 6

// epochYear anchors the monthly prefix; month prefixes count months
// elapsed since January of this year, offset by one.
const epochYear = 1980

// Generator mints sequential document numbers.
//
// Implementations must guarantee that numbers within one (kind, month)
// scope are unique and strictly increasing even under concurrent calls;
// the PostgreSQL implementation uses an atomic counter row per scope.
type Generator interface {
	// NextNumber returns the next number for the kind in the month of
	// referenceDate. It participates in any transaction carried by ctx.
	NextNumber(ctx context.Context, kind Kind, referenceDate time.Time) (string, error)
}

// CodeGenerator mints sequential catalog codes ("CLI-00042"). Unlike
// document numbers, codes have no monthly scope; the counter is keyed by
// prefix alone.
type CodeGenerator interface {
	NextCode(ctx context.Context, prefix string) (string, error)
}

// MonthPrefix derives the numbering prefix for the month of t:
// (year-1980)*12 + month + 1, rendered in decimal with no leading zeros.
// Receipts prepend a literal "R".
func MonthPrefix(kind Kind, t time.Time) string {
	n := (t.Year()-epochYear)*12 + int(t.Month()) + 1
	p := strconv.Itoa(n)
	if kind == KindReceipt {
		return "R" + p
	}
	return p
}

// PeriodKey returns the counter-scope key for the month of t ("2026-08").
func PeriodKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthRange returns the first and last instant of t's calendar month,
// used as a defensive filter next to the string-prefix match when seeding
// a counter from already-issued numbers.
func MonthRange(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return first, last
}

// Format renders a document number from its kind, period and sequence.
func Format(kind Kind, referenceDate time.Time, seq int64) string {
	return fmt.Sprintf("%s%0*d", MonthPrefix(kind, referenceDate), SequenceWidth, seq)
}

// Next computes the number following lastNumberInPeriod for the month of
// referenceDate. lastNumberInPeriod is the most recently issued number of
// the same kind and month, or empty when none exists. A number that does
// not carry the expected prefix, or whose tail does not parse as an
// integer, restarts the sequence at 1. Next never fails.
//
// Callers are responsible for serializing invocations within one scope;
// the Generator implementations do this with a database counter.
func Next(kind Kind, referenceDate time.Time, lastNumberInPeriod string) string {
	prefix := MonthPrefix(kind, referenceDate)

	seq := int64(1)
	if strings.HasPrefix(lastNumberInPeriod, prefix) {
		tail := lastNumberInPeriod[len(prefix):]
		if n, err := strconv.ParseInt(tail, 10, 64); err == nil && n > 0 {
			seq = n + 1
		}
	}

	return Format(kind, referenceDate, seq)
}

// ParseSequence extracts the sequence part of a formatted number.
// Returns -1 if the number does not belong to the given kind and month.
func ParseSequence(kind Kind, referenceDate time.Time, number string) int64 {
	prefix := MonthPrefix(kind, referenceDate)
	if !strings.HasPrefix(number, prefix) {
		return -1
	}
	n, err := strconv.ParseInt(number[len(prefix):], 10, 64)
	if err != nil {
		return -1
	}
	return n
}

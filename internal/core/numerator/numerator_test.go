package numerator

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestMonthPrefix(t *testing.T) {
	// (2026-1980)*12 + 1 + 1 = 554 for January 2026
	if got := MonthPrefix(KindInvoice, date(2026, time.January, 15)); got != "554" {
		t.Errorf("expected 554, got %s", got)
	}
	if got := MonthPrefix(KindReceipt, date(2026, time.January, 15)); got != "R554" {
		t.Errorf("expected R554, got %s", got)
	}
}

func TestMonthPrefix_IncreasesByOneEachMonth(t *testing.T) {
	prev := ""
	for m := time.January; m <= time.December; m++ {
		cur := MonthPrefix(KindInvoice, date(2025, m, 1))
		if prev != "" {
			p, _ := parseInt(prev)
			c, _ := parseInt(cur)
			if c != p+1 {
				t.Fatalf("prefix for month %v is %s, want %d", m, cur, p+1)
			}
		}
		prev = cur
	}

	// Year boundary: December -> January continues the progression.
	dec, _ := parseInt(MonthPrefix(KindInvoice, date(2025, time.December, 31)))
	jan, _ := parseInt(MonthPrefix(KindInvoice, date(2026, time.January, 1)))
	if jan != dec+1 {
		t.Errorf("year boundary: dec=%d jan=%d", dec, jan)
	}
}

func parseInt(s string) (int, error) {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n, nil
}

func TestNext_StartsAtOne(t *testing.T) {
	ref := date(2026, time.March, 3)

	got := Next(KindInvoice, ref, "")
	want := MonthPrefix(KindInvoice, ref) + "000001"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestNext_Increments(t *testing.T) {
	ref := date(2026, time.March, 3)
	prefix := MonthPrefix(KindInvoice, ref)

	got := Next(KindInvoice, ref, prefix+"000041")
	if got != prefix+"000042" {
		t.Errorf("expected %s000042, got %s", prefix, got)
	}
}

func TestNext_ReceiptCarriesRPrefix(t *testing.T) {
	ref := date(2026, time.March, 3)

	got := Next(KindReceipt, ref, "")
	want := "R" + MonthPrefix(KindInvoice, ref) + "000001"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestNext_CorruptLastFallsBackToOne(t *testing.T) {
	ref := date(2026, time.March, 3)
	prefix := MonthPrefix(KindInvoice, ref)

	for _, last := range []string{
		prefix + "garbage", // non-numeric tail
		"999000007",        // different prefix (other month)
		"R" + prefix + "000002", // receipt number fed to invoice kind
	} {
		got := Next(KindInvoice, ref, last)
		if got != prefix+"000001" {
			t.Errorf("last=%q: expected sequence restart, got %s", last, got)
		}
	}
}

func TestNext_SequentialCallsAreStrictlyIncreasing(t *testing.T) {
	ref := date(2026, time.July, 20)
	prefix := MonthPrefix(KindReceipt, ref)

	seen := make(map[string]bool)
	last := ""
	for i := 0; i < 25; i++ {
		n := Next(KindReceipt, ref, last)
		if seen[n] {
			t.Fatalf("duplicate number %s at call %d", n, i)
		}
		seen[n] = true
		if last != "" && n <= last {
			t.Fatalf("number %s not greater than previous %s", n, last)
		}
		if ParseSequence(KindReceipt, ref, n) != int64(i+1) {
			t.Fatalf("call %d produced sequence %d", i, ParseSequence(KindReceipt, ref, n))
		}
		if n[:len(prefix)] != prefix {
			t.Fatalf("number %s lost prefix %s", n, prefix)
		}
		last = n
	}
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(date(2026, time.February, 10))
	if first.Day() != 1 || first.Month() != time.February {
		t.Errorf("unexpected first instant %v", first)
	}
	if last.Month() != time.February || last.Day() != 28 {
		t.Errorf("unexpected last instant %v", last)
	}
	if !last.Before(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("last instant leaks into next month: %v", last)
	}
}

func TestParseSequence(t *testing.T) {
	ref := date(2026, time.March, 3)
	prefix := MonthPrefix(KindInvoice, ref)

	if got := ParseSequence(KindInvoice, ref, prefix+"000123"); got != 123 {
		t.Errorf("expected 123, got %d", got)
	}
	if got := ParseSequence(KindInvoice, ref, "nope"); got != -1 {
		t.Errorf("expected -1 for foreign number, got %d", got)
	}
}

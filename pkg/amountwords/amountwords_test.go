package amountwords

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestToWords_Zero(t *testing.T) {
	if got := ToWords(decimal.Zero); got != "CERO con 00 centavos" {
		t.Errorf("got %q", got)
	}
}

func TestToWords_ReceiptExample(t *testing.T) {
	got := ToWords(dec("19360"))
	want := "DIECINUEVE MIL TRESCIENTOS SESENTA con 00 centavos"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToWords_CienVersusCiento(t *testing.T) {
	if got := ToWords(dec("100")); !strings.HasPrefix(got, "CIEN ") {
		t.Errorf("100 should start with CIEN, got %q", got)
	}
	if got := ToWords(dec("150")); !strings.HasPrefix(got, "CIENTO ") {
		t.Errorf("150 should start with CIENTO, got %q", got)
	}
	if got := ToWords(dec("100100")); got != "CIEN MIL CIEN con 00 centavos" {
		t.Errorf("got %q", got)
	}
}

func TestToWords_Cents(t *testing.T) {
	got := ToWords(dec("1234.56"))
	want := "UN MIL DOSCIENTOS TREINTA Y CUATRO con 56 centavos"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got := ToWords(dec("0.05")); got != "CERO con 05 centavos" {
		t.Errorf("got %q", got)
	}
}

func TestToWords_Connector(t *testing.T) {
	cases := map[string]string{
		"21": "VEINTE Y UNO con 00 centavos",
		"30": "TREINTA con 00 centavos",
		"99": "NOVENTA Y NUEVE con 00 centavos",
		"16": "DIECISEIS con 00 centavos",
		"11": "ONCE con 00 centavos",
	}
	for in, want := range cases {
		if got := ToWords(dec(in)); got != want {
			t.Errorf("%s: got %q, want %q", in, got, want)
		}
	}
}

func TestToWords_UnBeforeMagnitude(t *testing.T) {
	cases := map[string]string{
		"1000":    "UN MIL con 00 centavos",
		"1000000": "UN MILLON con 00 centavos",
		"2000000": "DOS MILLONES con 00 centavos",
		"21000":   "VEINTE Y UN MIL con 00 centavos",
	}
	for in, want := range cases {
		if got := ToWords(dec(in)); got != want {
			t.Errorf("%s: got %q, want %q", in, got, want)
		}
	}

	// Trailing unit of 1 is UNO, not UN.
	if got := ToWords(dec("1001")); got != "UN MIL UNO con 00 centavos" {
		t.Errorf("got %q", got)
	}
}

func TestToWords_ThousandsOfMillions(t *testing.T) {
	cases := map[string]string{
		// Exactly one thousand millions with no millions: no leading UN.
		"1000000000": "MIL MILLONES con 00 centavos",
		"5000000000": "CINCO MIL MILLONES con 00 centavos",
		"1200000000": "UN MIL DOSCIENTOS MILLONES con 00 centavos",
	}
	for in, want := range cases {
		if got := ToWords(dec(in)); got != want {
			t.Errorf("%s: got %q, want %q", in, got, want)
		}
	}
}

func TestToWords_Billones(t *testing.T) {
	if got := ToWords(dec("1000000000000")); got != "UN BILLON con 00 centavos" {
		t.Errorf("got %q", got)
	}
	if got := ToWords(dec("3000000000000")); got != "TRES BILLONES con 00 centavos" {
		t.Errorf("got %q", got)
	}
}

func TestToWords_ZeroGroupsSkipped(t *testing.T) {
	// 1,000,019,360: millions group is zero and must not render as CERO.
	got := ToWords(dec("1000019360"))
	if strings.Contains(got, "CERO") {
		t.Errorf("zero group rendered: %q", got)
	}
	want := "MIL MILLONES DIECINUEVE MIL TRESCIENTOS SESENTA con 00 centavos"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToWords_ExhaustiveGroupRoundTrip(t *testing.T) {
	// Every 0..999 group value must render non-empty and never contain
	// a double space.
	for n := 1; n < 1000; n++ {
		w := groupWords(n, false)
		if w == "" {
			t.Fatalf("empty words for %d", n)
		}
		if strings.Contains(w, "  ") {
			t.Fatalf("double space in %q for %d", w, n)
		}
	}
}

func TestPesos(t *testing.T) {
	got := Pesos(dec("19360"))
	want := "PESOS DIECINUEVE MIL TRESCIENTOS SESENTA con 00 centavos"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Package amountwords converts decimal currency amounts into Spanish prose
// for printed receipts, e.g. 19360 -> "DIECINUEVE MIL TRESCIENTOS SESENTA
// con 00 centavos".
//
// The integer part is zero-padded to 15 digits and read as five 3-digit
// groups (billones, miles de millón, millones, miles, unidades). Each group
// is rendered from lookup tables; groups that are zero are skipped.
package amountwords

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var unitsTable = [...]string{
	"", "UNO", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE",
}

// unitsBeforeMagnitude swaps UNO for the apocopated UN used in front of
// magnitude words (UN MIL, UN MILLON).
var unitsBeforeMagnitude = [...]string{
	"", "UN", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE",
}

var teensTable = [...]string{
	"DIEZ", "ONCE", "DOCE", "TRECE", "CATORCE", "QUINCE",
	"DIECISEIS", "DIECISIETE", "DIECIOCHO", "DIECINUEVE",
}

var tensTable = [...]string{
	"", "", "VEINTE", "TREINTA", "CUARENTA", "CINCUENTA",
	"SESENTA", "SETENTA", "OCHENTA", "NOVENTA",
}

var hundredsTable = [...]string{
	"", "CIENTO", "DOSCIENTOS", "TRESCIENTOS", "CUATROCIENTOS", "QUINIENTOS",
	"SEISCIENTOS", "SETECIENTOS", "OCHOCIENTOS", "NOVECIENTOS",
}

// groupWords renders a 0..999 group. beforeMagnitude selects UN over UNO
// when a magnitude word (MIL, MILLON, BILLON) follows the group.
func groupWords(n int, beforeMagnitude bool) string {
	if n == 0 {
		return ""
	}
	if n == 100 {
		return "CIEN"
	}

	var parts []string

	if h := n / 100; h > 0 {
		parts = append(parts, hundredsTable[h])
	}

	rest := n % 100
	switch {
	case rest == 0:
		// nothing after the hundreds word
	case rest < 10:
		if beforeMagnitude {
			parts = append(parts, unitsBeforeMagnitude[rest])
		} else {
			parts = append(parts, unitsTable[rest])
		}
	case rest < 20:
		parts = append(parts, teensTable[rest-10])
	default:
		tens := tensTable[rest/10]
		if u := rest % 10; u > 0 {
			if beforeMagnitude {
				parts = append(parts, tens+" Y "+unitsBeforeMagnitude[u])
			} else {
				parts = append(parts, tens+" Y "+unitsTable[u])
			}
		} else {
			parts = append(parts, tens)
		}
	}

	return strings.Join(parts, " ")
}

// split returns the five 3-digit groups of the 15-digit zero-padded
// integer part, most significant first.
func split(n int64) [5]int {
	var groups [5]int
	for i := 4; i >= 0; i-- {
		groups[i] = int(n % 1000)
		n /= 1000
	}
	return groups
}

// integerWords renders the integer part of the amount.
func integerWords(n int64) string {
	if n == 0 {
		return "CERO"
	}

	g := split(n)
	billions, thousandMillions, millions, thousands, units := g[0], g[1], g[2], g[3], g[4]

	var parts []string

	if billions > 0 {
		parts = append(parts, groupWords(billions, true))
		if billions == 1 {
			parts = append(parts, "BILLON")
		} else {
			parts = append(parts, "BILLONES")
		}
	}

	if thousandMillions > 0 {
		// "MIL MILLONES", never "UN MIL MILLONES", when the group is
		// exactly 1 and no millions follow.
		if !(thousandMillions == 1 && millions == 0) {
			parts = append(parts, groupWords(thousandMillions, true))
		}
		parts = append(parts, "MIL")
	}

	if millions > 0 || thousandMillions > 0 {
		if millions > 0 {
			parts = append(parts, groupWords(millions, true))
		}
		if millions == 1 && thousandMillions == 0 {
			parts = append(parts, "MILLON")
		} else {
			parts = append(parts, "MILLONES")
		}
	}

	if thousands > 0 {
		parts = append(parts, groupWords(thousands, true), "MIL")
	}

	if units > 0 {
		parts = append(parts, groupWords(units, false))
	}

	return strings.Join(parts, " ")
}

// ToWords converts a non-negative amount with at most two fractional
// digits into Spanish words with the cents suffix. Extra fractional
// digits are rounded half-up to cents first.
func ToWords(amount decimal.Decimal) string {
	cents := amount.Round(2).Shift(2).IntPart()
	intPart := cents / 100
	fracPart := cents % 100
	if fracPart < 0 {
		fracPart = -fracPart
	}

	return fmt.Sprintf("%s con %02d centavos", integerWords(intPart), fracPart)
}

// Pesos renders the amount with the currency prefix used on receipts.
func Pesos(amount decimal.Decimal) string {
	return "PESOS " + ToWords(amount)
}

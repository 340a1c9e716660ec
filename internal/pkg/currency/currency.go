package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Rupiah amounts are displayed without fractional digits, the way Indonesian
// insurers quote them: "Rp 1.234.567".
const prefix = "Rp "

var printer = message.NewPrinter(language.Indonesian)

// Format renders an amount as a Rupiah display string with id-ID digit
// grouping and no fraction. Zero renders as "Rp 0".
func Format(amount decimal.Decimal) string {
	return prefix + printer.Sprintf("%v", number.Decimal(amount.Round(0).IntPart()))
}

// FormatString formats a raw numeric string from a form buffer. Empty,
// unparseable, or zero input all render the canonical zero string.
func FormatString(raw string) string {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return prefix + "0"
	}
	return Format(amount)
}

// Parse strips every non-digit character from a display string and returns
// the remaining digit sequence. Empty input yields empty output. This is a
// lossy de-formatting step, not an inverse of Format: the codec is
// integer-only and any sign or fraction is discarded.
func Parse(display string) string {
	var b strings.Builder
	for i := 0; i < len(display); i++ {
		if display[i] >= '0' && display[i] <= '9' {
			b.WriteByte(display[i])
		}
	}
	return b.String()
}

package currency

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat_GroupsDigitsIndonesianStyle(t *testing.T) {
	t.Parallel()

	got := Format(decimal.NewFromInt(1234567))
	if got != "Rp 1.234.567" {
		t.Fatalf("expected \"Rp 1.234.567\", got %q", got)
	}
}

func TestFormat_ZeroRendersCanonicalString(t *testing.T) {
	t.Parallel()

	if got := Format(decimal.Zero); got != "Rp 0" {
		t.Fatalf("expected \"Rp 0\" for zero, got %q", got)
	}
}

func TestFormatString_AbsentInputsRenderZero(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "0", "not-a-number"} {
		if got := FormatString(raw); got != "Rp 0" {
			t.Fatalf("FormatString(%q) = %q, expected \"Rp 0\"", raw, got)
		}
	}
}

func TestFormatString_DropsFraction(t *testing.T) {
	t.Parallel()

	if got := FormatString("250000.75"); got != "Rp 250.001" {
		t.Fatalf("expected rounded integer display, got %q", got)
	}
}

func TestParse_StripsEveryNonDigit(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":             "",
		"Rp 0":         "0",
		"Rp 1.234.567": "1234567",
		"Rp 200.000":   "200000",
		"abc12x3":      "123",
	}

	for in, want := range cases {
		if got := Parse(in); got != want {
			t.Fatalf("Parse(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestRoundTrip_DigitsSurviveFormatting(t *testing.T) {
	t.Parallel()

	if got := Parse(Format(decimal.NewFromInt(1234567))); got != "1234567" {
		t.Fatalf("round trip lost digits: %q", got)
	}
}

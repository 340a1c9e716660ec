package premium

import "github.com/shopspring/decimal"

// Derive computes the premium price from a vehicle price and a premium rate
// percentage, both given as raw numeric strings from the form buffer. The
// result is the integer-rounded value of price * rate / 100, returned as a
// digit string.
//
// A missing or zero price or rate yields the empty string rather than "0":
// a zero amount is treated as "not yet entered", matching the form's
// incremental derivation contract.
func Derive(price, rate string) string {
	p, err := decimal.NewFromString(price)
	if err != nil || p.IsZero() {
		return ""
	}
	r, err := decimal.NewFromString(rate)
	if err != nil || r.IsZero() {
		return ""
	}
	return p.Mul(r).Div(decimal.NewFromInt(100)).Round(0).String()
}

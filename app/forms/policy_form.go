package forms

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bagaskara/polisku/app/models"
	"github.com/bagaskara/polisku/internal/pkg/currency"
	"github.com/bagaskara/polisku/internal/pkg/premium"
)

// Field names of the policy edit buffer, matching the record's column names.
const (
	FieldPolicyNumber         = "policy_number"
	FieldInsuredName          = "insured_name"
	FieldPolicyEffectiveDate  = "policy_effective_date"
	FieldPolicyExpirationDate = "policy_expiration_date"
	FieldVehicleBrand         = "vehicle_brand"
	FieldVehicleType          = "vehicle_type"
	FieldVehicleYear          = "vehicle_year"
	FieldVehiclePrice         = "vehicle_price"
	FieldPremiumRate          = "premium_rate"
	FieldPremiumPrice         = "premium_price"
)

// Fields lists the buffer fields in form order.
var Fields = []string{
	FieldPolicyNumber,
	FieldInsuredName,
	FieldPolicyEffectiveDate,
	FieldPolicyExpirationDate,
	FieldVehicleBrand,
	FieldVehicleType,
	FieldVehicleYear,
	FieldVehiclePrice,
	FieldPremiumRate,
	FieldPremiumPrice,
}

// DateLayout is the wire format for the two policy dates.
const DateLayout = "2006-01-02"

// PolicyForm owns the in-progress edit buffer for one policy record. All
// buffer values are raw strings; premium_price is re-derived on every change
// to vehicle_price or premium_rate and once more on Submit.
type PolicyForm struct {
	buf map[string]string
}

// NewPolicyForm returns a form holding the empty create-mode template.
func NewPolicyForm() *PolicyForm {
	f := &PolicyForm{}
	f.reset()
	return f
}

func (f *PolicyForm) reset() {
	f.buf = make(map[string]string, len(Fields))
	for _, name := range Fields {
		f.buf[name] = ""
	}
}

// LoadInitial replaces the buffer wholesale. A nil record resets to the
// empty template (create mode); otherwise the record's values are copied in
// (edit mode).
func (f *PolicyForm) LoadInitial(p *models.Policy) {
	f.reset()
	if p == nil {
		return
	}

	f.buf[FieldPolicyNumber] = p.PolicyNumber
	f.buf[FieldInsuredName] = p.InsuredName
	if !p.PolicyEffectiveDate.IsZero() {
		f.buf[FieldPolicyEffectiveDate] = p.PolicyEffectiveDate.Format(DateLayout)
	}
	if !p.PolicyExpirationDate.IsZero() {
		f.buf[FieldPolicyExpirationDate] = p.PolicyExpirationDate.Format(DateLayout)
	}
	f.buf[FieldVehicleBrand] = p.VehicleBrand
	f.buf[FieldVehicleType] = p.VehicleType
	if p.VehicleYear != 0 {
		f.buf[FieldVehicleYear] = strconv.Itoa(p.VehicleYear)
	}
	f.buf[FieldVehiclePrice] = p.VehiclePrice.Round(0).String()
	f.buf[FieldPremiumRate] = p.PremiumRate.String()
	f.buf[FieldPremiumPrice] = p.PremiumPrice.Round(0).String()
}

// Set applies a single field edit. A vehicle_price value is de-formatted
// through the currency codec before storage; changing either vehicle_price
// or premium_rate re-derives premium_price from the previous buffer merged
// with the one changed field. Every other field is stored verbatim.
func (f *PolicyForm) Set(name, raw string) {
	switch name {
	case FieldVehiclePrice:
		numeric := currency.Parse(raw)
		f.buf[FieldVehiclePrice] = numeric
		f.buf[FieldPremiumPrice] = premium.Derive(numeric, f.buf[FieldPremiumRate])
	case FieldPremiumRate:
		f.buf[FieldPremiumRate] = raw
		f.buf[FieldPremiumPrice] = premium.Derive(f.buf[FieldVehiclePrice], raw)
	default:
		f.buf[name] = raw
	}
}

// Get returns the current buffer value for a field.
func (f *PolicyForm) Get(name string) string {
	return f.buf[name]
}

// Values returns a copy of the buffer.
func (f *PolicyForm) Values() map[string]string {
	out := make(map[string]string, len(f.buf))
	for k, v := range f.buf {
		out[k] = v
	}
	return out
}

// Submit coerces the buffer into a finalized record and resets the buffer to
// the empty template. The reset happens whether or not the caller's
// persistence succeeds afterwards: a failed save loses the unsaved input,
// which is the app's long-standing behavior.
//
// Required-field checks live at the presentation boundary; Submit coerces
// whatever it is given. Premium price is recomputed one final time from the
// coerced price and rate so the persisted record always satisfies
// premium_price == round(vehicle_price * premium_rate / 100).
func (f *PolicyForm) Submit() (models.Policy, error) {
	defer f.reset()

	effective, err := parseDate(f.buf[FieldPolicyEffectiveDate])
	if err != nil {
		return models.Policy{}, fmt.Errorf("policy_effective_date: %w", err)
	}
	expiration, err := parseDate(f.buf[FieldPolicyExpirationDate])
	if err != nil {
		return models.Policy{}, fmt.Errorf("policy_expiration_date: %w", err)
	}

	year := 0
	if raw := f.buf[FieldVehicleYear]; raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			return models.Policy{}, fmt.Errorf("vehicle_year: %w", err)
		}
	}

	price := parseAmount(f.buf[FieldVehiclePrice])
	rate := parseAmount(f.buf[FieldPremiumRate])
	premiumPrice := parseAmount(premium.Derive(f.buf[FieldVehiclePrice], f.buf[FieldPremiumRate]))

	return models.Policy{
		PolicyNumber:         f.buf[FieldPolicyNumber],
		InsuredName:          f.buf[FieldInsuredName],
		PolicyEffectiveDate:  effective,
		PolicyExpirationDate: expiration,
		VehicleBrand:         f.buf[FieldVehicleBrand],
		VehicleType:          f.buf[FieldVehicleType],
		VehicleYear:          year,
		VehiclePrice:         price,
		PremiumRate:          rate,
		PremiumPrice:         premiumPrice,
	}, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, raw)
}

func parseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

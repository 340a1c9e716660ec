package forms

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagaskara/polisku/app/models"
)

func TestNewPolicyFormStartsEmpty(t *testing.T) {
	f := NewPolicyForm()

	for _, name := range Fields {
		assert.Equal(t, "", f.Get(name))
	}
}

func TestSetVehiclePriceParsesCurrencyAndDerivesPremium(t *testing.T) {
	f := NewPolicyForm()
	f.Set(FieldVehiclePrice, "100000")
	f.Set(FieldPremiumRate, "5")
	require.Equal(t, "5000", f.Get(FieldPremiumPrice))

	// Derivation uses the previous buffer merged with the single changed
	// field: the new price combines with the already-stored rate.
	f.Set(FieldVehiclePrice, "Rp 200.000")

	assert.Equal(t, "200000", f.Get(FieldVehiclePrice))
	assert.Equal(t, "5", f.Get(FieldPremiumRate))
	assert.Equal(t, "10000", f.Get(FieldPremiumPrice))
}

func TestSetPremiumRateDerivesFromStoredPrice(t *testing.T) {
	f := NewPolicyForm()
	f.Set(FieldVehiclePrice, "Rp 150.000")
	f.Set(FieldPremiumRate, "2")

	assert.Equal(t, "150000", f.Get(FieldVehiclePrice))
	assert.Equal(t, "3000", f.Get(FieldPremiumPrice))
}

func TestSetOtherFieldsStoredVerbatim(t *testing.T) {
	f := NewPolicyForm()
	f.Set(FieldInsuredName, "  Budi Santoso ")
	f.Set(FieldVehicleBrand, "Toyota")

	assert.Equal(t, "  Budi Santoso ", f.Get(FieldInsuredName))
	assert.Equal(t, "Toyota", f.Get(FieldVehicleBrand))
	assert.Equal(t, "", f.Get(FieldPremiumPrice))
}

func TestZeroPriceOrRateYieldsEmptyPremium(t *testing.T) {
	f := NewPolicyForm()
	f.Set(FieldVehiclePrice, "0")
	f.Set(FieldPremiumRate, "5")

	assert.Equal(t, "", f.Get(FieldPremiumPrice))

	f.Set(FieldVehiclePrice, "100000")
	f.Set(FieldPremiumRate, "0")

	assert.Equal(t, "", f.Get(FieldPremiumPrice))
}

func TestLoadInitialCopiesRecord(t *testing.T) {
	record := &models.Policy{
		PolicyNumber:         "POL2403050008",
		InsuredName:          "Budi Santoso",
		PolicyEffectiveDate:  time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		PolicyExpirationDate: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		VehicleBrand:         "Toyota",
		VehicleType:          "SUV",
		VehicleYear:          2020,
		VehiclePrice:         decimal.NewFromInt(250000000),
		PremiumRate:          decimal.NewFromFloat(2.5),
		PremiumPrice:         decimal.NewFromInt(6250000),
	}

	f := NewPolicyForm()
	f.LoadInitial(record)

	assert.Equal(t, "POL2403050008", f.Get(FieldPolicyNumber))
	assert.Equal(t, "Budi Santoso", f.Get(FieldInsuredName))
	assert.Equal(t, "2024-03-05", f.Get(FieldPolicyEffectiveDate))
	assert.Equal(t, "2025-03-05", f.Get(FieldPolicyExpirationDate))
	assert.Equal(t, "2020", f.Get(FieldVehicleYear))
	assert.Equal(t, "250000000", f.Get(FieldVehiclePrice))
	assert.Equal(t, "2.5", f.Get(FieldPremiumRate))
	assert.Equal(t, "6250000", f.Get(FieldPremiumPrice))
}

func TestLoadInitialNilResetsToTemplate(t *testing.T) {
	f := NewPolicyForm()
	f.Set(FieldInsuredName, "Budi Santoso")
	f.Set(FieldVehiclePrice, "100000")

	f.LoadInitial(nil)

	for _, name := range Fields {
		assert.Equal(t, "", f.Get(name))
	}
}

func TestSubmitCoercesBufferValues(t *testing.T) {
	f := NewPolicyForm()
	f.Set(FieldVehicleYear, "2020")
	f.Set(FieldVehiclePrice, "100000")
	f.Set(FieldPremiumRate, "5")

	record, err := f.Submit()
	require.NoError(t, err)

	assert.Equal(t, 2020, record.VehicleYear)
	assert.True(t, record.VehiclePrice.Equal(decimal.NewFromInt(100000)))
	assert.True(t, record.PremiumRate.Equal(decimal.NewFromInt(5)))
	assert.True(t, record.PremiumPrice.Equal(decimal.NewFromInt(5000)))
}

func TestSubmitRecomputesStalePremium(t *testing.T) {
	f := NewPolicyForm()
	f.Set(FieldVehiclePrice, "100000")
	f.Set(FieldPremiumRate, "5")
	// Overwrite the derived value; Submit must not trust it.
	f.Set(FieldPremiumPrice, "999999")

	record, err := f.Submit()
	require.NoError(t, err)

	assert.True(t, record.PremiumPrice.Equal(decimal.NewFromInt(5000)))
	assert.True(t, record.PremiumConsistent())
}

func TestSubmitAlwaysResetsBuffer(t *testing.T) {
	// The buffer resets whether or not the caller's persistence succeeds
	// afterwards: a failed save loses the unsaved input. Deliberate,
	// long-standing behavior.
	f := NewPolicyForm()
	f.Set(FieldInsuredName, "Budi Santoso")
	f.Set(FieldVehiclePrice, "100000")
	f.Set(FieldPremiumRate, "5")

	_, err := f.Submit()
	require.NoError(t, err)

	for _, name := range Fields {
		assert.Equal(t, "", f.Get(name))
	}
}

func TestSubmitResetsBufferOnCoercionError(t *testing.T) {
	f := NewPolicyForm()
	f.Set(FieldPolicyEffectiveDate, "not-a-date")

	_, err := f.Submit()
	require.Error(t, err)

	for _, name := range Fields {
		assert.Equal(t, "", f.Get(name))
	}
}

func TestSubmitEmptyDatesCoerceToZeroTime(t *testing.T) {
	f := NewPolicyForm()

	record, err := f.Submit()
	require.NoError(t, err)

	assert.True(t, record.PolicyEffectiveDate.IsZero())
	assert.True(t, record.PolicyExpirationDate.IsZero())
}

func TestValuesReturnsACopy(t *testing.T) {
	f := NewPolicyForm()
	f.Set(FieldInsuredName, "Budi Santoso")

	values := f.Values()
	values[FieldInsuredName] = "mutated"

	assert.Equal(t, "Budi Santoso", f.Get(FieldInsuredName))
}

package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPolicy() *Policy {
	return &Policy{
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
		UserID:               1,
	}
}

func TestPolicyValidate(t *testing.T) {
	require.NoError(t, validPolicy().Validate())
}

func TestPolicyValidateRequiredFields(t *testing.T) {
	p := validPolicy()
	p.InsuredName = ""
	assert.Error(t, p.Validate())

	p = validPolicy()
	p.PolicyNumber = ""
	assert.Error(t, p.Validate())

	p = validPolicy()
	p.VehicleBrand = ""
	assert.Error(t, p.Validate())

	p = validPolicy()
	p.VehicleType = ""
	assert.Error(t, p.Validate())
}

func TestPolicyValidateVehicleYearRange(t *testing.T) {
	p := validPolicy()
	p.VehicleYear = 1899
	assert.Error(t, p.Validate())

	p = validPolicy()
	p.VehicleYear = 1900
	assert.NoError(t, p.Validate())

	p = validPolicy()
	p.VehicleYear = time.Now().Year() + 1
	assert.NoError(t, p.Validate())

	p = validPolicy()
	p.VehicleYear = time.Now().Year() + 2
	assert.Error(t, p.Validate())
}

func TestPolicyValidateRejectsNegativeAmounts(t *testing.T) {
	p := validPolicy()
	p.VehiclePrice = decimal.NewFromInt(-1)
	assert.Error(t, p.Validate())

	p = validPolicy()
	p.PremiumRate = decimal.NewFromFloat(-0.5)
	assert.Error(t, p.Validate())
}

func TestPolicyPremiumConsistent(t *testing.T) {
	p := validPolicy()
	assert.True(t, p.PremiumConsistent())

	p.PremiumPrice = decimal.NewFromInt(1)
	assert.False(t, p.PremiumConsistent())
}

func TestPolicyExpectedPremiumRounds(t *testing.T) {
	p := validPolicy()
	p.VehiclePrice = decimal.NewFromInt(350)
	p.PremiumRate = decimal.NewFromInt(5)

	assert.True(t, p.ExpectedPremium().Equal(decimal.NewFromInt(18)))
}

func TestPolicyItemName(t *testing.T) {
	assert.Equal(t, "Toyota - SUV", validPolicy().ItemName())
}

func TestNoDateOrderingConstraint(t *testing.T) {
	// Expiration before effective is accepted; ordering is not enforced.
	p := validPolicy()
	p.PolicyExpirationDate = p.PolicyEffectiveDate.AddDate(-1, 0, 0)
	assert.NoError(t, p.Validate())
}

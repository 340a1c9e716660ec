package viewmodel

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bagaskara/polisku/app/models"
)

func TestNewPolicyRowFormatsRecord(t *testing.T) {
	row := NewPolicyRow(models.Policy{
		PolicyNumber:         "POL2501150001",
		InsuredName:          "Budi Santoso",
		PolicyEffectiveDate:  time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		PolicyExpirationDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		VehicleBrand:         "Toyota",
		VehicleType:          "SUV",
		VehiclePrice:         decimal.NewFromInt(250000000),
		PremiumPrice:         decimal.NewFromInt(6250000),
	})

	assert.Equal(t, "POL2501150001", row.PolicyNumber)
	assert.Equal(t, "Budi Santoso", row.InsuredName)
	assert.Equal(t, "01/15/2025 - 01/15/2026", row.Period)
	assert.Equal(t, "Toyota - SUV", row.ItemName)
	assert.Equal(t, "Rp 250.000.000", row.SumInsured)
	assert.Equal(t, "Rp 6.250.000", row.PremiumPrice)
}

func TestNewPolicyRowsPreservesOrder(t *testing.T) {
	rows := NewPolicyRows([]models.Policy{
		{PolicyNumber: "POL2501160002"},
		{PolicyNumber: "POL2501150001"},
	})

	assert.Len(t, rows, 2)
	assert.Equal(t, "POL2501160002", rows[0].PolicyNumber)
	assert.Equal(t, "POL2501150001", rows[1].PolicyNumber)
}

func TestNewPolicyRowsEmptyCollection(t *testing.T) {
	assert.Empty(t, NewPolicyRows(nil))
}

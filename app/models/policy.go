package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Policy is one insured-vehicle insurance policy with premium terms.
// PremiumPrice is derived, never entered: the form controller recomputes it
// from VehiclePrice and PremiumRate before every save.
type Policy struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	PolicyNumber         string          `gorm:"uniqueIndex;type:varchar(20)" json:"policy_number" validate:"required"`
	InsuredName          string          `gorm:"type:varchar(150)" json:"insured_name" validate:"required,max=150"`
	PolicyEffectiveDate  time.Time       `gorm:"type:date" json:"policy_effective_date"`
	PolicyExpirationDate time.Time       `gorm:"type:date" json:"policy_expiration_date"`
	VehicleBrand         string          `gorm:"type:varchar(100)" json:"vehicle_brand" validate:"required,max=100"`
	VehicleType          string          `gorm:"type:varchar(100)" json:"vehicle_type" validate:"required,max=100"`
	VehicleYear          int             `json:"vehicle_year"`
	VehiclePrice         decimal.Decimal `gorm:"type:decimal(15,2)" json:"vehicle_price"`
	PremiumRate          decimal.Decimal `gorm:"type:decimal(7,4)" json:"premium_rate"`
	PremiumPrice         decimal.Decimal `gorm:"type:decimal(15,2)" json:"premium_price"`
	UserID               uint            `gorm:"index" json:"user_id"`
	User                 *User           `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt            time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	DeletedAt            gorm.DeletedAt  `gorm:"index" json:"-"`
}

// MinVehicleYear bounds the model year a policy may cover.
const MinVehicleYear = 1900

// Validate checks the struct tags plus the constraints that cannot live in a
// static tag: the vehicle year range has a moving upper bound of next year,
// and neither price nor rate may be negative.
func (p *Policy) Validate() error {
	v := validator.New()
	if err := v.Struct(p); err != nil {
		return err
	}

	maxYear := time.Now().Year() + 1
	if p.VehicleYear < MinVehicleYear || p.VehicleYear > maxYear {
		return fmt.Errorf("vehicle_year must be between %d and %d, got %d", MinVehicleYear, maxYear, p.VehicleYear)
	}
	if p.VehiclePrice.IsNegative() {
		return fmt.Errorf("vehicle_price must not be negative")
	}
	if p.PremiumRate.IsNegative() {
		return fmt.Errorf("premium_rate must not be negative")
	}

	return nil
}

// ExpectedPremium returns the premium the stored price and rate imply.
func (p *Policy) ExpectedPremium() decimal.Decimal {
	return p.VehiclePrice.Mul(p.PremiumRate).Div(decimal.NewFromInt(100)).Round(0)
}

// PremiumConsistent reports whether the persisted premium price matches the
// derived value. The store does not enforce this; the form controller must
// have computed it before handoff.
func (p *Policy) PremiumConsistent() bool {
	return p.PremiumPrice.Round(0).Equal(p.ExpectedPremium())
}

// ItemName is the combined vehicle label shown in the listing view.
func (p *Policy) ItemName() string {
	return fmt.Sprintf("%s - %s", p.VehicleBrand, p.VehicleType)
}

package viewmodel

import (
	"fmt"

	"github.com/bagaskara/polisku/app/models"
	"github.com/bagaskara/polisku/internal/pkg/currency"
)

const periodDateLayout = "01/02/2006"

// PolicyRow is one rendered row of the policy listing. The listing shows the
// records in the order the orchestrator loaded them (creation time
// descending) with a fixed column order: policy number, insured name, period,
// item name, sum insured, premium price.
type PolicyRow struct {
	PolicyNumber string
	InsuredName  string
	Period       string
	ItemName     string
	SumInsured   string
	PremiumPrice string
}

// NewPolicyRow formats a policy record for the listing view.
func NewPolicyRow(p models.Policy) PolicyRow {
	return PolicyRow{
		PolicyNumber: p.PolicyNumber,
		InsuredName:  p.InsuredName,
		Period: fmt.Sprintf("%s - %s",
			p.PolicyEffectiveDate.Format(periodDateLayout),
			p.PolicyExpirationDate.Format(periodDateLayout)),
		ItemName:     p.ItemName(),
		SumInsured:   currency.Format(p.VehiclePrice),
		PremiumPrice: currency.Format(p.PremiumPrice),
	}
}

// NewPolicyRows formats a whole collection, preserving its order.
func NewPolicyRows(policies []models.Policy) []PolicyRow {
	rows := make([]PolicyRow, 0, len(policies))
	for _, p := range policies {
		rows = append(rows, NewPolicyRow(p))
	}
	return rows
}

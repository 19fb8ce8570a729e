package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxSettings captures the inputs for the capital-gains headroom model.
// AdditionalPretaxContribution reduces taxable income and therefore widens
// the 0%-rate headroom; the liquidation planner sweeps it to find the
// contribution/tax trade-off.
type TaxSettings struct {
	AnnualIncome                 decimal.Decimal `json:"annualIncome" yaml:"annual_income"`
	FilingStatus                 FilingStatus    `json:"filingStatus" yaml:"filing_status"`
	AdditionalPretaxContribution decimal.Decimal `json:"additionalPretaxContribution" yaml:"additional_pretax_contribution"`
}

// TaxableIncome returns annual income net of the additional pretax
// contribution, floored at zero.
func (ts TaxSettings) TaxableIncome() decimal.Decimal {
	taxable := ts.AnnualIncome.Sub(ts.AdditionalPretaxContribution)
	if taxable.IsNegative() {
		return decimal.Zero
	}
	return taxable
}

// Threshold returns the 0%-rate income ceiling for the filing status.
func (ts TaxSettings) Threshold() decimal.Decimal {
	return LTCGThresholds[ts.FilingStatus]
}

// GainHeadroom returns how much capital gain can be realized at 0% given
// the taxable income, floored at zero.
func (ts TaxSettings) GainHeadroom() decimal.Decimal {
	headroom := ts.Threshold().Sub(ts.TaxableIncome())
	if headroom.IsNegative() {
		return decimal.Zero
	}
	return headroom
}

// Validate checks the settings at the simulation boundary.
func (ts TaxSettings) Validate() error {
	if !ValidFilingStatus(ts.FilingStatus) {
		return fmt.Errorf("unknown filing status %q", ts.FilingStatus)
	}
	if ts.AnnualIncome.IsNegative() {
		return fmt.Errorf("annual income must not be negative, got %s", ts.AnnualIncome)
	}
	if ts.AdditionalPretaxContribution.IsNegative() {
		return fmt.Errorf("pretax contribution must not be negative, got %s", ts.AdditionalPretaxContribution)
	}
	return nil
}

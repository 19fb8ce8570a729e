package domain

import "github.com/shopspring/decimal"

// Simulation-wide constants shared by every month-by-month loop.
const (
	// MaxSimulationMonths caps every payoff loop at 50 years. Hitting the
	// cap is a normal termination condition, not an error.
	MaxSimulationMonths = 600

	// MaxLiquidationYears caps how many tax years a spread sale may cover.
	// Lots still unsold after the cap are left unscheduled.
	MaxLiquidationYears = 10

	// MonthsPerYear is spelled out so rate conversions read as intent.
	MonthsPerYear = 12
)

// BalanceEpsilon is the money epsilon below which a balance counts as
// paid off. Comparing against exact zero does not terminate with float
// style division; decimal keeps us exact but the epsilon stays for parity
// with payment rounding.
var BalanceEpsilon = decimal.NewFromFloat(0.01)

// CapitalGainsRate is the flat long-term rate applied to gains above the
// 0% headroom. This is a two-bracket approximation, not a full schedule.
var CapitalGainsRate = decimal.NewFromFloat(0.15)

// FilingStatus selects the 0% long-term capital gains threshold.
type FilingStatus string

const (
	FilingSingle        FilingStatus = "single"
	FilingMarriedJoint  FilingStatus = "married_joint"
	FilingHeadHousehold FilingStatus = "head_household"
)

// LTCGThresholds maps filing status to the 2024 0%-rate income ceiling.
var LTCGThresholds = map[FilingStatus]decimal.Decimal{
	FilingSingle:        decimal.NewFromInt(47025),
	FilingMarriedJoint:  decimal.NewFromInt(94050),
	FilingHeadHousehold: decimal.NewFromInt(63000),
}

// 2024 elective deferral limits for pretax retirement contributions.
var (
	MaxPretaxContribution  = decimal.NewFromInt(23000)
	MaxCatchupContribution = decimal.NewFromInt(7500)
)

// ValidFilingStatus reports whether s is one of the supported statuses.
func ValidFilingStatus(s FilingStatus) bool {
	_, ok := LTCGThresholds[s]
	return ok
}

package compare

import (
	"github.com/shopspring/decimal"

	"github.com/nwadvisor/networth-advisor/internal/calculation"
	"github.com/nwadvisor/networth-advisor/internal/domain"
)

// StrategyRow is one strategy's outcome plus its deltas against the
// minimum-payments baseline.
type StrategyRow struct {
	Strategy         string          `json:"strategy"`
	MonthsToDebtFree int             `json:"monthsToDebtFree"`
	TotalInterest    decimal.Decimal `json:"totalInterest"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	ExtraMonthly     decimal.Decimal `json:"extraMonthly"`

	// Versus the minimum baseline.
	InterestSaved decimal.Decimal `json:"interestSaved"`
	MonthsSaved   int             `json:"monthsSaved"`

	PayoffOrder []string `json:"payoffOrder"`
}

// ComparisonSet is a full strategy comparison ready for rendering.
type ComparisonSet struct {
	ConfigPath   string        `json:"configPath,omitempty"`
	Baseline     StrategyRow   `json:"baseline"`
	Alternatives []StrategyRow `json:"alternatives"`
	BestStrategy string        `json:"bestStrategy"`
}

// BuildComparison derives the renderable comparison from a strategy set.
// The minimum strategy is the baseline; the accelerated strategies are
// listed in their fixed comparison order.
func BuildComparison(set calculation.StrategySet, configPath string) *ComparisonSet {
	baseline := set.Minimum

	row := func(outcome domain.StrategyOutcome) StrategyRow {
		return StrategyRow{
			Strategy:         string(outcome.Strategy),
			MonthsToDebtFree: outcome.MonthsToDebtFree,
			TotalInterest:    outcome.TotalInterest,
			TotalPaid:        outcome.TotalPaid,
			ExtraMonthly:     outcome.ExtraMonthly,
			InterestSaved:    baseline.TotalInterest.Sub(outcome.TotalInterest),
			MonthsSaved:      baseline.MonthsToDebtFree - outcome.MonthsToDebtFree,
			PayoffOrder:      outcome.PayoffOrder,
		}
	}

	return &ComparisonSet{
		ConfigPath: configPath,
		Baseline:   row(baseline),
		Alternatives: []StrategyRow{
			row(set.Avalanche),
			row(set.Snowball),
			row(set.Hybrid),
		},
		BestStrategy: string(set.Best().Strategy),
	}
}

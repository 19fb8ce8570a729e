package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nwadvisor/networth-advisor/internal/domain"
)

// TypeTotal is one slice of the asset breakdown, ordered by value so the
// summary renders deterministically.
type TypeTotal struct {
	Type  domain.AssetType `json:"type"`
	Value decimal.Decimal  `json:"value"`
}

// NetWorthSummary aggregates the profile into the headline figures the
// report and TUI lead with.
type NetWorthSummary struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
	DebtToAssetRatio decimal.Decimal `json:"debtToAssetRatio"` // zero when no assets
	AssetsByType     []TypeTotal     `json:"assetsByType"`
	OpenLiabilities  int             `json:"openLiabilities"`
}

// Summarize computes the net-worth summary for a profile.
func Summarize(profile domain.Profile) NetWorthSummary {
	byType := map[domain.AssetType]decimal.Decimal{}
	for _, a := range profile.Assets {
		byType[a.Type] = byType[a.Type].Add(a.CurrentValue())
	}
	breakdown := make([]TypeTotal, 0, len(byType))
	for t, v := range byType {
		breakdown = append(breakdown, TypeTotal{Type: t, Value: v})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Value.Equal(breakdown[j].Value) {
			return breakdown[i].Type < breakdown[j].Type
		}
		return breakdown[i].Value.GreaterThan(breakdown[j].Value)
	})

	assets := profile.TotalAssets()
	liabilities := profile.TotalLiabilities()
	ratio := decimal.Zero
	if assets.IsPositive() {
		ratio = liabilities.Div(assets)
	}
	return NetWorthSummary{
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		NetWorth:         assets.Sub(liabilities),
		DebtToAssetRatio: ratio,
		AssetsByType:     breakdown,
		OpenLiabilities:  len(profile.OpenLiabilities()),
	}
}

// CashFlowAnalysis splits one month of debt service into interest and
// principal and projects the lifetime interest still owed. Lifetime
// interest is only finite when every open debt amortizes; the
// non-amortizing names are listed so the caller can surface them instead
// of summing a number that does not exist.
type CashFlowAnalysis struct {
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	DebtService     decimal.Decimal `json:"debtService"` // regular payments across open debts
	NetCashFlow     decimal.Decimal `json:"netCashFlow"` // income - expenses - debt service

	MonthlyInterest  decimal.Decimal `json:"monthlyInterest"`
	MonthlyPrincipal decimal.Decimal `json:"monthlyPrincipal"`

	LifetimeInterest   domain.InterestOutcome `json:"-"`
	NonAmortizingDebts []string               `json:"nonAmortizingDebts,omitempty"`
}

// AnalyzeCashFlow computes the monthly cash-flow picture for a profile.
func AnalyzeCashFlow(profile domain.Profile) CashFlowAnalysis {
	analysis := CashFlowAnalysis{
		MonthlyIncome:   profile.MonthlyIncome,
		MonthlyExpenses: profile.MonthlyExpenses,
	}

	lifetime := decimal.Zero
	finite := true
	for _, l := range profile.OpenLiabilities() {
		interest := l.MonthlyInterest()
		principal := l.PrincipalPortion()
		analysis.DebtService = analysis.DebtService.Add(l.MonthlyPayment)
		analysis.MonthlyInterest = analysis.MonthlyInterest.Add(interest)
		analysis.MonthlyPrincipal = analysis.MonthlyPrincipal.Add(principal)

		outcome := InterestRemaining(l)
		if outcome.Amortizing() {
			lifetime = lifetime.Add(outcome.Total())
		} else {
			finite = false
			analysis.NonAmortizingDebts = append(analysis.NonAmortizingDebts, l.Name)
		}
	}

	if finite {
		analysis.LifetimeInterest = domain.AmortizingInterest(lifetime)
	} else {
		analysis.LifetimeInterest = domain.NonAmortizing()
	}
	analysis.NetCashFlow = profile.MonthlyIncome.Sub(profile.MonthlyExpenses).Sub(analysis.DebtService)
	return analysis
}

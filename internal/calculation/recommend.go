package calculation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nwadvisor/networth-advisor/internal/domain"
)

// Thresholds used by the recommendation rules. These are advisory
// heuristics, not tax or legal limits.
var (
	highInterestRate    = decimal.NewFromInt(15) // annual %
	utilizationCeiling  = decimal.NewFromFloat(0.30)
	emergencyFundMonths = decimal.NewFromInt(6)
	retirementFloor     = decimal.NewFromInt(500) // per month
	metalsAllocationCap = decimal.NewFromFloat(0.20)
)

// Recommend derives a prioritized advisory list from a profile and the
// strategy comparison already computed for it. The function is pure:
// identical inputs always produce the identical list, sorted by priority
// with ties keeping insertion order, and nothing in the profile is
// mutated.
func Recommend(profile domain.Profile, strategies StrategySet) []domain.Recommendation {
	var recs []domain.Recommendation

	highInterest := highInterestDebts(profile.Liabilities)
	if len(highInterest) > 0 {
		recs = append(recs, highInterestRecommendation(highInterest))
	}
	if r, ok := utilizationRecommendation(profile.Liabilities); ok {
		recs = append(recs, r)
	}
	if r, ok := strategyRecommendation(strategies); ok {
		recs = append(recs, r)
	}
	if r, ok := emergencyFundRecommendation(profile, len(highInterest) > 0); ok {
		recs = append(recs, r)
	}
	if r, ok := retirementRecommendation(profile.Assets); ok {
		recs = append(recs, r)
	}
	if r, ok := metalsRecommendation(profile.Assets); ok {
		recs = append(recs, r)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})
	return recs
}

func highInterestDebts(liabilities []domain.Liability) []domain.Liability {
	var out []domain.Liability
	for _, l := range liabilities {
		if l.InterestRate.GreaterThan(highInterestRate) && l.CurrentBalance.GreaterThan(decimal.Zero) {
			out = append(out, l)
		}
	}
	return out
}

func highInterestRecommendation(debts []domain.Liability) domain.Recommendation {
	total := decimal.Zero
	items := make([]string, 0, len(debts))
	for _, l := range debts {
		total = total.Add(l.CurrentBalance)
		items = append(items, fmt.Sprintf("Pay down %s (%s%% APR, $%s balance)",
			l.Name, l.InterestRate.StringFixed(2), l.CurrentBalance.StringFixed(2)))
	}
	return domain.Recommendation{
		Priority: 1,
		Category: domain.CategoryDebt,
		Title:    "Eliminate high-interest debt",
		Description: fmt.Sprintf("%d liabilit%s carry rates above %s%% APR, totaling $%s. "+
			"Paying these down is a guaranteed return at the debt's rate.",
			len(debts), pluralY(len(debts)), highInterestRate.StringFixed(0), total.StringFixed(2)),
		PotentialSavings: total.Mul(highInterestRate).Div(decimal.NewFromInt(100)),
		ActionItems:      items,
	}
}

func utilizationRecommendation(liabilities []domain.Liability) (domain.Recommendation, bool) {
	balance, limit := decimal.Zero, decimal.Zero
	for _, l := range liabilities {
		if l.IsRevolving && l.CreditLimit.IsPositive() {
			balance = balance.Add(l.CurrentBalance)
			limit = limit.Add(l.CreditLimit)
		}
	}
	if !limit.IsPositive() {
		return domain.Recommendation{}, false
	}
	utilization := balance.Div(limit)
	if !utilization.GreaterThan(utilizationCeiling) {
		return domain.Recommendation{}, false
	}
	paydown := balance.Sub(limit.Mul(utilizationCeiling))
	return domain.Recommendation{
		Priority: 2,
		Category: domain.CategoryDebt,
		Title:    "Reduce credit utilization",
		Description: fmt.Sprintf("Revolving balances use %s%% of available credit. "+
			"Paying down $%s brings utilization to %s%%.",
			utilization.Mul(decimal.NewFromInt(100)).StringFixed(1),
			paydown.StringFixed(2),
			utilizationCeiling.Mul(decimal.NewFromInt(100)).StringFixed(0)),
		PotentialSavings: decimal.Zero,
		ActionItems: []string{
			fmt.Sprintf("Pay $%s toward revolving balances", paydown.StringFixed(2)),
		},
	}, true
}

func strategyRecommendation(strategies StrategySet) (domain.Recommendation, bool) {
	avalanche, minimum := strategies.Avalanche, strategies.Minimum
	if !avalanche.TotalInterest.LessThan(minimum.TotalInterest) {
		return domain.Recommendation{}, false
	}
	saved := minimum.TotalInterest.Sub(avalanche.TotalInterest)
	monthsSaved := minimum.MonthsToDebtFree - avalanche.MonthsToDebtFree
	return domain.Recommendation{
		Priority: 3,
		Category: domain.CategoryDebt,
		Title:    "Use the avalanche payoff strategy",
		Description: fmt.Sprintf("Directing $%s/month extra at the highest-rate debt first "+
			"saves $%s in interest and %d months versus minimum payments only.",
			avalanche.ExtraMonthly.StringFixed(2), saved.StringFixed(2), monthsSaved),
		PotentialSavings: saved,
		ActionItems:      avalancheOrderItems(avalanche.PayoffOrder),
	}, true
}

func avalancheOrderItems(order []string) []string {
	items := make([]string, 0, len(order))
	for i, name := range order {
		items = append(items, fmt.Sprintf("%d. %s", i+1, name))
	}
	return items
}

func emergencyFundRecommendation(profile domain.Profile, hasHighInterest bool) (domain.Recommendation, bool) {
	cash := decimal.Zero
	for _, a := range profile.Assets {
		if a.Type == domain.AssetCash {
			cash = cash.Add(a.CurrentValue())
		}
	}
	target := profile.MonthlyExpenses.Mul(emergencyFundMonths)
	if !target.IsPositive() || !cash.LessThan(target) {
		return domain.Recommendation{}, false
	}
	shortfall := target.Sub(cash)

	// High-interest debt comes first; the fund can wait its turn.
	priority := 4
	if hasHighInterest {
		priority = 5
	}
	return domain.Recommendation{
		Priority: priority,
		Category: domain.CategoryEmergency,
		Title:    "Build the emergency fund",
		Description: fmt.Sprintf("Cash reserves of $%s cover less than %s months of expenses. "+
			"The 6-month target of $%s leaves a $%s shortfall.",
			cash.StringFixed(2), emergencyFundMonths.StringFixed(0),
			target.StringFixed(2), shortfall.StringFixed(2)),
		PotentialSavings: decimal.Zero,
		ActionItems: []string{
			fmt.Sprintf("Set aside $%s in cash reserves", shortfall.StringFixed(2)),
		},
	}, true
}

func retirementRecommendation(assets []domain.Asset) (domain.Recommendation, bool) {
	contribution := decimal.Zero
	hasRetirement := false
	for _, a := range assets {
		if a.Type == domain.AssetRetirement {
			hasRetirement = true
			contribution = contribution.Add(a.MonthlyContribution)
		}
	}
	// Only advise on accounts the profile actually has; a missing
	// retirement account is a different conversation than a thin one.
	if !hasRetirement || !contribution.LessThan(retirementFloor) {
		return domain.Recommendation{}, false
	}
	return domain.Recommendation{
		Priority: 5,
		Category: domain.CategoryInvestment,
		Title:    "Increase retirement contributions",
		Description: fmt.Sprintf("Monthly retirement contributions of $%s are below the "+
			"$%s/month target. Pretax contributions also lower taxable income.",
			contribution.StringFixed(2), retirementFloor.StringFixed(0)),
		PotentialSavings: decimal.Zero,
		ActionItems: []string{
			fmt.Sprintf("Raise contributions toward $%s/month", retirementFloor.StringFixed(0)),
		},
	}, true
}

func metalsRecommendation(assets []domain.Asset) (domain.Recommendation, bool) {
	metals, total := decimal.Zero, decimal.Zero
	for _, a := range assets {
		value := a.CurrentValue()
		total = total.Add(value)
		if a.Type == domain.AssetMetal {
			metals = metals.Add(value)
		}
	}
	if !total.IsPositive() {
		return domain.Recommendation{}, false
	}
	share := metals.Div(total)
	if !share.GreaterThan(metalsAllocationCap) {
		return domain.Recommendation{}, false
	}
	return domain.Recommendation{
		Priority: 6,
		Category: domain.CategoryInvestment,
		Title:    "Rebalance precious-metals allocation",
		Description: fmt.Sprintf("Metals make up %s%% of total assets, above the %s%% "+
			"concentration guideline. Consider diversifying into income-producing assets.",
			share.Mul(decimal.NewFromInt(100)).StringFixed(1),
			metalsAllocationCap.Mul(decimal.NewFromInt(100)).StringFixed(0)),
		PotentialSavings: decimal.Zero,
	}, true
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

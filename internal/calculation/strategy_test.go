package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwadvisor/networth-advisor/internal/domain"
)

func twoRateDebts() []domain.Liability {
	return []domain.Liability{
		{
			ID:             "a",
			Name:           "High Rate Card",
			CurrentBalance: decimal.NewFromInt(1000),
			InterestRate:   decimal.NewFromInt(20),
			MonthlyPayment: decimal.NewFromInt(50),
		},
		{
			ID:             "b",
			Name:           "Low Rate Loan",
			CurrentBalance: decimal.NewFromInt(1000),
			InterestRate:   decimal.NewFromInt(5),
			MonthlyPayment: decimal.NewFromInt(50),
		},
	}
}

func TestSimulatePayoffZeroLiabilities(t *testing.T) {
	outcome := SimulatePayoff(nil, PayoffPlan{
		Strategy:     domain.StrategyAvalanche,
		ExtraMonthly: decimal.NewFromInt(500),
	})

	assert.Equal(t, 0, outcome.MonthsToDebtFree)
	assert.True(t, outcome.TotalInterest.IsZero())
	assert.Empty(t, outcome.PayoffOrder)
	assert.True(t, outcome.RemainingBalance.IsZero())
}

func TestAvalanchePaysHighestRateFirst(t *testing.T) {
	outcome := SimulatePayoff(twoRateDebts(), PayoffPlan{
		Strategy:     domain.StrategyAvalanche,
		ExtraMonthly: decimal.NewFromInt(100),
	})

	require.NotEmpty(t, outcome.PayoffOrder)
	assert.Equal(t, "High Rate Card", outcome.PayoffOrder[0])
	assert.True(t, outcome.RemainingBalance.IsZero())
}

func TestAvalancheBeatsSnowballOnRateSplit(t *testing.T) {
	extra := decimal.NewFromInt(100)
	avalanche := SimulatePayoff(twoRateDebts(), PayoffPlan{
		Strategy: domain.StrategyAvalanche, ExtraMonthly: extra,
	})
	snowball := SimulatePayoff(twoRateDebts(), PayoffPlan{
		Strategy: domain.StrategySnowball, ExtraMonthly: extra,
	})

	assert.True(t, avalanche.TotalInterest.LessThanOrEqual(snowball.TotalInterest),
		"avalanche %s vs snowball %s", avalanche.TotalInterest, snowball.TotalInterest)
}

func TestSnowballPaysSmallestBalanceFirst(t *testing.T) {
	debts := []domain.Liability{
		{
			ID: "big", Name: "Big Loan",
			CurrentBalance: decimal.NewFromInt(8000),
			InterestRate:   decimal.NewFromInt(18),
			MonthlyPayment: decimal.NewFromInt(200),
		},
		{
			ID: "small", Name: "Small Card",
			CurrentBalance: decimal.NewFromInt(500),
			InterestRate:   decimal.NewFromInt(5),
			MonthlyPayment: decimal.NewFromInt(25),
		},
	}
	outcome := SimulatePayoff(debts, PayoffPlan{
		Strategy:     domain.StrategySnowball,
		ExtraMonthly: decimal.NewFromInt(150),
	})

	require.NotEmpty(t, outcome.PayoffOrder)
	assert.Equal(t, "Small Card", outcome.PayoffOrder[0])
}

func TestMonthsDecreaseAsExtraIncreases(t *testing.T) {
	previous := domain.MaxSimulationMonths + 1
	for _, extra := range []int64{0, 100, 250, 500} {
		outcome := SimulatePayoff(twoRateDebts(), PayoffPlan{
			Strategy:     domain.StrategyAvalanche,
			ExtraMonthly: decimal.NewFromInt(extra),
		})
		assert.Less(t, outcome.MonthsToDebtFree, previous,
			"extra=%d should pay off faster than the previous step", extra)
		previous = outcome.MonthsToDebtFree
	}
}

func TestMinimumStrategyIgnoresExtraBudget(t *testing.T) {
	set := ComparePayoffStrategies(twoRateDebts(), decimal.NewFromInt(500), false)

	assert.True(t, set.Minimum.ExtraMonthly.IsZero())
	assert.Greater(t, set.Minimum.MonthsToDebtFree, set.Avalanche.MonthsToDebtFree)
	assert.True(t, set.Avalanche.TotalInterest.LessThan(set.Minimum.TotalInterest))
}

func TestLumpSumShortensPayoff(t *testing.T) {
	base := SimulatePayoff(twoRateDebts(), PayoffPlan{
		Strategy:     domain.StrategyAvalanche,
		ExtraMonthly: decimal.NewFromInt(100),
	})
	withLump := SimulatePayoff(twoRateDebts(), PayoffPlan{
		Strategy:     domain.StrategyAvalanche,
		ExtraMonthly: decimal.NewFromInt(100),
		LumpSum:      decimal.NewFromInt(1000),
	})

	assert.Less(t, withLump.MonthsToDebtFree, base.MonthsToDebtFree)
	assert.True(t, withLump.TotalInterest.LessThan(base.TotalInterest))
	// The lump covers the high-rate balance entirely before month 1.
	require.NotEmpty(t, withLump.PayoffOrder)
	assert.Equal(t, "High Rate Card", withLump.PayoffOrder[0])
}

func TestEmergencyFundCompetesAsVirtualDebt(t *testing.T) {
	plan := PayoffPlan{
		Strategy:     domain.StrategyAvalanche,
		ExtraMonthly: decimal.NewFromInt(200),
		EmergencyFund: &EmergencyFundGoal{
			Needed:      decimal.NewFromInt(3000),
			VirtualRate: decimal.NewFromInt(99), // outranks every real debt
		},
	}
	withFund := SimulatePayoff(twoRateDebts(), plan)
	withoutFund := SimulatePayoff(twoRateDebts(), PayoffPlan{
		Strategy:     domain.StrategyAvalanche,
		ExtraMonthly: decimal.NewFromInt(200),
	})

	// Extra funds build the reserve first, so the debts wait longer.
	assert.Greater(t, withFund.MonthsToDebtFree, withoutFund.MonthsToDebtFree)
	// The fund never shows up in the debt elimination list.
	assert.NotContains(t, withFund.PayoffOrder, "Emergency Fund")
	assert.True(t, withFund.RemainingBalance.IsZero())
}

func TestSimulationCapIsNormalTermination(t *testing.T) {
	stuck := []domain.Liability{{
		ID: "frozen", Name: "Frozen Loan",
		CurrentBalance: decimal.NewFromInt(10000),
		InterestRate:   decimal.Zero,
		MonthlyPayment: decimal.Zero,
	}}
	outcome := SimulatePayoff(stuck, PayoffPlan{Strategy: domain.StrategyMinimum})

	assert.Equal(t, domain.MaxSimulationMonths, outcome.MonthsToDebtFree)
	assert.True(t, outcome.RemainingBalance.GreaterThan(decimal.Zero))
	assert.Empty(t, outcome.PayoffOrder)
}

func TestSimulationIsIdempotent(t *testing.T) {
	debts := twoRateDebts()
	plan := PayoffPlan{
		Strategy:      domain.StrategyHybrid,
		ExtraMonthly:  decimal.NewFromInt(75),
		CaptureMonths: true,
	}

	first := SimulatePayoff(debts, plan)
	second := SimulatePayoff(debts, plan)

	assert.Equal(t, first, second)
	// Input snapshots stay untouched.
	assert.True(t, debts[0].CurrentBalance.Equal(decimal.NewFromInt(1000)))
}

func TestCaptureMonthsRecordsDecreasingDebt(t *testing.T) {
	outcome := SimulatePayoff(twoRateDebts(), PayoffPlan{
		Strategy:      domain.StrategyAvalanche,
		ExtraMonthly:  decimal.NewFromInt(100),
		CaptureMonths: true,
	})

	require.NotEmpty(t, outcome.Months)
	assert.Equal(t, 1, outcome.Months[0].Month)
	last := outcome.Months[len(outcome.Months)-1]
	assert.Equal(t, outcome.MonthsToDebtFree, last.Month)
	assert.True(t, last.TotalDebt.IsZero())
	assert.True(t, outcome.Months[0].TotalDebt.GreaterThan(last.TotalDebt))
}

func TestBestPrefersLowestInterest(t *testing.T) {
	set := ComparePayoffStrategies(twoRateDebts(), decimal.NewFromInt(100), false)
	best := set.Best()

	for _, candidate := range []domain.StrategyOutcome{set.Avalanche, set.Snowball, set.Hybrid} {
		assert.True(t, best.TotalInterest.LessThanOrEqual(candidate.TotalInterest))
	}
}

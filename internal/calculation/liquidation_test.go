package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwadvisor/networth-advisor/internal/domain"
)

func stockLot(name string, value, basis int64) domain.AssetLot {
	return domain.AssetLot{
		AssetID:        name,
		Name:           name,
		Type:           domain.AssetStock,
		QuantityToSell: decimal.NewFromInt(value),
		TotalQuantity:  decimal.NewFromInt(value),
		UnitPrice:      decimal.NewFromInt(1),
		CostBasisTotal: decimal.NewFromInt(basis),
	}
}

func liquidationDebts() []domain.Liability {
	return []domain.Liability{
		{
			ID: "cc", Name: "Credit Card",
			CurrentBalance: decimal.NewFromInt(8000),
			InterestRate:   decimal.NewFromInt(22),
			MonthlyPayment: decimal.NewFromInt(200),
		},
		{
			ID: "car", Name: "Car Loan",
			CurrentBalance: decimal.NewFromInt(12000),
			InterestRate:   decimal.NewFromInt(6),
			MonthlyPayment: decimal.NewFromInt(350),
		},
	}
}

func TestImmediateSaleConservation(t *testing.T) {
	plan := LiquidationPlan{
		Lots:        []domain.AssetLot{stockLot("VTI", 20000, 15000)},
		Liabilities: liquidationDebts(),
		Tax:         singleFiler(40000), // headroom 7025, gain 5000 fits
		Strategy:    domain.StrategyAvalanche,
	}
	result := SimulateImmediateSale(plan)

	assert.True(t, result.TotalTax.IsZero(), "gain under headroom owes no tax")
	assert.True(t, result.NetProceeds.Equal(result.TotalProceeds.Sub(result.TotalTax)))
	assert.True(t, result.TotalProceeds.Equal(decimal.NewFromInt(20000)))
	assert.True(t, result.TotalGain.Equal(decimal.NewFromInt(5000)))
}

func TestImmediateSaleRetiresDebtsInPriorityOrder(t *testing.T) {
	plan := LiquidationPlan{
		Lots:        []domain.AssetLot{stockLot("VTI", 25000, 25000)}, // no gain, no tax
		Liabilities: liquidationDebts(),
		Tax:         singleFiler(40000),
		Strategy:    domain.StrategyAvalanche,
	}
	result := SimulateImmediateSale(plan)

	// 25000 clears both balances before the first month.
	assert.Equal(t, 0, result.MonthsToDebtFree)
	assert.True(t, result.RemainingDebt.IsZero())
	require.Len(t, result.Events, 1)
	require.Len(t, result.Events[0].Allocations, 2)
	// Avalanche priority: the 22% card first.
	assert.Equal(t, "Credit Card", result.Events[0].Allocations[0].LiabilityName)
	assert.True(t, result.Events[0].Allocations[0].PaidOff)
	assert.Equal(t, []string{"Credit Card", "Car Loan"}, result.DebtsEliminated)
}

func TestImmediateSaleEmergencyAllocationComesFirst(t *testing.T) {
	plan := LiquidationPlan{
		Lots:                []domain.AssetLot{stockLot("VTI", 10000, 10000)},
		Liabilities:         liquidationDebts(),
		Tax:                 singleFiler(40000),
		Strategy:            domain.StrategyAvalanche,
		EmergencyAllocation: decimal.NewFromInt(4000),
	}
	result := SimulateImmediateSale(plan)

	require.Len(t, result.Events, 1)
	assert.True(t, result.Events[0].EmergencyFunded.Equal(decimal.NewFromInt(4000)))
	// Only 6000 reaches the debts.
	allocated := decimal.Zero
	for _, a := range result.Events[0].Allocations {
		allocated = allocated.Add(a.Amount)
	}
	assert.True(t, allocated.Equal(decimal.NewFromInt(6000)), "got %s", allocated)
}

func TestImmediateSaleEmptyLots(t *testing.T) {
	result := SimulateImmediateSale(LiquidationPlan{
		Liabilities: liquidationDebts(),
		Tax:         singleFiler(40000),
		Strategy:    domain.StrategyAvalanche,
	})

	assert.Empty(t, result.Events)
	assert.True(t, result.TotalProceeds.IsZero())
	assert.True(t, result.TotalTax.IsZero())
	// Debts still amortize on their own payments.
	assert.Greater(t, result.MonthsToDebtFree, 0)
}

func TestTaxOptimizedDegeneratesToImmediateUnderHeadroom(t *testing.T) {
	plan := LiquidationPlan{
		Lots:        []domain.AssetLot{stockLot("VTI", 20000, 15000)},
		Liabilities: liquidationDebts(),
		Tax:         singleFiler(40000), // gain 5000 < headroom 7025
		Strategy:    domain.StrategyAvalanche,
	}
	immediate := SimulateImmediateSale(plan)
	optimized := SimulateTaxOptimizedSale(plan)

	assert.Equal(t, "tax_optimized", optimized.StrategyName)
	assert.Equal(t, immediate.MonthsToDebtFree, optimized.MonthsToDebtFree)
	assert.True(t, optimized.TotalTax.Equal(immediate.TotalTax))
	assert.True(t, optimized.NetProceeds.Equal(immediate.NetProceeds))
}

func TestTaxOptimizedSpreadsAcrossYears(t *testing.T) {
	// Gain 14050 = exactly two years of 7025 headroom.
	plan := LiquidationPlan{
		Lots:        []domain.AssetLot{stockLot("NVDA", 20000, 5950)},
		Liabilities: liquidationDebts(),
		Tax:         singleFiler(40000),
		Strategy:    domain.StrategyAvalanche,
	}
	result := SimulateTaxOptimizedSale(plan)

	require.Len(t, result.Events, 2)
	assert.Equal(t, 1, result.Events[0].Year)
	assert.Equal(t, 2, result.Events[1].Year)
	// Each year fills the headroom exactly; nothing is ever taxed.
	assert.True(t, result.TotalTax.IsZero(), "got %s", result.TotalTax)
	assert.True(t, result.Events[0].GainRealized.Equal(decimal.NewFromInt(7025)))
	assert.True(t, result.TotalGain.Equal(decimal.NewFromInt(14050)))
	assert.Empty(t, result.UnsoldLots)
	// Year 2's sale happens after a year of payoff simulation.
	assert.Equal(t, 13, result.Events[1].Month)
}

func TestTaxOptimizedZeroHeadroomSchedulesNothing(t *testing.T) {
	plan := LiquidationPlan{
		Lots:        []domain.AssetLot{stockLot("NVDA", 20000, 5000)},
		Liabilities: liquidationDebts(),
		Tax:         singleFiler(100000), // above every threshold
		Strategy:    domain.StrategyAvalanche,
	}
	result := SimulateTaxOptimizedSale(plan)

	assert.Empty(t, result.Events)
	assert.True(t, result.TotalProceeds.IsZero())
	assert.Equal(t, []string{"NVDA"}, result.UnsoldLots)
	// The payoff still runs to completion on regular payments.
	assert.Greater(t, result.MonthsToDebtFree, 0)
}

func TestTaxOptimizedTenYearCapLeavesRemainder(t *testing.T) {
	// Gain 100000 against 7025/year of headroom needs 15 years; the
	// schedule stops at ten and reports the unsold remainder.
	plan := LiquidationPlan{
		Lots:        []domain.AssetLot{stockLot("FOUNDER", 110000, 10000)},
		Liabilities: liquidationDebts(),
		Tax:         singleFiler(40000),
		Strategy:    domain.StrategyAvalanche,
	}
	result := SimulateTaxOptimizedSale(plan)

	assert.Len(t, result.Events, domain.MaxLiquidationYears)
	assert.Equal(t, []string{"FOUNDER"}, result.UnsoldLots)
	assert.True(t, result.TotalTax.IsZero())
	assert.InDelta(t, 70250, result.TotalGain.InexactFloat64(), 0.01)
}

func TestCompareLiquidationStrategies(t *testing.T) {
	plan := LiquidationPlan{
		Lots:        []domain.AssetLot{stockLot("NVDA", 30000, 5000)},
		Liabilities: liquidationDebts(),
		Tax:         singleFiler(40000),
		Strategy:    domain.StrategyAvalanche,
	}
	c := CompareLiquidationStrategies(plan)

	assert.True(t, c.TaxSaved.Equal(c.Immediate.TotalTax.Sub(c.TaxOptimized.TotalTax)))
	assert.True(t, c.NetBenefit.Equal(c.TaxSaved.Sub(c.ExtraInterest)))
	if c.NetBenefit.IsPositive() {
		assert.Equal(t, "tax_optimized", c.Recommended)
	} else {
		assert.Equal(t, "immediate", c.Recommended)
	}
}

func TestContributionTradeoffFindsZeroTaxPoint(t *testing.T) {
	// Income 50000, gain 5000. Contributing c gives headroom c-2975, so
	// any step of at least 7975 zeroes the tax.
	plan := LiquidationPlan{
		Lots:        []domain.AssetLot{stockLot("VTI", 10000, 5000)},
		Liabilities: liquidationDebts(),
		Tax:         singleFiler(50000),
		Strategy:    domain.StrategyAvalanche,
	}
	result := ContributionTradeoff(plan, false, 10)

	require.Len(t, result.Points, 11)
	assert.True(t, result.Points[0].Contribution.IsZero())
	assert.True(t, result.Points[0].Tax.GreaterThan(decimal.Zero))
	require.NotNil(t, result.Optimal)
	assert.True(t, result.Optimal.GreaterThanOrEqual(decimal.NewFromInt(7975)))
	assert.True(t, result.Optimal.LessThanOrEqual(domain.MaxPretaxContribution))

	// Tax never increases as the contribution grows.
	for i := 1; i < len(result.Points); i++ {
		assert.True(t, result.Points[i].Tax.LessThanOrEqual(result.Points[i-1].Tax))
	}
}

func TestContributionTradeoffCatchupRaisesLimit(t *testing.T) {
	plan := LiquidationPlan{
		Lots:        []domain.AssetLot{stockLot("VTI", 10000, 5000)},
		Liabilities: liquidationDebts(),
		Tax:         singleFiler(50000),
		Strategy:    domain.StrategyAvalanche,
	}
	result := ContributionTradeoff(plan, true, 10)

	last := result.Points[len(result.Points)-1]
	expected := domain.MaxPretaxContribution.Add(domain.MaxCatchupContribution)
	assert.True(t, last.Contribution.Equal(expected), "got %s", last.Contribution)
}

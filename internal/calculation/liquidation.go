package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nwadvisor/networth-advisor/internal/domain"
)

// LiquidationPlan is the input to both sale strategies: the lots selected
// for sale, the debts the proceeds should retire, and how the payoff
// months in between are simulated.
type LiquidationPlan struct {
	Lots        []domain.AssetLot
	Liabilities []domain.Liability
	Tax         domain.TaxSettings

	Strategy     domain.Strategy
	ExtraMonthly decimal.Decimal

	// EmergencyAllocation is carved out of the first sale's net proceeds
	// before anything reaches the debts.
	EmergencyAllocation decimal.Decimal

	CaptureMonths bool
}

func lotNames(lots []domain.AssetLot) []string {
	names := make([]string, 0, len(lots))
	for _, lot := range lots {
		names = append(names, lot.Name)
	}
	return names
}

func sumLots(lots []domain.AssetLot) (proceeds, gain decimal.Decimal) {
	proceeds, gain = decimal.Zero, decimal.Zero
	for _, lot := range lots {
		proceeds = proceeds.Add(lot.ValueToSell())
		gain = gain.Add(lot.Gain())
	}
	return proceeds, gain
}

// SimulateImmediateSale sells every selected lot in month 1, pays the tax
// on the whole realized gain at once, and prepays the debts with the net
// proceeds before the month loop starts.
func SimulateImmediateSale(plan LiquidationPlan) domain.SimulationResult {
	return simulateImmediate(plan, "immediate")
}

func simulateImmediate(plan LiquidationPlan, name string) domain.SimulationResult {
	proceeds, gain := sumLots(plan.Lots)
	tax := CapitalGainsTax(gain, plan.Tax)
	net := proceeds.Sub(tax)

	funded := decimal.Min(plan.EmergencyAllocation, net)
	if funded.IsNegative() {
		funded = decimal.Zero
	}
	lump := net.Sub(funded)

	sim := newSimulator(plan.Liabilities, PayoffPlan{
		Strategy:      plan.Strategy,
		ExtraMonthly:  plan.ExtraMonthly,
		CaptureMonths: plan.CaptureMonths,
	})
	allocations := sim.applyLump(lump)
	sim.runToCompletion()

	result := domain.SimulationResult{
		StrategyName:     name,
		TotalProceeds:    proceeds,
		TotalGain:        gain,
		TotalTax:         tax,
		NetProceeds:      net,
		MonthsToDebtFree: sim.month,
		TotalInterest:    sim.totalInterest,
		DebtsEliminated:  append([]string(nil), sim.payoffOrder...),
		RemainingDebt:    sim.totalDebt(),
		YearsToComplete:  yearsFromMonths(sim.month, 1),
	}
	if len(plan.Lots) > 0 {
		result.Events = []domain.SaleEvent{{
			Year:            1,
			Month:           1,
			LotsSold:        lotNames(plan.Lots),
			Proceeds:        proceeds,
			GainRealized:    gain,
			TaxPaid:         tax,
			EmergencyFunded: funded,
			Allocations:     allocations,
		}}
	}
	return result
}

// workingLot tracks how much of a selected lot is still unsold across the
// spread-sale years.
type workingLot struct {
	lot       domain.AssetLot
	remaining decimal.Decimal // fraction of QuantityToSell, 1 down to 0
}

func (w *workingLot) unsoldPortion() domain.AssetLot {
	return w.lot.Fraction(w.remaining)
}

func (w *workingLot) open() bool {
	return w.remaining.IsPositive()
}

// SimulateTaxOptimizedSale spreads lot sales across tax years so each
// year's realized gain stays inside the 0% headroom. When the whole gain
// already fits, it degenerates to the immediate sale. Scheduling stops
// after ten tax years; lots still unsold at the cap are left unscheduled
// and reported, which mirrors how spreading was originally bounded.
func SimulateTaxOptimizedSale(plan LiquidationPlan) domain.SimulationResult {
	const name = "tax_optimized"

	_, totalGain := sumLots(plan.Lots)
	headroom := plan.Tax.GainHeadroom()
	if !totalGain.GreaterThan(headroom) {
		return simulateImmediate(plan, name)
	}

	working := make([]*workingLot, 0, len(plan.Lots))
	for _, lot := range plan.Lots {
		if lot.QuantityToSell.IsPositive() {
			working = append(working, &workingLot{lot: lot, remaining: decimal.NewFromInt(1)})
		}
	}

	sim := newSimulator(plan.Liabilities, PayoffPlan{
		Strategy:      plan.Strategy,
		ExtraMonthly:  plan.ExtraMonthly,
		CaptureMonths: plan.CaptureMonths,
	})

	result := domain.SimulationResult{StrategyName: name}
	for year := 1; year <= domain.MaxLiquidationYears; year++ {
		if !anyOpen(working) {
			break
		}

		sold, proceeds, gain := fillYear(working, headroom)
		if len(sold) == 0 {
			// Zero headroom schedules nothing; further years change nothing.
			break
		}
		tax := EffectiveTaxOnSale(gain, decimal.Zero, plan.Tax)
		net := proceeds.Sub(tax)

		funded := decimal.Zero
		if year == 1 {
			funded = decimal.Min(plan.EmergencyAllocation, net)
			if funded.IsNegative() {
				funded = decimal.Zero
			}
		}

		allocations := sim.applyLump(net.Sub(funded))
		result.Events = append(result.Events, domain.SaleEvent{
			Year:            year,
			Month:           sim.month + 1,
			LotsSold:        sold,
			Proceeds:        proceeds,
			GainRealized:    gain,
			TaxPaid:         tax,
			EmergencyFunded: funded,
			Allocations:     allocations,
		})
		result.TotalProceeds = result.TotalProceeds.Add(proceeds)
		result.TotalGain = result.TotalGain.Add(gain)
		result.TotalTax = result.TotalTax.Add(tax)

		sim.runMonths(domain.MonthsPerYear)
	}
	sim.runToCompletion()

	result.NetProceeds = result.TotalProceeds.Sub(result.TotalTax)
	result.MonthsToDebtFree = sim.month
	result.TotalInterest = sim.totalInterest
	result.DebtsEliminated = append([]string(nil), sim.payoffOrder...)
	result.RemainingDebt = sim.totalDebt()

	lastSaleYear := 0
	if n := len(result.Events); n > 0 {
		lastSaleYear = result.Events[n-1].Year
	}
	result.YearsToComplete = yearsFromMonths(sim.month, lastSaleYear)

	for _, w := range working {
		if w.open() {
			result.UnsoldLots = append(result.UnsoldLots, w.lot.Name)
		}
	}
	return result
}

func anyOpen(working []*workingLot) bool {
	for _, w := range working {
		if w.open() {
			return true
		}
	}
	return false
}

// fillYear greedily schedules sales for one tax year: whole remaining
// lots while they fit in the headroom, then a fractional slice of the
// first lot that would overflow it. Loss lots consume no headroom and
// always sell whole. Returns the names sold with the year's proceeds and
// realized gain.
func fillYear(working []*workingLot, headroom decimal.Decimal) (sold []string, proceeds, gain decimal.Decimal) {
	room := headroom
	proceeds, gain = decimal.Zero, decimal.Zero
	for _, w := range working {
		if !w.open() {
			continue
		}
		portion := w.unsoldPortion()
		lotGain := portion.Gain()

		switch {
		case !lotGain.IsPositive():
			// A loss or break-even lot is free to realize.
			w.remaining = decimal.Zero
		case !lotGain.GreaterThan(room):
			room = room.Sub(lotGain)
			w.remaining = decimal.Zero
		case room.IsPositive():
			// Truncated so rounding can never push the realized gain
			// past the headroom.
			frac := room.Div(lotGain).Truncate(12)
			portion = portion.Fraction(frac)
			lotGain = portion.Gain()
			w.remaining = w.remaining.Mul(decimal.NewFromInt(1).Sub(frac))
			room = decimal.Zero
		default:
			continue
		}

		sold = append(sold, portion.Name)
		proceeds = proceeds.Add(portion.ValueToSell())
		gain = gain.Add(lotGain)
	}
	return sold, proceeds, gain
}

func yearsFromMonths(months, lastSaleYear int) int {
	years := (months + domain.MonthsPerYear - 1) / domain.MonthsPerYear
	if lastSaleYear > years {
		years = lastSaleYear
	}
	return years
}

// LiquidationComparison puts both sale strategies side by side and names
// the one with the better net benefit.
type LiquidationComparison struct {
	Immediate    domain.SimulationResult `json:"immediate"`
	TaxOptimized domain.SimulationResult `json:"taxOptimized"`

	TaxSaved      decimal.Decimal `json:"taxSaved"`      // immediate tax - spread tax
	ExtraInterest decimal.Decimal `json:"extraInterest"` // spread interest - immediate interest
	ExtraMonths   int             `json:"extraMonths"`
	NetBenefit    decimal.Decimal `json:"netBenefit"` // taxSaved - extraInterest
	Recommended   string          `json:"recommended"`
}

// CompareLiquidationStrategies runs both strategies on the same plan. The
// spread sale is recommended only when the tax it avoids outweighs the
// interest the slower payoff costs.
func CompareLiquidationStrategies(plan LiquidationPlan) LiquidationComparison {
	immediate := SimulateImmediateSale(plan)
	optimized := SimulateTaxOptimizedSale(plan)

	c := LiquidationComparison{
		Immediate:     immediate,
		TaxOptimized:  optimized,
		TaxSaved:      immediate.TotalTax.Sub(optimized.TotalTax),
		ExtraInterest: optimized.TotalInterest.Sub(immediate.TotalInterest),
		ExtraMonths:   optimized.MonthsToDebtFree - immediate.MonthsToDebtFree,
	}
	c.NetBenefit = c.TaxSaved.Sub(c.ExtraInterest)
	if c.NetBenefit.IsPositive() {
		c.Recommended = optimized.StrategyName
	} else {
		c.Recommended = immediate.StrategyName
	}
	return c
}

// TradeoffPoint is one sample of the pretax-contribution sweep: what a
// given additional 401(k) contribution does to the sale tax, the payoff
// timeline, and projected net worth ten years out.
type TradeoffPoint struct {
	Contribution     decimal.Decimal `json:"contribution"` // annual pretax
	Tax              decimal.Decimal `json:"tax"`
	MonthsToDebtFree int             `json:"monthsToDebtFree"`
	NetWorthDelta    decimal.Decimal `json:"netWorthDelta"` // vs zero contribution, 10 years out
}

// ContributionTradeoff sweeps the additional pretax contribution from
// zero to the elective-deferral limit (plus catch-up when requested) and
// reports, per step, the capital-gains tax on an immediate sale and the
// resulting payoff timeline. Contributing lowers taxable income, which
// widens the 0% headroom, but also diverts monthly cash from the debt
// budget. OptimalContribution is the smallest contribution that zeroes
// the tax, when one exists within the limit.
type TradeoffResult struct {
	Points  []TradeoffPoint  `json:"points"`
	Optimal *decimal.Decimal `json:"optimal,omitempty"`
}

func ContributionTradeoff(plan LiquidationPlan, catchup bool, steps int) TradeoffResult {
	limit := domain.MaxPretaxContribution
	if catchup {
		limit = limit.Add(domain.MaxCatchupContribution)
	}
	if steps < 1 {
		steps = 1
	}
	stepSize := limit.Div(decimal.NewFromInt(int64(steps)))

	_, totalGain := sumLots(plan.Lots)
	monthly := decimal.NewFromInt(int64(domain.MonthsPerYear))

	var result TradeoffResult
	baseline := decimal.Zero
	for i := 0; i <= steps; i++ {
		contribution := stepSize.Mul(decimal.NewFromInt(int64(i)))

		tax := plan.Tax
		tax.AdditionalPretaxContribution = contribution
		saleTax := CapitalGainsTax(totalGain, tax)

		// Money deferred into the 401(k) is money not available for
		// extra debt payments.
		outcome := SimulatePayoff(plan.Liabilities, PayoffPlan{
			Strategy:               plan.Strategy,
			ExtraMonthly:           plan.ExtraMonthly,
			LumpSum:                sumProceedsNet(plan.Lots, tax),
			MonthlyBudgetReduction: contribution.Div(monthly),
		})

		fv := FutureValue(contribution.Div(monthly), tradeoffHorizonMonths, defaultTradeoffReturn, decimal.Zero)

		point := TradeoffPoint{
			Contribution:     contribution,
			Tax:              saleTax,
			MonthsToDebtFree: outcome.MonthsToDebtFree,
			NetWorthDelta:    fv.Sub(saleTax),
		}
		if i == 0 {
			baseline = point.NetWorthDelta
		}
		point.NetWorthDelta = point.NetWorthDelta.Sub(baseline)
		result.Points = append(result.Points, point)

		if result.Optimal == nil && saleTax.IsZero() {
			c := contribution
			result.Optimal = &c
		}
	}
	return result
}

// defaultTradeoffReturn is the annual return assumed for deferred
// contributions in the trade-off sweep, over a ten-year horizon.
var defaultTradeoffReturn = decimal.NewFromInt(7)

const tradeoffHorizonMonths = 10 * domain.MonthsPerYear

func sumProceedsNet(lots []domain.AssetLot, tax domain.TaxSettings) decimal.Decimal {
	proceeds, gain := sumLots(lots)
	return proceeds.Sub(CapitalGainsTax(gain, tax))
}

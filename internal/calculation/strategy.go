package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nwadvisor/networth-advisor/internal/domain"
)

// EmergencyFundGoal lets an unfunded emergency reserve compete with real
// debts for extra payments. The virtual rate exists only for ordering; no
// interest accrues on the shortfall and it has no minimum payment.
type EmergencyFundGoal struct {
	Needed      decimal.Decimal
	VirtualRate decimal.Decimal // annual, percent
}

// PayoffPlan configures one strategy simulation run.
type PayoffPlan struct {
	Strategy domain.Strategy

	// ExtraMonthly is allocated on top of minimum payments each month.
	ExtraMonthly decimal.Decimal

	// LumpSum is applied across liabilities in priority order before the
	// first month.
	LumpSum decimal.Decimal

	// MonthlyBudgetReduction shrinks the extra pool, floored at zero.
	// Used to model cash diverted into pretax retirement contributions.
	MonthlyBudgetReduction decimal.Decimal

	// EmergencyFund, when set, joins the priority order as a virtual debt.
	EmergencyFund *EmergencyFundGoal

	// CaptureMonths records a per-month total-debt series for charting.
	CaptureMonths bool
}

// workingDebt is one entry of the ephemeral simulation state. Balances
// here are working copies; the source snapshots are never mutated.
type workingDebt struct {
	target      domain.PayoffTarget
	name        string
	balance     decimal.Decimal
	initial     decimal.Decimal
	minimum     decimal.Decimal
	monthlyRate decimal.Decimal
	sortKey     decimal.Decimal
	paid        bool
}

// simulator walks the monthly payoff loop for one strategy. It is also
// driven incrementally by the liquidation planner, which interleaves
// yearly lump sums with runs of regular months.
type simulator struct {
	debts         []*workingDebt // priority order
	strategy      domain.Strategy
	extra         decimal.Decimal
	reduction     decimal.Decimal
	freed         decimal.Decimal // minimums of paid-off debts, effective next month
	month         int
	totalInterest decimal.Decimal
	payoffOrder   []string
	snapshots     []domain.MonthSnapshot
	capture       bool
}

func sortKeyFor(strategy domain.Strategy, annualRate, balance decimal.Decimal) decimal.Decimal {
	switch strategy {
	case domain.StrategySnowball:
		return balance.Neg() // smallest balance first
	case domain.StrategyHybrid:
		return annualRate.Mul(balance)
	default: // avalanche and minimum
		return annualRate
	}
}

func newSimulator(liabilities []domain.Liability, plan PayoffPlan) *simulator {
	s := &simulator{
		strategy:  plan.Strategy,
		extra:     plan.ExtraMonthly,
		reduction: plan.MonthlyBudgetReduction,
		capture:   plan.CaptureMonths,
	}
	for _, l := range liabilities {
		if !l.CurrentBalance.GreaterThan(decimal.Zero) {
			continue
		}
		s.debts = append(s.debts, &workingDebt{
			target:      domain.Debt(l.ID),
			name:        l.Name,
			balance:     l.CurrentBalance,
			initial:     l.CurrentBalance,
			minimum:     l.EffectiveMinimum(),
			monthlyRate: l.MonthlyRate(),
			sortKey:     sortKeyFor(plan.Strategy, l.InterestRate, l.CurrentBalance),
		})
	}
	if ef := plan.EmergencyFund; ef != nil && ef.Needed.GreaterThan(decimal.Zero) {
		s.debts = append(s.debts, &workingDebt{
			target:  domain.EmergencyFund(),
			name:    "Emergency Fund",
			balance: ef.Needed,
			initial: ef.Needed,
			sortKey: sortKeyFor(plan.Strategy, ef.VirtualRate, ef.Needed),
		})
	}
	// Stable descending sort keeps snapshot order for ties.
	sort.SliceStable(s.debts, func(i, j int) bool {
		return s.debts[i].sortKey.GreaterThan(s.debts[j].sortKey)
	})
	return s
}

func (s *simulator) markPaid(d *workingDebt) {
	d.balance = decimal.Zero
	if d.paid {
		return
	}
	d.paid = true
	if d.target.Kind() == domain.TargetDebt {
		s.payoffOrder = append(s.payoffOrder, d.name)
		s.freed = s.freed.Add(d.minimum)
	}
}

// applyLump distributes a lump-sum prepayment across targets in priority
// order, recording the per-target breakdown. Freed minimum payments from
// debts retired here join the pool starting with the next month.
func (s *simulator) applyLump(amount decimal.Decimal) []domain.Allocation {
	var allocations []domain.Allocation
	remaining := amount
	for _, d := range s.debts {
		if !remaining.IsPositive() {
			break
		}
		if !d.balance.GreaterThan(decimal.Zero) {
			continue
		}
		pay := decimal.Min(remaining, d.balance)
		d.balance = d.balance.Sub(pay)
		remaining = remaining.Sub(pay)
		alloc := domain.Allocation{LiabilityName: d.name, Amount: pay}
		if !d.balance.GreaterThan(domain.BalanceEpsilon) {
			s.markPaid(d)
			alloc.PaidOff = true
		}
		allocations = append(allocations, alloc)
	}
	return allocations
}

// step advances the simulation by one month: accrue, pay minimums, then
// direct the extra pool at the first unpaid target in priority order.
func (s *simulator) step() {
	s.month++

	// Interest accrues on every open real debt. The emergency-fund
	// shortfall never accrues.
	for _, d := range s.debts {
		if d.target.IsEmergencyFund() || !d.balance.GreaterThan(decimal.Zero) {
			continue
		}
		interest := d.balance.Mul(d.monthlyRate)
		s.totalInterest = s.totalInterest.Add(interest)
		d.balance = d.balance.Add(interest)
	}

	// Minimum payments, capped at the remaining balance.
	for _, d := range s.debts {
		if d.target.IsEmergencyFund() || !d.balance.GreaterThan(decimal.Zero) {
			continue
		}
		pay := decimal.Min(d.minimum, d.balance)
		d.balance = d.balance.Sub(pay)
		if !d.balance.GreaterThan(domain.BalanceEpsilon) {
			s.markPaid(d)
		}
	}

	// The minimum-only strategy never reallocates anything.
	if s.strategy != domain.StrategyMinimum {
		pool := s.extra.Add(s.freed).Sub(s.reduction)
		if pool.IsPositive() {
			for _, d := range s.debts {
				if !d.balance.GreaterThan(domain.BalanceEpsilon) {
					continue
				}
				pay := decimal.Min(pool, d.balance)
				d.balance = d.balance.Sub(pay)
				if !d.balance.GreaterThan(domain.BalanceEpsilon) {
					s.markPaid(d)
				}
				// Extra funds target only the first open debt; a freed
				// payment becomes available the following month.
				break
			}
		}
	}

	if s.capture {
		s.snapshots = append(s.snapshots, domain.MonthSnapshot{
			Month:     s.month,
			TotalDebt: s.totalDebt(),
		})
	}
}

func (s *simulator) totalDebt() decimal.Decimal {
	total := decimal.Zero
	for _, d := range s.debts {
		if d.target.IsEmergencyFund() {
			continue
		}
		if d.balance.GreaterThan(domain.BalanceEpsilon) {
			total = total.Add(d.balance)
		}
	}
	return total
}

func (s *simulator) done() bool {
	for _, d := range s.debts {
		if d.balance.GreaterThan(domain.BalanceEpsilon) {
			return false
		}
	}
	return true
}

// runMonths steps at most n months, stopping early once everything is
// paid or the global cap is reached.
func (s *simulator) runMonths(n int) {
	for i := 0; i < n; i++ {
		if s.done() || s.month >= domain.MaxSimulationMonths {
			return
		}
		s.step()
	}
}

// runToCompletion steps until done or the global cap.
func (s *simulator) runToCompletion() {
	s.runMonths(domain.MaxSimulationMonths - s.month)
}

func (s *simulator) outcome() domain.StrategyOutcome {
	remaining := s.totalDebt()
	initial := decimal.Zero
	for _, d := range s.debts {
		if !d.target.IsEmergencyFund() {
			initial = initial.Add(d.initial)
		}
	}
	return domain.StrategyOutcome{
		Strategy:         s.strategy,
		MonthsToDebtFree: s.month,
		TotalInterest:    s.totalInterest,
		TotalPaid:        initial.Sub(remaining).Add(s.totalInterest),
		ExtraMonthly:     s.extra,
		PayoffOrder:      append([]string(nil), s.payoffOrder...),
		RemainingBalance: remaining,
		Months:           append([]domain.MonthSnapshot(nil), s.snapshots...),
	}
}

// SimulatePayoff runs one payoff-strategy simulation over read-only
// liability snapshots. Zero open liabilities produce an immediate
// zero-duration outcome. Hitting the 600-month cap is a normal
// termination: the outcome carries the surviving balance.
func SimulatePayoff(liabilities []domain.Liability, plan PayoffPlan) domain.StrategyOutcome {
	s := newSimulator(liabilities, plan)
	if len(s.debts) == 0 {
		return domain.StrategyOutcome{
			Strategy:         plan.Strategy,
			ExtraMonthly:     plan.ExtraMonthly,
			TotalInterest:    decimal.Zero,
			TotalPaid:        decimal.Zero,
			RemainingBalance: decimal.Zero,
		}
	}
	if plan.LumpSum.IsPositive() {
		s.applyLump(plan.LumpSum)
	}
	s.runToCompletion()
	return s.outcome()
}

// StrategySet holds one outcome per supported strategy for the same
// liabilities and extra budget.
type StrategySet struct {
	Avalanche domain.StrategyOutcome
	Snowball  domain.StrategyOutcome
	Hybrid    domain.StrategyOutcome
	Minimum   domain.StrategyOutcome
}

// Outcome returns the entry for the given strategy tag.
func (set StrategySet) Outcome(s domain.Strategy) domain.StrategyOutcome {
	switch s {
	case domain.StrategySnowball:
		return set.Snowball
	case domain.StrategyHybrid:
		return set.Hybrid
	case domain.StrategyMinimum:
		return set.Minimum
	default:
		return set.Avalanche
	}
}

// Best returns the accelerated strategy with the least total interest,
// breaking ties by fewer months, in avalanche/snowball/hybrid order.
func (set StrategySet) Best() domain.StrategyOutcome {
	best := set.Avalanche
	for _, candidate := range []domain.StrategyOutcome{set.Snowball, set.Hybrid} {
		if candidate.TotalInterest.LessThan(best.TotalInterest) ||
			(candidate.TotalInterest.Equal(best.TotalInterest) && candidate.MonthsToDebtFree < best.MonthsToDebtFree) {
			best = candidate
		}
	}
	return best
}

// ComparePayoffStrategies runs every strategy against the same snapshots.
// The minimum strategy always runs with zero extra, so the comparison
// shows what the extra budget actually buys.
func ComparePayoffStrategies(liabilities []domain.Liability, extra decimal.Decimal, capture bool) StrategySet {
	run := func(strategy domain.Strategy, extraMonthly decimal.Decimal) domain.StrategyOutcome {
		return SimulatePayoff(liabilities, PayoffPlan{
			Strategy:      strategy,
			ExtraMonthly:  extraMonthly,
			CaptureMonths: capture,
		})
	}
	return StrategySet{
		Avalanche: run(domain.StrategyAvalanche, extra),
		Snowball:  run(domain.StrategySnowball, extra),
		Hybrid:    run(domain.StrategyHybrid, extra),
		Minimum:   run(domain.StrategyMinimum, decimal.Zero),
	}
}

package domain

import "github.com/shopspring/decimal"

// Strategy selects the ordering used by the payoff engine.
type Strategy string

const (
	StrategyAvalanche Strategy = "avalanche" // highest annual rate first
	StrategySnowball  Strategy = "snowball"  // smallest balance first
	StrategyHybrid    Strategy = "hybrid"    // rate x balance, largest first
	StrategyMinimum   Strategy = "minimum"   // minimum payments only
)

// Strategies lists every supported strategy in comparison order.
var Strategies = []Strategy{StrategyAvalanche, StrategySnowball, StrategyHybrid, StrategyMinimum}

// ValidStrategy reports whether s is one of the supported strategies.
func ValidStrategy(s Strategy) bool {
	switch s {
	case StrategyAvalanche, StrategySnowball, StrategyHybrid, StrategyMinimum:
		return true
	}
	return false
}

// MonthsNever is the sentinel returned when a debt can never be paid off
// within the simulation cap.
const MonthsNever = -1

// MonthSnapshot records the aggregate debt state at the end of one
// simulated month, for charting.
type MonthSnapshot struct {
	Month     int             `json:"month"`
	TotalDebt decimal.Decimal `json:"totalDebt"`
}

// StrategyOutcome is the immutable result of one payoff-strategy
// simulation run. Plain data so it can cross a goroutine boundary or be
// logged verbatim as a test fixture.
type StrategyOutcome struct {
	Strategy         Strategy        `json:"strategy"`
	MonthsToDebtFree int             `json:"monthsToDebtFree"`
	TotalInterest    decimal.Decimal `json:"totalInterest"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	ExtraMonthly     decimal.Decimal `json:"extraMonthly"`
	PayoffOrder      []string        `json:"payoffOrder"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	Months           []MonthSnapshot `json:"months,omitempty"`
}

// Allocation records how a lump sum was split across liabilities in the
// month it was applied.
type Allocation struct {
	LiabilityName string          `json:"liabilityName"`
	Amount        decimal.Decimal `json:"amount"`
	PaidOff       bool            `json:"paidOff"`
}

// SaleEvent records one scheduled liquidation: which lots were sold, the
// realized gain and tax, and where the net proceeds went.
type SaleEvent struct {
	Year            int             `json:"year"`
	Month           int             `json:"month"` // overall simulation month of the sale
	LotsSold        []string        `json:"lotsSold"`
	Proceeds        decimal.Decimal `json:"proceeds"`
	GainRealized    decimal.Decimal `json:"gainRealized"`
	TaxPaid         decimal.Decimal `json:"taxPaid"`
	EmergencyFunded decimal.Decimal `json:"emergencyFunded"`
	Allocations     []Allocation    `json:"allocations"`
}

// SimulationResult is the immutable output of a liquidation simulation.
type SimulationResult struct {
	StrategyName     string          `json:"strategyName"`
	Events           []SaleEvent     `json:"events"`
	TotalProceeds    decimal.Decimal `json:"totalProceeds"`
	TotalGain        decimal.Decimal `json:"totalGain"`
	TotalTax         decimal.Decimal `json:"totalTax"`
	NetProceeds      decimal.Decimal `json:"netProceeds"`
	MonthsToDebtFree int             `json:"monthsToDebtFree"`
	TotalInterest    decimal.Decimal `json:"totalInterest"`
	DebtsEliminated  []string        `json:"debtsEliminated"`
	RemainingDebt    decimal.Decimal `json:"remainingDebt"`
	YearsToComplete  int             `json:"yearsToComplete"`
	UnsoldLots       []string        `json:"unsoldLots,omitempty"`
}

// ProjectionPoint is one month of the joint asset/liability projection.
type ProjectionPoint struct {
	Month            int             `json:"month"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
}

// RecommendationCategory groups recommendations for display.
type RecommendationCategory string

const (
	CategoryDebt       RecommendationCategory = "debt"
	CategoryEmergency  RecommendationCategory = "emergency"
	CategoryInvestment RecommendationCategory = "investment"
)

// Recommendation is one prioritized advisory item. Priority 1 is the most
// urgent; ties keep insertion order.
type Recommendation struct {
	Priority         int                    `json:"priority"`
	Category         RecommendationCategory `json:"category"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	PotentialSavings decimal.Decimal        `json:"potentialSavings"`
	ActionItems      []string               `json:"actionItems,omitempty"`
}

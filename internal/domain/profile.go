package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Assumptions holds the knobs shared by projections and strategy runs.
type Assumptions struct {
	InvestmentReturnRate decimal.Decimal `json:"investmentReturnRate" yaml:"investment_return_rate"` // annual, percent
	ProjectionMonths     int             `json:"projectionMonths" yaml:"projection_months"`
	ExtraMonthly         decimal.Decimal `json:"extraMonthly" yaml:"extra_monthly"`
}

// Validate checks the assumptions at the boundary.
func (a Assumptions) Validate() error {
	if a.InvestmentReturnRate.IsNegative() {
		return fmt.Errorf("investment return rate must not be negative, got %s", a.InvestmentReturnRate)
	}
	if a.ProjectionMonths < 0 {
		return fmt.Errorf("projection months must not be negative, got %d", a.ProjectionMonths)
	}
	if a.ProjectionMonths > MaxSimulationMonths {
		return fmt.Errorf("projection months must not exceed %d, got %d", MaxSimulationMonths, a.ProjectionMonths)
	}
	if a.ExtraMonthly.IsNegative() {
		return fmt.Errorf("extra monthly must not be negative, got %s", a.ExtraMonthly)
	}
	return nil
}

// Profile is the full in-memory snapshot an analysis runs against:
// entity records plus tax settings and assumptions. Supplied by the
// persistence and settings collaborators; read-only to the core.
type Profile struct {
	Assets          []Asset         `json:"assets" yaml:"assets"`
	Liabilities     []Liability     `json:"liabilities" yaml:"liabilities"`
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome" yaml:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses" yaml:"monthly_expenses"`
	Tax             TaxSettings     `json:"tax" yaml:"tax"`
	Assumptions     Assumptions     `json:"assumptions" yaml:"assumptions"`
}

// TotalAssets sums current values across the portfolio.
func (p Profile) TotalAssets() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.Assets {
		total = total.Add(a.CurrentValue())
	}
	return total
}

// TotalLiabilities sums outstanding balances.
func (p Profile) TotalLiabilities() decimal.Decimal {
	total := decimal.Zero
	for _, l := range p.Liabilities {
		total = total.Add(l.CurrentBalance)
	}
	return total
}

// NetWorth returns assets minus liabilities.
func (p Profile) NetWorth() decimal.Decimal {
	return p.TotalAssets().Sub(p.TotalLiabilities())
}

// OpenLiabilities returns the liabilities with a positive balance, in
// snapshot order.
func (p Profile) OpenLiabilities() []Liability {
	open := make([]Liability, 0, len(p.Liabilities))
	for _, l := range p.Liabilities {
		if l.CurrentBalance.GreaterThan(decimal.Zero) {
			open = append(open, l)
		}
	}
	return open
}

// Validate checks every record at the boundary so the simulation core can
// assume clean inputs.
func (p Profile) Validate() error {
	for i, a := range p.Assets {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("asset %d: %w", i, err)
		}
	}
	for i, l := range p.Liabilities {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("liability %d: %w", i, err)
		}
	}
	if p.MonthlyIncome.IsNegative() {
		return fmt.Errorf("monthly income must not be negative, got %s", p.MonthlyIncome)
	}
	if p.MonthlyExpenses.IsNegative() {
		return fmt.Errorf("monthly expenses must not be negative, got %s", p.MonthlyExpenses)
	}
	if err := p.Tax.Validate(); err != nil {
		return fmt.Errorf("tax settings: %w", err)
	}
	if err := p.Assumptions.Validate(); err != nil {
		return fmt.Errorf("assumptions: %w", err)
	}
	return nil
}

package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nwadvisor/networth-advisor/internal/domain"
)

// Project walks assets and liabilities forward month by month. Growable
// holdings (stock, retirement) compound at the investment return rate;
// retirement holdings receive their monthly contribution after growth.
// Liabilities amortize at their regular payment. The two loops share a
// tick but only meet in the net-worth subtraction. Every point is pure
// state derived from the previous month, so the series is reproducible.
func Project(months int, profile domain.Profile) []domain.ProjectionPoint {
	if months > domain.MaxSimulationMonths {
		months = domain.MaxSimulationMonths
	}
	if months <= 0 {
		return nil
	}

	monthlyReturn := profile.Assumptions.InvestmentReturnRate.
		Div(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(domain.MonthsPerYear))

	values := make([]decimal.Decimal, len(profile.Assets))
	for i, a := range profile.Assets {
		values[i] = a.CurrentValue()
	}
	balances := make([]decimal.Decimal, len(profile.Liabilities))
	rates := make([]decimal.Decimal, len(profile.Liabilities))
	payments := make([]decimal.Decimal, len(profile.Liabilities))
	for i, l := range profile.Liabilities {
		balances[i] = l.CurrentBalance
		rates[i] = l.MonthlyRate()
		payments[i] = l.MonthlyPayment
	}

	points := make([]domain.ProjectionPoint, 0, months)
	for month := 1; month <= months; month++ {
		for i, a := range profile.Assets {
			if a.Type.Growable() {
				values[i] = values[i].Add(values[i].Mul(monthlyReturn))
			}
			if a.Type == domain.AssetRetirement {
				values[i] = values[i].Add(a.MonthlyContribution)
			}
		}
		for i := range balances {
			if !balances[i].GreaterThan(domain.BalanceEpsilon) {
				balances[i] = decimal.Zero
				continue
			}
			_, _, balances[i] = AccrueAndPay(balances[i], rates[i], payments[i])
		}

		totalAssets := decimal.Zero
		for _, v := range values {
			totalAssets = totalAssets.Add(v)
		}
		totalLiabilities := decimal.Zero
		for _, b := range balances {
			totalLiabilities = totalLiabilities.Add(b)
		}
		points = append(points, domain.ProjectionPoint{
			Month:            month,
			TotalAssets:      totalAssets,
			TotalLiabilities: totalLiabilities,
			NetWorth:         totalAssets.Sub(totalLiabilities),
		})
	}
	return points
}

// FutureValue is the closed-form annuity accumulation:
//
//	fv = existing*(1+r)^n + monthly*(((1+r)^n - 1)/r)
//
// with r the monthly rate derived from the annual percentage return. A
// zero rate degenerates to simple accumulation. Used by the contribution
// trade-off sweep and as a cross-check on the month-by-month projection.
func FutureValue(monthly decimal.Decimal, months int, annualReturn, existing decimal.Decimal) decimal.Decimal {
	if months <= 0 {
		return existing
	}
	r := annualReturn.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(domain.MonthsPerYear))
	if r.IsZero() {
		return existing.Add(monthly.Mul(decimal.NewFromInt(int64(months))))
	}
	growth := decimal.NewFromInt(1).Add(r).Pow(decimal.NewFromInt(int64(months)))
	annuity := growth.Sub(decimal.NewFromInt(1)).Div(r)
	return existing.Mul(growth).Add(monthly.Mul(annuity))
}

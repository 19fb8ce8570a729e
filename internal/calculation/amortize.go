package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nwadvisor/networth-advisor/internal/domain"
)

// AccrueAndPay advances one liability by a single month: interest accrues
// on the balance, then the payment is applied. When the payment does not
// cover the interest the principal is clamped at zero and the whole
// interest charge lands on the balance, which is how a non-amortizing
// debt shows up mid-loop. The returned balance is never negative.
func AccrueAndPay(balance, monthlyRate, payment decimal.Decimal) (interest, principal, newBalance decimal.Decimal) {
	interest = balance.Mul(monthlyRate)
	principal = payment.Sub(interest)
	if principal.IsNegative() {
		return interest, decimal.Zero, balance.Add(interest)
	}
	if principal.GreaterThan(balance) {
		principal = balance
	}
	newBalance = balance.Sub(principal)
	if newBalance.IsNegative() {
		newBalance = decimal.Zero
	}
	return interest, principal, newBalance
}

// MonthsToPayoff projects how many months the liability needs at its
// current monthly payment with no extra funds. Returns domain.MonthsNever
// when the payment never covers interest or the balance survives the
// simulation cap.
func MonthsToPayoff(l domain.Liability) int {
	if !l.CurrentBalance.GreaterThan(domain.BalanceEpsilon) {
		return 0
	}
	if !l.IsAmortizing() {
		return domain.MonthsNever
	}

	balance := l.CurrentBalance
	rate := l.MonthlyRate()
	months := 0
	for balance.GreaterThan(domain.BalanceEpsilon) && months < domain.MaxSimulationMonths {
		_, _, balance = AccrueAndPay(balance, rate, l.MonthlyPayment)
		months++
	}
	if balance.GreaterThan(domain.BalanceEpsilon) {
		return domain.MonthsNever
	}
	return months
}

// InterestRemaining projects the total interest the liability will cost at
// its current payment. Non-amortizing debts have no finite total and come
// back as the NonAmortizing variant.
func InterestRemaining(l domain.Liability) domain.InterestOutcome {
	if !l.CurrentBalance.GreaterThan(domain.BalanceEpsilon) {
		return domain.AmortizingInterest(decimal.Zero)
	}
	if !l.IsAmortizing() {
		return domain.NonAmortizing()
	}

	balance := l.CurrentBalance
	rate := l.MonthlyRate()
	total := decimal.Zero
	months := 0
	for balance.GreaterThan(domain.BalanceEpsilon) && months < domain.MaxSimulationMonths {
		interest, _, newBalance := AccrueAndPay(balance, rate, l.MonthlyPayment)
		total = total.Add(interest)
		balance = newBalance
		months++
	}
	if balance.GreaterThan(domain.BalanceEpsilon) {
		return domain.NonAmortizing()
	}
	return domain.AmortizingInterest(total)
}

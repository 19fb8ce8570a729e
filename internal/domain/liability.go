package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Liability is a read-only snapshot of a debt supplied by the persistence
// layer. Simulations copy the balance into their own working state and
// never mutate the snapshot.
type Liability struct {
	ID             string          `json:"id" yaml:"id"`
	Name           string          `json:"name" yaml:"name"`
	CurrentBalance decimal.Decimal `json:"currentBalance" yaml:"current_balance"`
	InterestRate   decimal.Decimal `json:"interestRate" yaml:"interest_rate"` // annual, percent
	MonthlyPayment decimal.Decimal `json:"monthlyPayment" yaml:"monthly_payment"`
	MinimumPayment decimal.Decimal `json:"minimumPayment" yaml:"minimum_payment"`
	IsRevolving    bool            `json:"isRevolving" yaml:"is_revolving"`
	CreditLimit    decimal.Decimal `json:"creditLimit" yaml:"credit_limit"`
}

// MonthlyRate returns the monthly interest rate as a decimal fraction.
func (l Liability) MonthlyRate() decimal.Decimal {
	return l.InterestRate.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(MonthsPerYear))
}

// MonthlyInterest returns the interest charged on the current balance for
// one month.
func (l Liability) MonthlyInterest() decimal.Decimal {
	return l.CurrentBalance.Mul(l.MonthlyRate())
}

// PrincipalPortion returns the part of the monthly payment that reduces
// principal, clamped at zero when the payment does not cover interest.
func (l Liability) PrincipalPortion() decimal.Decimal {
	principal := l.MonthlyPayment.Sub(l.MonthlyInterest())
	if principal.IsNegative() {
		return decimal.Zero
	}
	return principal
}

// EffectiveMinimum returns the payment used by strategy simulations: the
// distinct minimum when one is set, otherwise the regular monthly payment.
func (l Liability) EffectiveMinimum() decimal.Decimal {
	if l.MinimumPayment.IsPositive() {
		return l.MinimumPayment
	}
	return l.MonthlyPayment
}

// IsAmortizing reports whether the monthly payment covers the monthly
// interest so the balance can actually decrease.
func (l Liability) IsAmortizing() bool {
	return l.MonthlyPayment.GreaterThan(l.MonthlyInterest())
}

// AvailableCredit returns remaining credit for revolving accounts.
func (l Liability) AvailableCredit() decimal.Decimal {
	if !l.IsRevolving || !l.CreditLimit.IsPositive() {
		return decimal.Zero
	}
	avail := l.CreditLimit.Sub(l.CurrentBalance)
	if avail.IsNegative() {
		return decimal.Zero
	}
	return avail
}

// Utilization returns balance/limit as a percentage for revolving
// accounts, zero otherwise.
func (l Liability) Utilization() decimal.Decimal {
	if !l.IsRevolving || !l.CreditLimit.IsPositive() {
		return decimal.Zero
	}
	return l.CurrentBalance.Div(l.CreditLimit).Mul(decimal.NewFromInt(100))
}

// Validate checks the snapshot at the simulation boundary. The simulation
// core assumes pre-validated, non-negative inputs.
func (l Liability) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("liability name is required")
	}
	if l.CurrentBalance.IsNegative() {
		return fmt.Errorf("liability %q: balance must not be negative, got %s", l.Name, l.CurrentBalance)
	}
	if l.InterestRate.IsNegative() {
		return fmt.Errorf("liability %q: interest rate must not be negative, got %s", l.Name, l.InterestRate)
	}
	if l.MonthlyPayment.IsNegative() {
		return fmt.Errorf("liability %q: monthly payment must not be negative, got %s", l.Name, l.MonthlyPayment)
	}
	if l.MinimumPayment.IsNegative() {
		return fmt.Errorf("liability %q: minimum payment must not be negative, got %s", l.Name, l.MinimumPayment)
	}
	if l.IsRevolving && l.CreditLimit.IsNegative() {
		return fmt.Errorf("liability %q: credit limit must not be negative, got %s", l.Name, l.CreditLimit)
	}
	return nil
}

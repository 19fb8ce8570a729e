package domain

import "github.com/shopspring/decimal"

// InterestOutcome is the tagged result of projecting a liability's
// remaining lifetime interest. A debt whose payment never covers interest
// has no finite total; callers must check Amortizing before doing
// arithmetic with the value instead of letting an infinity propagate.
type InterestOutcome struct {
	amortizing bool
	total      decimal.Decimal
}

// AmortizingInterest wraps a finite lifetime-interest total.
func AmortizingInterest(total decimal.Decimal) InterestOutcome {
	return InterestOutcome{amortizing: true, total: total}
}

// NonAmortizing marks a debt that will never pay off at its current
// payment.
func NonAmortizing() InterestOutcome {
	return InterestOutcome{}
}

// Amortizing reports whether a finite total exists.
func (o InterestOutcome) Amortizing() bool { return o.amortizing }

// Total returns the finite lifetime interest. Only meaningful when
// Amortizing reports true.
func (o InterestOutcome) Total() decimal.Decimal { return o.total }

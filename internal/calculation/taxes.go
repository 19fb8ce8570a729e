package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nwadvisor/networth-advisor/internal/domain"
)

// CapitalGainsTax computes the long-term tax due on a realized gain under
// the two-bracket model: the portion of the gain that fits inside the 0%
// headroom is free, the rest is taxed at the flat rate. Losses and
// negative gains owe nothing.
func CapitalGainsTax(gain decimal.Decimal, tax domain.TaxSettings) decimal.Decimal {
	if !gain.IsPositive() {
		return decimal.Zero
	}
	headroom := tax.GainHeadroom()
	taxable := gain.Sub(headroom)
	if !taxable.IsPositive() {
		return decimal.Zero
	}
	return taxable.Mul(domain.CapitalGainsRate)
}

// GainFittingHeadroom returns how much of the given gain can be realized
// this year at a 0% rate, given gains already realized in the same year.
func GainFittingHeadroom(gain, alreadyRealized decimal.Decimal, tax domain.TaxSettings) decimal.Decimal {
	headroom := tax.GainHeadroom().Sub(alreadyRealized)
	if !headroom.IsPositive() {
		return decimal.Zero
	}
	return decimal.Min(gain, headroom)
}

// EffectiveTaxOnSale computes tax for a sale year where some headroom may
// already be consumed by earlier sales in the same year.
func EffectiveTaxOnSale(gain, alreadyRealized decimal.Decimal, tax domain.TaxSettings) decimal.Decimal {
	if !gain.IsPositive() {
		return decimal.Zero
	}
	free := GainFittingHeadroom(gain, alreadyRealized, tax)
	taxable := gain.Sub(free)
	if !taxable.IsPositive() {
		return decimal.Zero
	}
	return taxable.Mul(domain.CapitalGainsRate)
}

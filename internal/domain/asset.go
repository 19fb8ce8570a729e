package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AssetType classifies portfolio holdings. Only stock and retirement
// holdings compound in projections; metals carry a per-unit weight factor
// when priced.
type AssetType string

const (
	AssetMetal      AssetType = "metal"
	AssetStock      AssetType = "stock"
	AssetRealEstate AssetType = "realestate"
	AssetRetirement AssetType = "retirement"
	AssetCash       AssetType = "cash"
	AssetOther      AssetType = "other"
)

// Growable reports whether the asset type compounds at the investment
// return rate in net-worth projections.
func (t AssetType) Growable() bool {
	return t == AssetStock || t == AssetRetirement
}

// Asset is a read-only portfolio snapshot with prices already resolved by
// the market-data layer.
type Asset struct {
	ID                  string          `json:"id" yaml:"id"`
	Name                string          `json:"name" yaml:"name"`
	Type                AssetType       `json:"type" yaml:"type"`
	Quantity            decimal.Decimal `json:"quantity" yaml:"quantity"`
	CurrentPrice        decimal.Decimal `json:"currentPrice" yaml:"current_price"` // per unit (per oz for metals)
	WeightPerUnit       decimal.Decimal `json:"weightPerUnit" yaml:"weight_per_unit"`
	CostBasisTotal      decimal.Decimal `json:"costBasisTotal" yaml:"cost_basis_total"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution" yaml:"monthly_contribution"`
}

// UnitPrice returns the market price per held unit. Metal prices are
// quoted per ounce, so coins and bars scale by their weight factor.
func (a Asset) UnitPrice() decimal.Decimal {
	if a.Type == AssetMetal && a.WeightPerUnit.IsPositive() {
		return a.CurrentPrice.Mul(a.WeightPerUnit)
	}
	return a.CurrentPrice
}

// CurrentValue returns quantity times unit price.
func (a Asset) CurrentValue() decimal.Decimal {
	return a.Quantity.Mul(a.UnitPrice())
}

// GainLoss returns the unrealized gain over the full cost basis.
func (a Asset) GainLoss() decimal.Decimal {
	return a.CurrentValue().Sub(a.CostBasisTotal)
}

// Validate checks the snapshot at the simulation boundary.
func (a Asset) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("asset name is required")
	}
	switch a.Type {
	case AssetMetal, AssetStock, AssetRealEstate, AssetRetirement, AssetCash, AssetOther:
	default:
		return fmt.Errorf("asset %q: unknown asset type %q", a.Name, a.Type)
	}
	if a.Quantity.IsNegative() {
		return fmt.Errorf("asset %q: quantity must not be negative, got %s", a.Name, a.Quantity)
	}
	if a.CurrentPrice.IsNegative() {
		return fmt.Errorf("asset %q: price must not be negative, got %s", a.Name, a.CurrentPrice)
	}
	if a.CostBasisTotal.IsNegative() {
		return fmt.Errorf("asset %q: cost basis must not be negative, got %s", a.Name, a.CostBasisTotal)
	}
	return nil
}

// AssetLot is a sale candidate: a quantity of one asset selected for
// liquidation, carrying its proportional share of the cost basis.
type AssetLot struct {
	AssetID        string          `json:"assetId" yaml:"asset_id"`
	Name           string          `json:"name" yaml:"name"`
	Type           AssetType       `json:"type" yaml:"type"`
	QuantityToSell decimal.Decimal `json:"quantityToSell" yaml:"quantity_to_sell"`
	TotalQuantity  decimal.Decimal `json:"totalQuantity" yaml:"total_quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice" yaml:"unit_price"` // weight-adjusted for metals
	CostBasisTotal decimal.Decimal `json:"costBasisTotal" yaml:"cost_basis_total"`
}

// ValueToSell returns the market value of the portion being sold.
func (lot AssetLot) ValueToSell() decimal.Decimal {
	return lot.QuantityToSell.Mul(lot.UnitPrice)
}

// CostBasisPortion scales the lot's cost basis by the fraction of the
// holding being sold. Never exceeds the total basis.
func (lot AssetLot) CostBasisPortion() decimal.Decimal {
	if lot.TotalQuantity.IsZero() {
		return decimal.Zero
	}
	portion := lot.QuantityToSell.Div(lot.TotalQuantity).Mul(lot.CostBasisTotal)
	if portion.GreaterThan(lot.CostBasisTotal) {
		return lot.CostBasisTotal
	}
	return portion
}

// Gain returns the realized gain (or loss) for the portion being sold.
func (lot AssetLot) Gain() decimal.Decimal {
	return lot.ValueToSell().Sub(lot.CostBasisPortion())
}

// Fraction returns a copy of the lot scaled to sell only frac of its
// selected quantity. Used when a sale must stop exactly at the tax-free
// headroom.
func (lot AssetLot) Fraction(frac decimal.Decimal) AssetLot {
	scaled := lot
	scaled.QuantityToSell = lot.QuantityToSell.Mul(frac)
	return scaled
}

// Validate checks the lot at the simulation boundary.
func (lot AssetLot) Validate() error {
	if lot.Name == "" {
		return fmt.Errorf("asset lot name is required")
	}
	if lot.QuantityToSell.IsNegative() {
		return fmt.Errorf("lot %q: quantity to sell must not be negative, got %s", lot.Name, lot.QuantityToSell)
	}
	if lot.TotalQuantity.IsNegative() {
		return fmt.Errorf("lot %q: total quantity must not be negative, got %s", lot.Name, lot.TotalQuantity)
	}
	if lot.QuantityToSell.GreaterThan(lot.TotalQuantity) {
		return fmt.Errorf("lot %q: cannot sell %s of %s held", lot.Name, lot.QuantityToSell, lot.TotalQuantity)
	}
	if lot.UnitPrice.IsNegative() {
		return fmt.Errorf("lot %q: unit price must not be negative, got %s", lot.Name, lot.UnitPrice)
	}
	if lot.CostBasisTotal.IsNegative() {
		return fmt.Errorf("lot %q: cost basis must not be negative, got %s", lot.Name, lot.CostBasisTotal)
	}
	return nil
}

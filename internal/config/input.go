package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/nwadvisor/networth-advisor/internal/domain"
)

// Document is a parsed profile file: the full financial snapshot plus an
// optional sale selection naming the lots to liquidate.
type Document struct {
	Profile domain.Profile `yaml:",inline"`
	Sale    *SaleSelection `yaml:"sale,omitempty"`
}

// SaleSelection names which holdings to sell and how the proceeds split.
type SaleSelection struct {
	EmergencyAllocation decimal.Decimal `yaml:"emergency_allocation"`
	Lots                []LotSelection  `yaml:"lots"`
}

// LotSelection picks a quantity of one asset for sale. A zero quantity
// means the whole holding.
type LotSelection struct {
	AssetID  string          `yaml:"asset_id"`
	Quantity decimal.Decimal `yaml:"quantity"`
}

// InputParser handles parsing of profile input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a profile document from a YAML file, applies
// defaults, and validates it. Invalid input fails here, before any
// simulation starts.
func (ip *InputParser) LoadFromFile(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses, defaults, and validates a profile document.
func (ip *InputParser) Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.applyDefaults(&doc)
	if err := ip.ValidateDocument(&doc); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}
	return &doc, nil
}

// applyDefaults fills the fields a minimal profile may omit.
func (ip *InputParser) applyDefaults(doc *Document) {
	for i := range doc.Profile.Assets {
		if doc.Profile.Assets[i].ID == "" {
			doc.Profile.Assets[i].ID = doc.Profile.Assets[i].Name
		}
	}
	for i := range doc.Profile.Liabilities {
		if doc.Profile.Liabilities[i].ID == "" {
			doc.Profile.Liabilities[i].ID = doc.Profile.Liabilities[i].Name
		}
	}
	if doc.Profile.Tax.FilingStatus == "" {
		doc.Profile.Tax.FilingStatus = domain.FilingSingle
	}
	if doc.Profile.Assumptions.ProjectionMonths == 0 {
		doc.Profile.Assumptions.ProjectionMonths = defaultProjectionMonths
	}
	if doc.Profile.Assumptions.InvestmentReturnRate.IsZero() {
		doc.Profile.Assumptions.InvestmentReturnRate = defaultReturnRate
	}
}

const defaultProjectionMonths = 120

var defaultReturnRate = decimal.NewFromInt(7)

// ValidateDocument validates the loaded document.
func (ip *InputParser) ValidateDocument(doc *Document) error {
	if err := doc.Profile.Validate(); err != nil {
		return err
	}
	if doc.Sale != nil {
		if err := ip.validateSale(doc); err != nil {
			return fmt.Errorf("sale selection validation failed: %w", err)
		}
	}
	return nil
}

func (ip *InputParser) validateSale(doc *Document) error {
	if doc.Sale.EmergencyAllocation.IsNegative() {
		return fmt.Errorf("emergency allocation must not be negative, got %s", doc.Sale.EmergencyAllocation)
	}
	for i, sel := range doc.Sale.Lots {
		asset, ok := ip.findAsset(doc.Profile.Assets, sel.AssetID)
		if !ok {
			return fmt.Errorf("lot %d: no asset with id %q", i, sel.AssetID)
		}
		if sel.Quantity.IsNegative() {
			return fmt.Errorf("lot %d (%s): quantity must not be negative, got %s", i, asset.Name, sel.Quantity)
		}
		if sel.Quantity.GreaterThan(asset.Quantity) {
			return fmt.Errorf("lot %d (%s): cannot sell %s of %s held",
				i, asset.Name, sel.Quantity, asset.Quantity)
		}
	}
	return nil
}

func (ip *InputParser) findAsset(assets []domain.Asset, id string) (domain.Asset, bool) {
	for _, a := range assets {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Asset{}, false
}

// ResolveLots turns the sale selection into concrete asset-lot snapshots
// priced from the profile's assets. Call only on a validated document.
func (doc *Document) ResolveLots() []domain.AssetLot {
	if doc.Sale == nil {
		return nil
	}
	lots := make([]domain.AssetLot, 0, len(doc.Sale.Lots))
	for _, sel := range doc.Sale.Lots {
		for _, a := range doc.Profile.Assets {
			if a.ID != sel.AssetID {
				continue
			}
			quantity := sel.Quantity
			if quantity.IsZero() {
				quantity = a.Quantity
			}
			lots = append(lots, domain.AssetLot{
				AssetID:        a.ID,
				Name:           a.Name,
				Type:           a.Type,
				QuantityToSell: quantity,
				TotalQuantity:  a.Quantity,
				UnitPrice:      a.UnitPrice(),
				CostBasisTotal: a.CostBasisTotal,
			})
			break
		}
	}
	return lots
}

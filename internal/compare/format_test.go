package compare

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwadvisor/networth-advisor/internal/calculation"
	"github.com/nwadvisor/networth-advisor/internal/domain"
)

func comparisonFixture() *ComparisonSet {
	debts := []domain.Liability{
		{
			ID: "cc", Name: "Rewards Card",
			CurrentBalance: decimal.NewFromInt(5000),
			InterestRate:   decimal.NewFromInt(22),
			MonthlyPayment: decimal.NewFromInt(150),
		},
		{
			ID: "car", Name: "Car Loan",
			CurrentBalance: decimal.NewFromInt(9000),
			InterestRate:   decimal.NewFromInt(6),
			MonthlyPayment: decimal.NewFromInt(300),
		},
	}
	set := calculation.ComparePayoffStrategies(debts, decimal.NewFromInt(250), false)
	return BuildComparison(set, "profile.yaml")
}

func TestBuildComparison(t *testing.T) {
	set := comparisonFixture()

	assert.Equal(t, "minimum", set.Baseline.Strategy)
	require.Len(t, set.Alternatives, 3)
	assert.Equal(t, "avalanche", set.Alternatives[0].Strategy)

	// The baseline has no savings over itself.
	assert.True(t, set.Baseline.InterestSaved.IsZero())
	assert.Equal(t, 0, set.Baseline.MonthsSaved)

	// Accelerated strategies beat the baseline on this input.
	for _, alt := range set.Alternatives {
		assert.True(t, alt.InterestSaved.GreaterThan(decimal.Zero), alt.Strategy)
		assert.Greater(t, alt.MonthsSaved, 0, alt.Strategy)
	}
	assert.NotEmpty(t, set.BestStrategy)
}

func TestTableFormatter(t *testing.T) {
	out := (&TableFormatter{}).Format(comparisonFixture())

	assert.Contains(t, out, "DEBT PAYOFF STRATEGY COMPARISON")
	assert.Contains(t, out, "Profile: profile.yaml")
	assert.Contains(t, out, "minimum")
	assert.Contains(t, out, "avalanche")
	assert.Contains(t, out, "Best strategy:")
	assert.Contains(t, out, "Payoff order:")
}

func TestTableFormatterThousandsSeparator(t *testing.T) {
	tf := &TableFormatter{}

	assert.Equal(t, "1,234,567.89", tf.formatDecimal(decimal.NewFromFloat(1234567.89)))
	assert.Equal(t, "999.50", tf.formatDecimal(decimal.NewFromFloat(999.5)))
	assert.Equal(t, "-1,000.00", tf.formatDecimal(decimal.NewFromInt(-1000)))
}

func TestCSVFormatter(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(comparisonFixture())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5) // header + baseline + 3 alternatives
	assert.Contains(t, lines[0], "Strategy,Type,Months To Debt Free")
	assert.Contains(t, lines[1], "minimum,baseline")
	assert.Contains(t, lines[2], "avalanche,alternative")
}

func TestJSONFormatter(t *testing.T) {
	set := comparisonFixture()

	compact, err := (&JSONFormatter{}).Format(set)
	require.NoError(t, err)
	pretty, err := (&JSONFormatter{Pretty: true}).Format(set)
	require.NoError(t, err)

	assert.NotContains(t, compact, "\n")
	assert.Contains(t, pretty, "\n")

	var decoded ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(compact), &decoded))
	assert.Equal(t, set.BestStrategy, decoded.BestStrategy)
	assert.Len(t, decoded.Alternatives, 3)
}

package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwadvisor/networth-advisor/internal/calculation"
	"github.com/nwadvisor/networth-advisor/internal/domain"
)

func testAnalysis(t *testing.T) *calculation.Analysis {
	t.Helper()
	analysis, err := calculation.NewEngine().Analyze(context.Background(), calculation.AnalysisRequest{
		Profile: domain.Profile{
			Assets: []domain.Asset{{
				ID: "savings", Name: "Savings", Type: domain.AssetCash,
				Quantity: decimal.NewFromInt(1), CurrentPrice: decimal.NewFromInt(5000),
			}},
			Liabilities: []domain.Liability{{
				ID: "cc", Name: "Card",
				CurrentBalance: decimal.NewFromInt(2000),
				InterestRate:   decimal.NewFromInt(20),
				MonthlyPayment: decimal.NewFromInt(100),
			}},
			MonthlyIncome:   decimal.NewFromInt(5000),
			MonthlyExpenses: decimal.NewFromInt(3000),
			Tax:             domain.TaxSettings{FilingStatus: domain.FilingSingle},
		},
	})
	require.NoError(t, err)
	return analysis
}

func TestModelShowsAnalysisAfterCompletion(t *testing.T) {
	m := NewModel("profile.yaml")

	updated, _ := m.Update(AnalysisCompleteMsg{Analysis: testAnalysis(t)})
	model := updated.(Model)

	assert.False(t, model.loading)
	view := model.View()
	assert.Contains(t, view, "Net Worth Advisor")
	assert.Contains(t, view, "Total Assets")
}

func TestModelShowsErrors(t *testing.T) {
	m := NewModel("profile.yaml")

	updated, _ := m.Update(ErrorMsg{Err: errors.New("no such profile")})
	model := updated.(Model)

	assert.Contains(t, model.View(), "no such profile")
}

func TestModelSceneNavigation(t *testing.T) {
	m := NewModel("profile.yaml")
	updated, _ := m.Update(AnalysisCompleteMsg{Analysis: testAnalysis(t)})
	model := updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	model = updated.(Model)
	assert.Equal(t, SceneStrategies, model.currentScene)
	assert.Contains(t, model.View(), "avalanche")

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})
	model = updated.(Model)
	assert.Equal(t, SceneRecommendations, model.currentScene)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = updated.(Model)
	assert.Equal(t, SceneHelp, model.currentScene)
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel("profile.yaml")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelLiquidationSceneWithoutLots(t *testing.T) {
	m := NewModel("profile.yaml")
	updated, _ := m.Update(AnalysisCompleteMsg{Analysis: testAnalysis(t)})
	model := updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	model = updated.(Model)
	assert.Contains(t, model.View(), "No lots selected")
}

package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nwadvisor/networth-advisor/internal/output"
)

// View renders the current scene.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Net Worth Advisor"))
	sb.WriteString("  ")
	sb.WriteString(SubtitleStyle.Render(m.currentScene.String()))
	sb.WriteString("\n\n")

	switch {
	case m.err != nil:
		sb.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		sb.WriteString("\n")
	case m.loading:
		sb.WriteString(m.spinner.View() + " " + m.loadingMessage)
		sb.WriteString("\n")
	case m.analysis == nil:
		sb.WriteString("Loading profile...\n")
	default:
		sb.WriteString(m.renderScene())
	}

	sb.WriteString("\n")
	sb.WriteString(StatusBarStyle.Render(
		"[1] Summary  [2] Strategies  [3] Liquidation  [4] Recommendations  [?] Help  [r] Re-run  [q] Quit"))
	return AppStyle.Render(sb.String())
}

func (m Model) renderScene() string {
	switch m.currentScene {
	case SceneStrategies:
		return m.renderStrategies()
	case SceneLiquidation:
		return m.renderLiquidation()
	case SceneRecommendations:
		return m.renderRecommendations()
	case SceneHelp:
		return m.renderHelp()
	default:
		return m.renderSummary()
	}
}

func (m Model) renderSummary() string {
	summary := m.analysis.Summary
	cashFlow := m.analysis.CashFlow

	var sb strings.Builder
	sb.WriteString(metric("Total Assets", output.FormatCurrency(summary.TotalAssets), 1))
	sb.WriteString(metric("Total Liabilities", output.FormatCurrency(summary.TotalLiabilities), -1))
	sb.WriteString(metric("Net Worth", output.FormatCurrency(summary.NetWorth), summary.NetWorth.Sign()))
	sb.WriteString(metric("Debt-to-Asset", output.FormatPercentage(summary.DebtToAssetRatio), 0))
	sb.WriteString("\n")
	for _, slice := range summary.AssetsByType {
		sb.WriteString(metric("  "+string(slice.Type), output.FormatCurrency(slice.Value), 0))
	}
	sb.WriteString("\n")
	sb.WriteString(metric("Net Cash Flow", output.FormatCurrency(cashFlow.NetCashFlow), cashFlow.NetCashFlow.Sign()))
	if cashFlow.LifetimeInterest.Amortizing() {
		sb.WriteString(metric("Lifetime Interest", output.FormatCurrency(cashFlow.LifetimeInterest.Total()), -1))
	} else {
		sb.WriteString(metric("Lifetime Interest", "no payoff date at current payments", -1))
	}
	return BorderStyle.Render(sb.String())
}

func (m Model) renderStrategies() string {
	set := m.analysis.Strategies

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-12s %10s %16s %14s\n", "Strategy", "Months", "Total Interest", "Vs. Minimum"))
	sb.WriteString(strings.Repeat("-", 56) + "\n")
	rows := []struct {
		name     string
		months   int
		interest decimal.Decimal
	}{
		{"minimum", set.Minimum.MonthsToDebtFree, set.Minimum.TotalInterest},
		{"avalanche", set.Avalanche.MonthsToDebtFree, set.Avalanche.TotalInterest},
		{"snowball", set.Snowball.MonthsToDebtFree, set.Snowball.TotalInterest},
		{"hybrid", set.Hybrid.MonthsToDebtFree, set.Hybrid.TotalInterest},
	}
	for _, row := range rows {
		saved := set.Minimum.TotalInterest.Sub(row.interest)
		sb.WriteString(fmt.Sprintf("%-12s %10d %16s %14s\n",
			row.name, row.months,
			output.FormatCurrency(row.interest),
			output.FormatCurrency(saved)))
	}
	sb.WriteString("\n")
	best := set.Best()
	sb.WriteString(MetricPositiveStyle.Render(fmt.Sprintf("Best: %s", best.Strategy)))
	if len(best.PayoffOrder) > 0 {
		sb.WriteString("\nPayoff order: " + strings.Join(best.PayoffOrder, " -> "))
	}
	return BorderStyle.Render(sb.String())
}

func (m Model) renderLiquidation() string {
	c := m.analysis.Liquidation
	if c == nil {
		return SubtitleStyle.Render("No lots selected for sale in this profile.")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-20s %14s %14s\n", "", "Immediate", "Tax-Optimized"))
	sb.WriteString(fmt.Sprintf("%-20s %14s %14s\n", "Proceeds",
		output.FormatCurrency(c.Immediate.TotalProceeds),
		output.FormatCurrency(c.TaxOptimized.TotalProceeds)))
	sb.WriteString(fmt.Sprintf("%-20s %14s %14s\n", "Tax",
		output.FormatCurrency(c.Immediate.TotalTax),
		output.FormatCurrency(c.TaxOptimized.TotalTax)))
	sb.WriteString(fmt.Sprintf("%-20s %14d %14d\n", "Months to payoff",
		c.Immediate.MonthsToDebtFree, c.TaxOptimized.MonthsToDebtFree))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Tax saved: %s   Extra interest: %s\n",
		output.FormatCurrency(c.TaxSaved), output.FormatCurrency(c.ExtraInterest)))

	recommended := fmt.Sprintf("Recommended: %s (net benefit %s)",
		c.Recommended, output.FormatCurrency(c.NetBenefit))
	if c.NetBenefit.IsPositive() {
		sb.WriteString(MetricPositiveStyle.Render(recommended))
	} else {
		sb.WriteString(MetricValueStyle.Render(recommended))
	}
	if len(c.TaxOptimized.UnsoldLots) > 0 {
		sb.WriteString("\n")
		sb.WriteString(ErrorStyle.Render(
			"Unsold after cap: " + strings.Join(c.TaxOptimized.UnsoldLots, ", ")))
	}
	return BorderStyle.Render(sb.String())
}

func (m Model) renderRecommendations() string {
	recs := m.analysis.Recommendations
	if len(recs) == 0 {
		return MetricPositiveStyle.Render("Nothing to flag. The profile looks healthy.")
	}

	var sb strings.Builder
	for _, rec := range recs {
		sb.WriteString(MetricValueStyle.Render(fmt.Sprintf("[%d] %s", rec.Priority, rec.Title)))
		sb.WriteString("\n")
		sb.WriteString(rec.Description)
		sb.WriteString("\n")
		for _, item := range rec.ActionItems {
			sb.WriteString("  - " + item + "\n")
		}
		sb.WriteString("\n")
	}
	return BorderStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) renderHelp() string {
	keys := [][2]string{
		{"1-4", "switch scenes"},
		{"tab", "next scene"},
		{"r", "re-run the analysis"},
		{"?", "this help"},
		{"q / ctrl+c", "quit"},
	}
	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(HelpKeyStyle.Render(fmt.Sprintf("%-12s", k[0])))
		sb.WriteString(" " + k[1] + "\n")
	}
	return BorderStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

func metric(label, value string, sign int) string {
	rendered := MetricValueStyle.Render(value)
	switch {
	case sign > 0:
		rendered = MetricPositiveStyle.Render(value)
	case sign < 0:
		rendered = MetricNegativeStyle.Render(value)
	}
	return MetricLabelStyle.Render(label) + " " + rendered + "\n"
}

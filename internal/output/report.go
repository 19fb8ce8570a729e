package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nwadvisor/networth-advisor/internal/calculation"
	"github.com/nwadvisor/networth-advisor/internal/compare"
)

// ReportGenerator renders a full analysis in various formats.
type ReportGenerator struct {
	Writer io.Writer
}

// NewReportGenerator creates a generator writing to stdout.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{Writer: os.Stdout}
}

// GenerateReport renders the analysis in the specified format.
func GenerateReport(analysis *calculation.Analysis, format string) error {
	generator := NewReportGenerator()

	switch format {
	case "console":
		return generator.GenerateConsoleReport(analysis)
	case "json":
		return generator.GenerateJSONReport(analysis)
	case "csv":
		return generator.GenerateCSVReport(analysis)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// GenerateConsoleReport renders the detailed console report.
func (rg *ReportGenerator) GenerateConsoleReport(analysis *calculation.Analysis) error {
	w := rg.Writer

	fmt.Fprintln(w, strings.Repeat("=", 78))
	fmt.Fprintln(w, "NET WORTH ANALYSIS")
	fmt.Fprintln(w, strings.Repeat("=", 78))
	fmt.Fprintln(w)

	summary := analysis.Summary
	fmt.Fprintln(w, "NET WORTH SUMMARY")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "Total Assets:       %s\n", FormatCurrency(summary.TotalAssets))
	fmt.Fprintf(w, "Total Liabilities:  %s\n", FormatCurrency(summary.TotalLiabilities))
	fmt.Fprintf(w, "Net Worth:          %s\n", FormatCurrency(summary.NetWorth))
	fmt.Fprintf(w, "Debt-to-Asset:      %s\n", FormatPercentage(summary.DebtToAssetRatio))
	for _, slice := range summary.AssetsByType {
		fmt.Fprintf(w, "  %-12s %s\n", slice.Type+":", FormatCurrency(slice.Value))
	}
	fmt.Fprintln(w)

	cashFlow := analysis.CashFlow
	fmt.Fprintln(w, "MONTHLY CASH FLOW")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "Income:             %s\n", FormatCurrency(cashFlow.MonthlyIncome))
	fmt.Fprintf(w, "Expenses:           %s\n", FormatCurrency(cashFlow.MonthlyExpenses))
	fmt.Fprintf(w, "Debt Service:       %s\n", FormatCurrency(cashFlow.DebtService))
	fmt.Fprintf(w, "Net Cash Flow:      %s\n", FormatCurrency(cashFlow.NetCashFlow))
	fmt.Fprintf(w, "  Interest Portion:  %s\n", FormatCurrency(cashFlow.MonthlyInterest))
	fmt.Fprintf(w, "  Principal Portion: %s\n", FormatCurrency(cashFlow.MonthlyPrincipal))
	if cashFlow.LifetimeInterest.Amortizing() {
		fmt.Fprintf(w, "Lifetime Interest:  %s\n", FormatCurrency(cashFlow.LifetimeInterest.Total()))
	} else {
		fmt.Fprintf(w, "Lifetime Interest:  no payoff date at current payments (%s)\n",
			strings.Join(cashFlow.NonAmortizingDebts, ", "))
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, (&compare.TableFormatter{}).Format(compare.BuildComparison(analysis.Strategies, "")))
	fmt.Fprintln(w)

	if analysis.Liquidation != nil {
		rg.writeLiquidation(w, analysis.Liquidation)
	}

	if len(analysis.Recommendations) > 0 {
		fmt.Fprintln(w, "RECOMMENDATIONS")
		fmt.Fprintln(w, strings.Repeat("-", 40))
		for _, rec := range analysis.Recommendations {
			fmt.Fprintf(w, "[%d] %s\n", rec.Priority, rec.Title)
			fmt.Fprintf(w, "    %s\n", rec.Description)
			if rec.PotentialSavings.GreaterThan(decimal.Zero) {
				fmt.Fprintf(w, "    Potential savings: %s\n", FormatCurrency(rec.PotentialSavings))
			}
			for _, item := range rec.ActionItems {
				fmt.Fprintf(w, "    - %s\n", item)
			}
		}
		fmt.Fprintln(w)
	}

	if n := len(analysis.Projection); n > 0 {
		last := analysis.Projection[n-1]
		fmt.Fprintln(w, "PROJECTION")
		fmt.Fprintln(w, strings.Repeat("-", 40))
		fmt.Fprintf(w, "In %d months: assets %s, liabilities %s, net worth %s\n",
			last.Month,
			FormatCurrency(last.TotalAssets),
			FormatCurrency(last.TotalLiabilities),
			FormatCurrency(last.NetWorth))
		fmt.Fprintln(w)
	}
	return nil
}

func (rg *ReportGenerator) writeLiquidation(w io.Writer, c *calculation.LiquidationComparison) {
	fmt.Fprintln(w, "LIQUIDATION STRATEGY COMPARISON")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "%-18s %14s %14s\n", "", "Immediate", "Tax-Optimized")
	fmt.Fprintf(w, "%-18s %14s %14s\n", "Proceeds",
		FormatCurrency(c.Immediate.TotalProceeds), FormatCurrency(c.TaxOptimized.TotalProceeds))
	fmt.Fprintf(w, "%-18s %14s %14s\n", "Tax",
		FormatCurrency(c.Immediate.TotalTax), FormatCurrency(c.TaxOptimized.TotalTax))
	fmt.Fprintf(w, "%-18s %14d %14d\n", "Months to payoff",
		c.Immediate.MonthsToDebtFree, c.TaxOptimized.MonthsToDebtFree)
	fmt.Fprintf(w, "%-18s %14s %14s\n", "Interest",
		FormatCurrency(c.Immediate.TotalInterest), FormatCurrency(c.TaxOptimized.TotalInterest))
	fmt.Fprintf(w, "Tax saved by spreading: %s\n", FormatCurrency(c.TaxSaved))
	fmt.Fprintf(w, "Extra interest cost:    %s\n", FormatCurrency(c.ExtraInterest))
	fmt.Fprintf(w, "Net benefit:            %s\n", FormatCurrency(c.NetBenefit))
	fmt.Fprintf(w, "Recommended:            %s\n", c.Recommended)
	if len(c.TaxOptimized.UnsoldLots) > 0 {
		fmt.Fprintf(w, "Unsold after %d years:  %s\n",
			len(c.TaxOptimized.Events), strings.Join(c.TaxOptimized.UnsoldLots, ", "))
	}
	fmt.Fprintln(w)
}

// GenerateJSONReport renders the whole analysis as indented JSON.
func (rg *ReportGenerator) GenerateJSONReport(analysis *calculation.Analysis) error {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	_, err = fmt.Fprintln(rg.Writer, string(data))
	return err
}

// GenerateCSVReport renders the projection series as CSV, suitable for
// charting in a spreadsheet.
func (rg *ReportGenerator) GenerateCSVReport(analysis *calculation.Analysis) error {
	writer := csv.NewWriter(rg.Writer)

	if err := writer.Write([]string{"Month", "Total Assets", "Total Liabilities", "Net Worth"}); err != nil {
		return err
	}
	for _, p := range analysis.Projection {
		record := []string{
			strconv.Itoa(p.Month),
			p.TotalAssets.StringFixed(2),
			p.TotalLiabilities.StringFixed(2),
			p.NetWorth.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// FormatCurrency formats a decimal as a dollar amount with thousands
// separators.
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	parts := strings.Split(s, ".")
	intPart := parts[0]

	var sb strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteString(",")
		}
		sb.WriteRune(digit)
	}
	result := "$" + sb.String() + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// FormatPercentage formats a 0-1 ratio as a percentage.
func FormatPercentage(ratio decimal.Decimal) string {
	return ratio.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

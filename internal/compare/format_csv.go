package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats a strategy comparison as CSV.
type CSVFormatter struct{}

// Format generates CSV output.
func (cf *CSVFormatter) Format(set *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Strategy",
		"Type",
		"Months To Debt Free",
		"Total Interest",
		"Total Paid",
		"Extra Monthly",
		"Interest Saved",
		"Months Saved",
		"Payoff Order",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(&set.Baseline, "baseline")); err != nil {
		return "", err
	}
	for i := range set.Alternatives {
		if err := writer.Write(cf.formatRow(&set.Alternatives[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(row *StrategyRow, kind string) []string {
	return []string{
		row.Strategy,
		kind,
		fmt.Sprintf("%d", row.MonthsToDebtFree),
		row.TotalInterest.StringFixed(2),
		row.TotalPaid.StringFixed(2),
		row.ExtraMonthly.StringFixed(2),
		row.InterestSaved.StringFixed(2),
		fmt.Sprintf("%d", row.MonthsSaved),
		strings.Join(row.PayoffOrder, "; "),
	}
}

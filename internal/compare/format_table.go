package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats a strategy comparison as a console table.
type TableFormatter struct{}

// Format generates the table.
func (tf *TableFormatter) Format(set *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("DEBT PAYOFF STRATEGY COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 78) + "\n")
	if set.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Profile: %s\n", set.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 14
	numWidth := 15

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Strategy",
		numWidth, "Months",
		numWidth, "Total Interest",
		numWidth, "Interest Saved",
		numWidth, "Months Saved"))
	sb.WriteString(strings.Repeat("-", 78) + "\n")

	sb.WriteString(tf.formatRow(&set.Baseline))
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	for i := range set.Alternatives {
		sb.WriteString(tf.formatRow(&set.Alternatives[i]))
	}
	sb.WriteString(strings.Repeat("=", 78) + "\n")

	sb.WriteString(fmt.Sprintf("\nBest strategy: %s\n", set.BestStrategy))
	for _, alt := range set.Alternatives {
		if alt.Strategy != set.BestStrategy {
			continue
		}
		if len(alt.PayoffOrder) > 0 {
			sb.WriteString("Payoff order:\n")
			for i, name := range alt.PayoffOrder {
				sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, name))
			}
		}
	}
	return sb.String()
}

func (tf *TableFormatter) formatRow(row *StrategyRow) string {
	nameWidth := 14
	numWidth := 15
	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, row.Strategy,
		numWidth, tf.formatMonths(row.MonthsToDebtFree),
		numWidth, "$"+tf.formatDecimal(row.TotalInterest),
		numWidth, "$"+tf.formatDecimal(row.InterestSaved),
		numWidth, fmt.Sprintf("%d", row.MonthsSaved))
}

func (tf *TableFormatter) formatMonths(months int) string {
	years := months / 12
	rem := months % 12
	if years == 0 {
		return fmt.Sprintf("%d mo", rem)
	}
	return fmt.Sprintf("%dy %dmo", years, rem)
}

// formatDecimal adds thousands separators for readability.
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	s := d.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	parts := strings.Split(s, ".")
	intPart := parts[0]

	var out strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out.WriteString(",")
		}
		out.WriteRune(digit)
	}
	result := out.String() + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

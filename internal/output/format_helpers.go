package output

import (
	"strconv"
	"strings"

	"github.com/rpgo/creditcalc/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// FormatAmount prints a monetary value as a plain number. Resolved amounts are
// whole units so they print without a fraction.
func FormatAmount(amount decimal.Decimal) string { return amount.String() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatDuration spells out a number of monthly periods as years and months,
// e.g. 25 -> "2 years and 1 month", 12 -> "1 year", 0 -> "0 months".
func FormatDuration(periods int) string {
	years, months := dateutil.SplitMonths(periods)
	var parts []string
	if years > 0 {
		parts = append(parts, plural(years, "year"))
	}
	if months > 0 {
		parts = append(parts, plural(months, "month"))
	}
	if len(parts) == 0 {
		return "0 months"
	}
	return strings.Join(parts, " and ")
}

// DurationSentence is the console line reporting how long repayment takes
func DurationSentence(periods int) string {
	return "It will take " + FormatDuration(periods) + " to repay this loan!"
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

package output

import (
	"strconv"

	"github.com/rpgo/pension-calculator/internal/domain"
	money "github.com/rpgo/pension-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatAmount formats a decimal as a grouped amount in the currency unit.
func FormatAmount(amount decimal.Decimal, places int32) string {
	return money.NewMoneyFromDecimal(amount).Format(places)
}

// FormatPercentage formats a fraction (0.2175) as a percentage with 2 decimals.
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatBreakeven formats the breakeven horizon to one decimal, or "undefined".
func FormatBreakeven(s domain.Summary) string {
	years, ok := s.DisplayBreakeven()
	if !ok {
		return "undefined"
	}
	return years.StringFixed(1)
}

func intToString(i int) string { return strconv.Itoa(i) }

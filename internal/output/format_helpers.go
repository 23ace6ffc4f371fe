package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	money "github.com/rpgo/retirement-savings/pkg/decimal"
)

// FormatCurrency formats a decimal as a dollar label with grouping, e.g. $1,234.57.
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

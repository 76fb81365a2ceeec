package summary

import (
	"math"

	"hrdash/domain/dashboard"

	"github.com/Rhymond/go-money"
)

// currencyFormatter renders whole dollars with thousands separators ("$6,000").
var currencyFormatter = money.NewFormatter(0, ".", ",", "$", "$1")

// FormatCurrency formats an amount as whole dollars, truncating cents.
// NaN and infinities render as "no data".
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return dashboard.NoData
	}
	return currencyFormatter.Format(int64(amount))
}

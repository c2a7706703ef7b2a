package spend

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the reporting currency used by summaries when the
// caller does not pick one. Amounts are plain quantities; the currency is
// display-only and there is no conversion.
const DefaultCurrency = "EUR"

// FormatAmount renders an amount in the given display currency, e.g.
// "€12.50". Unknown currency codes fall back to go-money's default
// formatting.
func FormatAmount(amount decimal.Decimal, currency string) string {
	// go-money formats from the minor unit, so shift by the currency fraction.
	cur := *money.New(0, currency).Currency()
	minor := amount.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

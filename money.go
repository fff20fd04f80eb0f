package vendas

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used when none is configured.
const DefaultCurrency = "BRL"

// Currency formats monetary amounts for display.
//
// Every view (list, summary, charts, report, exports) formats amounts through
// a Currency so that the same value always renders identically.
type Currency struct {
	code     string
	symbol   string
	fraction int32
}

// NewCurrency returns the Currency for an ISO 4217 code. Unknown codes use the
// code itself as symbol and two fraction digits.
func NewCurrency(code string) Currency {
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, code).Currency()
	return Currency{code: cur.Code, symbol: cur.Grapheme, fraction: int32(cur.Fraction)}
}

// Code returns the ISO code of the currency.
func (c Currency) Code() string { return c.code }

// Symbol returns the display symbol, e.g. "R$".
func (c Currency) Symbol() string { return c.symbol }

// Amount returns v rounded half away from zero to the currency's fraction
// digits, without symbol: 1.005 gives "1.01".
func (c Currency) Amount(v float64) string { return fixed(v, c.fraction) }

// Format returns v with its symbol, e.g. "R$ 10.00".
func (c Currency) Format(v float64) string { return c.symbol + " " + c.Amount(v) }

// Round returns v rounded the way Format displays it.
func (c Currency) Round(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(c.fraction).Float64()
	return f
}

// FormatPercent formats a percentage with one decimal place, e.g. "40.0%".
func FormatPercent(v float64) string { return fixed(v, 1) + "%" }

// fixed rounds the shortest decimal representation of v half away from zero.
func fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

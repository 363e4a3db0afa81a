// Package format turns amounts into the strings shown on charts and tables.
package format

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// O separador de milhar é sempre en-US, independente do locale do usuário.
var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatMoney formats an amount as "$ 1,234.50". NaN and infinities render as zero.
func FormatMoney(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return "$ " + usPrinter.Sprintf("%.2f", amount)
}

// FormatOptionalMoney formats amount, treating nil as zero.
func FormatOptionalMoney(amount *float64) string {
	if amount == nil {
		return FormatMoney(0)
	}
	return FormatMoney(*amount)
}

// NumberFormat is an abbreviated number format such as "$#.#a".
type NumberFormat struct {
	Currency string
	// FixedDecimal keeps the decimal digit even when it is zero ("#.0" instead of "#.#").
	FixedDecimal bool
}

var (
	// CompactCurrency is "$#.#a": $12M, $12.5M.
	CompactCurrency = NumberFormat{Currency: "$"}
	// CompactCurrencyFixed is "$#.0a": $12.0M, $12.5M.
	CompactCurrencyFixed = NumberFormat{Currency: "$", FixedDecimal: true}
	// Compact is "#.#a", used on value axes.
	Compact = NumberFormat{}
)

type scale struct {
	threshold float64
	suffix    string
}

var scales = []scale{
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "k"},
}

// Pattern returns the pattern string of the format, e.g. "$#.0a".
func (f NumberFormat) Pattern() string {
	digits := "#.#a"
	if f.FixedDecimal {
		digits = "#.0a"
	}
	return f.Currency + digits
}

// Format abbreviates v at thousand, million or billion scale with one decimal digit.
func (f NumberFormat) Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	// scales vai do maior para o menor; idx aponta para a escala escolhida.
	idx := len(scales)
	for i, s := range scales {
		if v >= s.threshold {
			idx = i
			break
		}
	}

	scaled := func(i int) decimal.Decimal {
		if i == len(scales) {
			return decimal.NewFromFloat(v).Round(1)
		}
		return decimal.NewFromFloat(v / scales[i].threshold).Round(1)
	}

	rounded := scaled(idx)
	// 999950 arredonda para 1000.0k; sobe para 1.0M.
	if idx > 0 && rounded.GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		idx--
		rounded = scaled(idx)
	}

	suffix := ""
	if idx < len(scales) {
		suffix = scales[idx].suffix
	}

	var digits string
	if f.FixedDecimal {
		digits = rounded.StringFixed(1)
	} else {
		digits = rounded.String()
	}
	if digits == "0" || digits == "0.0" {
		sign = ""
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(f.Currency)
	b.WriteString(digits)
	b.WriteString(suffix)
	return b.String()
}

// FormatPercent formats v with the given number of decimals followed by "%".
func FormatPercent(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	return decimal.NewFromFloat(v).StringFixed(int32(decimals)) + "%"
}

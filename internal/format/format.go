// Package format renders market figures in Brazilian Portuguese notation.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const timestampLayout = "02/01/2006 15:04"

var (
	printer      = message.NewPrinter(language.BrazilianPortuguese)
	compactUnits = []string{"", "mil", "mi", "bi", "tri"}
	thousand     = decimal.NewFromInt(1000)
)

// Percentage renders v with two digits and an explicit plus sign for gains,
// e.g. "+1,50%".
func Percentage(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0,00%"
	}
	formatted := strings.Replace(decimal.NewFromFloat(v).StringFixed(2), ".", ",", 1)
	if v > 0 {
		return "+" + formatted + "%"
	}
	return formatted + "%"
}

// Currency renders v in reais, e.g. "R$ 1.234,56".
func Currency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "R$ 0,00"
	}
	amount := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	value := number.Decimal(amount.InexactFloat64(), number.MinFractionDigits(2), number.MaxFractionDigits(2))
	return sign + printer.Sprintf("R$ %v", value)
}

// Volume renders v in compact form with at most one fractional digit,
// e.g. "2,3 mi".
func Volume(v int64) string {
	if v > -1000 && v < 1000 {
		return strconv.FormatInt(v, 10)
	}

	scaled := decimal.NewFromInt(v).Abs()
	unit := 0
	for scaled.GreaterThanOrEqual(thousand) && unit < len(compactUnits)-1 {
		scaled = scaled.Div(thousand)
		unit++
	}
	scaled = scaled.Round(1)
	if scaled.GreaterThanOrEqual(thousand) && unit < len(compactUnits)-1 {
		scaled = scaled.Div(thousand).Round(1)
		unit++
	}

	sign := ""
	if v < 0 {
		sign = "-"
	}
	return sign + strings.Replace(scaled.String(), ".", ",", 1) + " " + compactUnits[unit]
}

// Timestamp renders t as "dd/mm/yyyy hh:mm".
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// Summary renders the "showing N of M" line of the dashboard, prefixed by
// the query when there is one.
func Summary(shown, total int, query string) string {
	line := fmt.Sprintf("Exibindo %d de %d empresas", shown, total)
	if strings.TrimSpace(query) == "" {
		return line
	}
	return fmt.Sprintf("Resultados para %q: %s", query, line)
}

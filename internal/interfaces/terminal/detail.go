package terminal

import (
	"fmt"
	"io"
	"math"
	"strings"

	market "marketboard/internal/domain/entity/market"
	"marketboard/internal/format"
)

// RenderDetail writes the detail view of one company.
func RenderDetail(w io.Writer, c market.Company) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", c.Symbol, c.Name)
	fmt.Fprintf(&b, "Setor: %s\n\n", c.Sector)

	rows := [][2]string{
		{"Preço Atual", format.Currency(c.CurrentPrice)},
		{"Variação 24h", format.Percentage(c.Change.Percentage)},
		{"Volume", format.Volume(c.Volume)},
		{"Market Cap", format.Currency(float64(c.MarketCap))},
		{"Última Atualização", format.Timestamp(c.LastUpdate)},
		{"Preço de Abertura", format.Currency(c.OpeningPrice())},
		{"Variação em R$", signed(c.Change.Value)},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%-20s %s\n", row[0]+":", row[1])
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func signed(v float64) string {
	amount := format.Currency(math.Abs(v))
	switch {
	case v > 0:
		return "+" + amount
	case v < 0:
		return "-" + amount
	default:
		return amount
	}
}

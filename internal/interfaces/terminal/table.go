package terminal

import (
	"fmt"
	"io"

	market "marketboard/internal/domain/entity/market"
	"marketboard/internal/format"

	"github.com/olekukonko/tablewriter"
)

const emptyResultMessage = "Nenhuma empresa encontrada"

var tableHeader = []string{"Código", "Empresa", "Preço", "Variação 24h", "Volume"}

// RenderTable writes the result as a table followed by the summary line.
func RenderTable(w io.Writer, result *market.SearchResult) error {
	if result == nil {
		result = &market.SearchResult{}
	}

	if len(result.Companies) == 0 {
		if _, err := fmt.Fprintln(w, emptyResultMessage); err != nil {
			return err
		}
	} else {
		table := tablewriter.NewWriter(w)
		table.SetHeader(tableHeader)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT,
		})
		for _, c := range result.Companies {
			table.Append([]string{
				c.Symbol,
				c.Name + " (" + c.Sector + ")",
				format.Currency(c.CurrentPrice),
				format.Percentage(c.Change.Percentage),
				format.Volume(c.Volume),
			})
		}
		table.Render()
	}

	_, err := fmt.Fprintln(w, format.Summary(len(result.Companies), result.Total, result.Query))
	return err
}

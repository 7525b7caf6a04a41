package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"PutScan/internal/model"
)

// ConsolePrinter renders per-ticker summary blocks and a final table
// to a writer (normally stdout).
type ConsolePrinter struct {
	Out io.Writer
}

func NewConsolePrinter(out io.Writer) *ConsolePrinter {
	return &ConsolePrinter{Out: out}
}

// PrintSummary writes one human-readable block per row, in table order.
func (p *ConsolePrinter) PrintSummary(rows []*model.AnalysisRow) {
	for _, row := range rows {
		fmt.Fprint(p.Out, formatRowBlock(row))
	}
}

// PrintTable renders the full table in spreadsheet column order.
func (p *ConsolePrinter) PrintTable(rows []*model.AnalysisRow) {
	table := tablewriter.NewWriter(p.Out)
	table.SetHeader(model.Columns)
	for _, row := range rows {
		table.Append([]string{
			row.Ticker,
			fmt.Sprintf("%.2f", row.CurrentPrice),
			fmt.Sprintf("%.2f", row.High52),
			fmt.Sprintf("%.2f", row.Low52),
			fmt.Sprintf("%.2f", row.DistanceFromLow),
			dashNullFloat(row.Strike.Float64, row.Strike.Valid, 2),
			dashNullFloat(row.Premium.Float64, row.Premium.Valid, 2),
			dashNullInt(row.DaysToExpiry.Int64, row.DaysToExpiry.Valid),
			dashNullFloat(row.IRR.Float64, row.IRR.Valid, 4),
			dashNullFloat(row.EffectiveReturn.Float64, row.EffectiveReturn.Valid, 4),
		})
	}
	table.Render()
}

func formatRowBlock(row *model.AnalysisRow) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n", row.Ticker))
	b.WriteString(fmt.Sprintf("  price: %.2f  52w high: %.2f  52w low: %.2f  from low: %+.2f%%\n",
		row.CurrentPrice, row.High52, row.Low52, row.DistanceFromLow))
	if !row.Strike.Valid {
		b.WriteString("  no usable put chain\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("  nearest put: strike %.2f premium %.2f",
		row.Strike.Float64, row.Premium.Float64))
	if row.DaysToExpiry.Valid {
		b.WriteString(fmt.Sprintf(" (%dd)", row.DaysToExpiry.Int64))
	}
	b.WriteString("\n")
	if row.IRR.Valid {
		b.WriteString(fmt.Sprintf("  irr: %.2f%%  effective: %.2f%%\n",
			row.IRR.Float64*100, row.EffectiveReturn.Float64*100))
	}
	return b.String()
}

func dashNullFloat(v float64, valid bool, decimals int) string {
	if !valid {
		return "-"
	}
	return fmt.Sprintf("%.*f", decimals, v)
}

func dashNullInt(v int64, valid bool) string {
	if !valid {
		return "-"
	}
	return fmt.Sprintf("%d", v)
}

package report

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"

	"PutScan/internal/model"
)

// CSVExporter writes the same table as the Excel exporter to a CSV file.
type CSVExporter struct {
	Path string
}

func NewCSVExporter(path string) *CSVExporter {
	return &CSVExporter{Path: path}
}

func (e *CSVExporter) Name() string { return "csv" }

func (e *CSVExporter) Export(rows []*model.AnalysisRow) error {
	f, err := os.Create(e.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(model.Columns); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Ticker,
			fmt.Sprintf("%.2f", row.CurrentPrice),
			fmt.Sprintf("%.2f", row.High52),
			fmt.Sprintf("%.2f", row.Low52),
			fmt.Sprintf("%.2f", row.DistanceFromLow),
			formatNullFloat(row.Strike.Float64, row.Strike.Valid, 2),
			formatNullFloat(row.Premium.Float64, row.Premium.Valid, 2),
			formatNullInt(row.DaysToExpiry.Int64, row.DaysToExpiry.Valid),
			formatNullFloat(row.IRR.Float64, row.IRR.Valid, 4),
			formatNullFloat(row.EffectiveReturn.Float64, row.EffectiveReturn.Valid, 4),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func formatNullFloat(v float64, valid bool, decimals int) string {
	if !valid {
		return ""
	}
	return fmt.Sprintf("%.*f", decimals, v)
}

func formatNullInt(v int64, valid bool) string {
	if !valid {
		return ""
	}
	return fmt.Sprintf("%d", v)
}

func round2(v float64) float64 { return roundN(v, 2) }

func roundN(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

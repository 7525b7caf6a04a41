package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"PutScan/internal/model"
)

// ExcelExporter writes the analysis table to a single-sheet xlsx file.
// Any existing file at the path is overwritten without confirmation.
type ExcelExporter struct {
	Path  string
	Sheet string
}

// NewExcelExporter creates an exporter targeting path.
func NewExcelExporter(path string) *ExcelExporter {
	return &ExcelExporter{Path: path, Sheet: "Analysis"}
}

func (e *ExcelExporter) Name() string { return "excel" }

func (e *ExcelExporter) Export(rows []*model.AnalysisRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", e.Sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, name := range model.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(e.Sheet, cell, name); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, row := range rows {
		if err := e.writeRow(f, i+2, row); err != nil {
			return fmt.Errorf("write row %s: %w", row.Ticker, err)
		}
	}

	if err := f.SaveAs(e.Path); err != nil {
		return fmt.Errorf("save %s: %w", e.Path, err)
	}
	return nil
}

func (e *ExcelExporter) writeRow(f *excelize.File, rowNum int, row *model.AnalysisRow) error {
	values := []interface{}{
		row.Ticker,
		round2(row.CurrentPrice),
		round2(row.High52),
		round2(row.Low52),
		round2(row.DistanceFromLow),
		floatOrNil(row.Strike.Float64, row.Strike.Valid, 2),
		floatOrNil(row.Premium.Float64, row.Premium.Valid, 2),
		intOrNil(row.DaysToExpiry.Int64, row.DaysToExpiry.Valid),
		floatOrNil(row.IRR.Float64, row.IRR.Valid, 4),
		floatOrNil(row.EffectiveReturn.Float64, row.EffectiveReturn.Valid, 4),
	}

	for col, v := range values {
		if v == nil {
			continue // null metric stays an empty cell
		}
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(e.Sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func floatOrNil(v float64, valid bool, decimals int) interface{} {
	if !valid {
		return nil
	}
	return roundN(v, decimals)
}

func intOrNil(v int64, valid bool) interface{} {
	if !valid {
		return nil
	}
	return v
}

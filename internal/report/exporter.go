package report

import "PutScan/internal/model"

// Exporter serializes the final analysis table to some destination.
type Exporter interface {
	Export(rows []*model.AnalysisRow) error
	Name() string
}

package model

import "github.com/guregu/null/v5"

// AnalysisRow is one ticker's computed metrics. Option-side fields are
// nullable: a ticker with price data but no usable put chain still
// produces a row. Rows are created once per run and never mutated.
type AnalysisRow struct {
	Ticker          string     `json:"ticker"`
	CurrentPrice    float64    `json:"current_price"`
	High52          float64    `json:"high_52w"`
	Low52           float64    `json:"low_52w"`
	DistanceFromLow float64    `json:"distance_from_low_pct"`
	Strike          null.Float `json:"nearest_strike"`
	Premium         null.Float `json:"premium"`
	DaysToExpiry    null.Int   `json:"days_to_expiry"`
	IRR             null.Float `json:"irr"`
	EffectiveReturn null.Float `json:"effective_return"`
}

// Columns is the fixed header used by every exporter, in spreadsheet order.
var Columns = []string{
	"Ticker",
	"Current Price",
	"52-Week High",
	"52-Week Low",
	"Distance from Low (%)",
	"Nearest Strike",
	"Premium",
	"Days to Expiry",
	"IRR",
	"Effective Return (15% margin)",
}

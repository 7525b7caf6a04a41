package model

import "time"

// DailyClose represents one trading day's closing price.
type DailyClose struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds one ticker's trailing-year closing prices,
// ordered oldest to newest. Immutable once fetched.
type PriceSeries struct {
	Symbol    string
	Closes    []DailyClose
	FetchedAt time.Time
}

// CurrentPrice returns the most recent close, or 0 for an empty series.
func (s *PriceSeries) CurrentPrice() float64 {
	if len(s.Closes) == 0 {
		return 0
	}
	return s.Closes[len(s.Closes)-1].Close
}

// CloseValues extracts the raw closing prices in series order.
func (s *PriceSeries) CloseValues() []float64 {
	vals := make([]float64, len(s.Closes))
	for i, c := range s.Closes {
		vals[i] = c.Close
	}
	return vals
}

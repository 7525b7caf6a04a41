package collector

import "PutScan/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchDailyCloses returns up to `days` daily closes, oldest first.
	FetchDailyCloses(symbol string, days int) ([]model.DailyClose, error)
	// FetchPutChain returns the put quotes for the nearest upcoming expiry.
	FetchPutChain(symbol string) (*model.PutChain, error)
	Name() string
}

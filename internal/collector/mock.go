package collector

import (
	"time"

	"PutScan/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price    float64
	Closes   map[string][]model.DailyClose
	Chains   map[string]*model.PutChain
	PriceErr map[string]error
	ChainErr map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(symbol string, days int) ([]model.DailyClose, error) {
	if err, ok := m.PriceErr[symbol]; ok {
		return nil, err
	}
	if closes, ok := m.Closes[symbol]; ok {
		return closes, nil
	}
	return GenerateMockCloses(m.Price, days), nil
}

func (m *MockFetcher) FetchPutChain(symbol string) (*model.PutChain, error) {
	if err, ok := m.ChainErr[symbol]; ok {
		return nil, err
	}
	if chain, ok := m.Chains[symbol]; ok {
		return chain, nil
	}
	return &model.PutChain{
		Symbol: symbol,
		Expiry: time.Now().AddDate(0, 0, 30),
		Quotes: []model.OptionQuote{
			{Strike: m.Price * 0.95, Premium: m.Price * 0.02},
			{Strike: m.Price, Premium: m.Price * 0.03},
			{Strike: m.Price * 1.05, Premium: m.Price * 0.05},
		},
	}, nil
}

// GenerateMockCloses builds a gently trending series around basePrice.
func GenerateMockCloses(basePrice float64, count int) []model.DailyClose {
	closes := make([]model.DailyClose, count)
	for i := 0; i < count; i++ {
		closes[i] = model.DailyClose{
			Date:  time.Now().AddDate(0, 0, -(count - i)),
			Close: basePrice * (1 + float64(i-count/2)*0.001),
		}
	}
	return closes
}

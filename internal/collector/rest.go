package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"PutScan/internal/model"
)

// RestFetcher implements Fetcher against a self-hosted market data REST API.
type RestFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRestFetcher creates a new fetcher with optional proxy support.
func NewRestFetcher(baseURL, apiKey, proxyURL string) *RestFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RestFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RestFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape of a daily bar.
type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Close     float64 `json:"close"`
}

// restChain is the expected JSON shape of a put chain.
type restChain struct {
	Expiry int64 `json:"expiry"`
	Puts   []struct {
		Strike  float64 `json:"strike"`
		Premium float64 `json:"premium"`
	} `json:"puts"`
}

func (f *RestFetcher) get(endpoint string, out interface{}) error {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("rest fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("rest read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rest: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("rest decode: %w", err)
	}
	return nil
}

func (f *RestFetcher) FetchDailyCloses(symbol string, days int) ([]model.DailyClose, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&limit=%d",
		f.BaseURL, url.QueryEscape(symbol), days)

	var bars []restBar
	if err := f.get(endpoint, &bars); err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("rest: no bars returned for %s", symbol)
	}

	closes := make([]model.DailyClose, 0, len(bars))
	for _, b := range bars {
		if b.Close == 0 {
			continue
		}
		closes = append(closes, model.DailyClose{Date: time.Unix(b.Timestamp, 0), Close: b.Close})
	}
	sort.Slice(closes, func(i, j int) bool { return closes[i].Date.Before(closes[j].Date) })
	if len(closes) > days {
		closes = closes[len(closes)-days:]
	}
	return closes, nil
}

func (f *RestFetcher) FetchPutChain(symbol string) (*model.PutChain, error) {
	endpoint := fmt.Sprintf("%s/api/v1/options/puts?symbol=%s&expiry=nearest",
		f.BaseURL, url.QueryEscape(symbol))

	var chain restChain
	if err := f.get(endpoint, &chain); err != nil {
		return nil, err
	}

	quotes := make([]model.OptionQuote, 0, len(chain.Puts))
	for _, p := range chain.Puts {
		quotes = append(quotes, model.OptionQuote{Strike: p.Strike, Premium: p.Premium})
	}
	return &model.PutChain{
		Symbol: symbol,
		Expiry: time.Unix(chain.Expiry, 0),
		Quotes: quotes,
	}, nil
}

package analyzer

import (
	"fmt"
	"time"

	"github.com/guregu/null/v5"
	"github.com/sirupsen/logrus"

	"PutScan/internal/calculator"
	"PutScan/internal/collector"
	"PutScan/internal/model"
)

// DataFetchError marks a ticker whose price data could not be fetched.
// The ticker is skipped with a warning and produces no report row.
type DataFetchError struct {
	Ticker string
	Cause  error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Ticker, e.Cause)
}

func (e *DataFetchError) Unwrap() error { return e.Cause }

// Result is the outcome of analyzing a single ticker: either a row or a
// tagged error, never both.
type Result struct {
	Ticker string
	Row    *model.AnalysisRow
	Err    error
}

// Analyzer runs the fetch-and-compute pipeline for a list of tickers.
type Analyzer struct {
	fetcher    collector.Fetcher
	marginPct  float64
	windowDays int
	logger     *logrus.Logger
}

// New creates an Analyzer.
func New(fetcher collector.Fetcher, marginPct float64, windowDays int) *Analyzer {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return &Analyzer{
		fetcher:    fetcher,
		marginPct:  marginPct,
		windowDays: windowDays,
		logger:     logger,
	}
}

// Run analyzes tickers strictly sequentially, in input order. Every ticker
// yields exactly one Result; a failure never aborts the remaining tickers.
func (a *Analyzer) Run(tickers []string) []Result {
	results := make([]Result, 0, len(tickers))
	for _, ticker := range tickers {
		a.logger.WithField("ticker", ticker).Info("Processing")
		results = append(results, a.Analyze(ticker))
	}
	return results
}

// Analyze fetches and computes metrics for one ticker. A price-data failure
// produces a DataFetchError result; an option-side failure degrades the row
// to null option metrics instead.
func (a *Analyzer) Analyze(ticker string) Result {
	closes, err := a.fetcher.FetchDailyCloses(ticker, a.windowDays)
	if err != nil {
		return Result{Ticker: ticker, Err: &DataFetchError{Ticker: ticker, Cause: err}}
	}
	series := &model.PriceSeries{Symbol: ticker, Closes: closes, FetchedAt: time.Now()}

	values := series.CloseValues()
	high, low, err := calculator.Week52Range(values, a.windowDays)
	if err != nil {
		return Result{Ticker: ticker, Err: &DataFetchError{Ticker: ticker, Cause: err}}
	}

	current := series.CurrentPrice()
	distance, err := calculator.DistanceFromLow(current, low)
	if err != nil {
		return Result{Ticker: ticker, Err: &DataFetchError{Ticker: ticker, Cause: err}}
	}

	row := &model.AnalysisRow{
		Ticker:          ticker,
		CurrentPrice:    current,
		High52:          high,
		Low52:           low,
		DistanceFromLow: distance,
	}
	a.fillOptionMetrics(row, ticker, current)
	return Result{Ticker: ticker, Row: row}
}

// fillOptionMetrics attaches nearest-strike put metrics to the row. Any
// failure here leaves the option fields null and logs a warning.
func (a *Analyzer) fillOptionMetrics(row *model.AnalysisRow, ticker string, current float64) {
	chain, err := a.fetcher.FetchPutChain(ticker)
	if err != nil {
		a.logger.WithField("ticker", ticker).WithError(err).Warn("No usable put chain")
		return
	}

	quote, err := calculator.NearestStrike(chain.Quotes, current)
	if err != nil {
		a.logger.WithField("ticker", ticker).WithError(err).Warn("No usable put chain")
		return
	}
	row.Strike = null.NewFloat(quote.Strike, true)
	row.Premium = null.NewFloat(quote.Premium, true)

	dte := calculator.DaysToExpiry(chain.Expiry, time.Now())
	irr, err := calculator.AnnualizedIRR(quote.Strike, quote.Premium, dte)
	if err != nil {
		a.logger.WithField("ticker", ticker).WithError(err).Warn("IRR not computable")
		return
	}
	row.DaysToExpiry = null.NewInt(int64(dte), true)

	eff, err := calculator.EffectiveReturn(irr, a.marginPct)
	if err != nil {
		a.logger.WithField("ticker", ticker).WithError(err).Warn("Effective return not computable")
		return
	}
	row.IRR = null.NewFloat(irr, true)
	row.EffectiveReturn = null.NewFloat(eff, true)
}

// Partition splits results into exportable rows (input order preserved)
// and failures, logging one warning per failed ticker.
func (a *Analyzer) Partition(results []Result) ([]*model.AnalysisRow, []Result) {
	rows := make([]*model.AnalysisRow, 0, len(results))
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			a.logger.WithField("ticker", r.Ticker).WithError(r.Err).Warn("Ticker skipped")
			failed = append(failed, r)
			continue
		}
		rows = append(rows, r.Row)
	}
	return rows, failed
}

package calculator

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"PutScan/internal/model"
)

// Week52WindowDays is the default lookback window in trading days.
const Week52WindowDays = 252

// Week52Range scans the most recent windowDays closes and returns the high
// and low. The full series is used when it is shorter than the window.
func Week52Range(closes []float64, windowDays int) (high, low float64, err error) {
	if len(closes) == 0 {
		return 0, 0, ErrInsufficientData
	}
	if windowDays <= 0 {
		windowDays = Week52WindowDays
	}
	start := len(closes) - windowDays
	if start < 0 {
		start = 0
	}
	window := closes[start:]
	return floats.Max(window), floats.Min(window), nil
}

// DistanceFromLow returns how far the current price sits above the 52-week
// low, as a percentage of the low.
func DistanceFromLow(current, low float64) (float64, error) {
	if low == 0 {
		return 0, ErrZeroLow
	}
	return (current - low) / low * 100, nil
}

// NearestStrike selects the quote whose strike is closest to the current
// price. Ties go to the lower strike, so the result does not depend on the
// order of the chain.
func NearestStrike(quotes []model.OptionQuote, currentPrice float64) (model.OptionQuote, error) {
	if len(quotes) == 0 {
		return model.OptionQuote{}, ErrNoStrikes
	}
	best := quotes[0]
	bestDist := math.Abs(best.Strike - currentPrice)
	for _, q := range quotes[1:] {
		dist := math.Abs(q.Strike - currentPrice)
		if dist < bestDist || (dist == bestDist && q.Strike < best.Strike) {
			best = q
			bestDist = dist
		}
	}
	return best, nil
}

// AnnualizedIRR computes the compounded annual return of selling a
// cash-secured put: the premium is received upfront against capital of
// strike minus premium, held until expiry.
func AnnualizedIRR(strike, premium float64, daysToExpiry int) (float64, error) {
	if daysToExpiry <= 0 {
		return 0, ErrInvalidExpiry
	}
	if premium >= strike {
		return 0, fmt.Errorf("premium %.2f not below strike %.2f", premium, strike)
	}
	periodic := premium / (strike - premium)
	return math.Pow(1+periodic, 365/float64(daysToExpiry)) - 1, nil
}

// EffectiveReturn rescales an IRR by the fraction of the notional posted
// as margin. This is a capital-efficiency approximation, not a risk model.
func EffectiveReturn(irr, marginPct float64) (float64, error) {
	if marginPct <= 0 {
		return 0, fmt.Errorf("margin pct must be positive, got %.4f", marginPct)
	}
	return irr / marginPct, nil
}

// DaysToExpiry counts whole days from now until expiry, rounding partial
// days up so a chain expiring later today still has one day left.
func DaysToExpiry(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

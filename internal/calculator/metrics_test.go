package calculator

import (
	"errors"
	"math"
	"testing"
	"time"

	"PutScan/internal/model"
)

func TestWeek52Range_WindowedSubset(t *testing.T) {
	// 300 closes; only the last 252 are in the window. The global min (1.0)
	// and max (999.0) sit before the window and must be ignored.
	closes := make([]float64, 300)
	for i := range closes {
		closes[i] = 100 + float64(i%10)
	}
	closes[10] = 1.0
	closes[20] = 999.0

	high, low, err := Week52Range(closes, 252)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 109 {
		t.Errorf("expected windowed high 109, got %.2f", high)
	}
	if low != 100 {
		t.Errorf("expected windowed low 100, got %.2f", low)
	}
}

func TestWeek52Range_ShortSeries(t *testing.T) {
	high, low, err := Week52Range([]float64{120, 100, 150}, 252)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 150 || low != 100 {
		t.Errorf("expected (150, 100), got (%.2f, %.2f)", high, low)
	}
}

func TestWeek52Range_Empty(t *testing.T) {
	_, _, err := Week52Range(nil, 252)
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestDistanceFromLow(t *testing.T) {
	got, err := DistanceFromLow(120, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-20) > 1e-9 {
		t.Errorf("expected 20%%, got %.4f", got)
	}
}

func TestDistanceFromLow_ZeroLow(t *testing.T) {
	_, err := DistanceFromLow(120, 0)
	if !errors.Is(err, ErrZeroLow) {
		t.Errorf("expected ErrZeroLow, got %v", err)
	}
}

func TestNearestStrike_TieBreaksLower(t *testing.T) {
	quotes := []model.OptionQuote{
		{Strike: 95, Premium: 1},
		{Strike: 100, Premium: 2},
		{Strike: 105, Premium: 3},
	}
	// 100 and 105 are both 2.5 away from 102.5; the lower strike wins.
	q, err := NearestStrike(quotes, 102.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Strike != 100 {
		t.Errorf("expected tie-break to 100, got %.2f", q.Strike)
	}
}

func TestNearestStrike_OrderIndependent(t *testing.T) {
	orderings := [][]model.OptionQuote{
		{{Strike: 95}, {Strike: 100}, {Strike: 105}},
		{{Strike: 105}, {Strike: 100}, {Strike: 95}},
		{{Strike: 100}, {Strike: 105}, {Strike: 95}},
	}
	for i, quotes := range orderings {
		q, err := NearestStrike(quotes, 102.5)
		if err != nil {
			t.Fatalf("ordering %d: unexpected error: %v", i, err)
		}
		if q.Strike != 100 {
			t.Errorf("ordering %d: expected 100, got %.2f", i, q.Strike)
		}
	}
}

func TestNearestStrike_Empty(t *testing.T) {
	_, err := NearestStrike(nil, 100)
	if !errors.Is(err, ErrNoStrikes) {
		t.Errorf("expected ErrNoStrikes, got %v", err)
	}
}

func TestAnnualizedIRR_ReferenceValue(t *testing.T) {
	// strike 115, premium 3, 30 days:
	// periodic = 3/112 = 0.026786, annualized = 1.026786^(365/30)-1 ≈ 0.3737
	irr, err := AnnualizedIRR(115, 3, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(irr-0.3737) > 0.001 {
		t.Errorf("expected irr ≈ 0.3737, got %.4f", irr)
	}
}

func TestAnnualizedIRR_MonotonicInPremium(t *testing.T) {
	prev := -1.0
	for _, premium := range []float64{0.5, 1, 2, 3, 5, 8} {
		irr, err := AnnualizedIRR(115, premium, 30)
		if err != nil {
			t.Fatalf("premium %.1f: unexpected error: %v", premium, err)
		}
		if irr <= prev {
			t.Errorf("premium %.1f: irr %.4f not greater than %.4f", premium, irr, prev)
		}
		prev = irr
	}
}

func TestAnnualizedIRR_InvalidExpiry(t *testing.T) {
	for _, days := range []int{0, -5} {
		_, err := AnnualizedIRR(115, 3, days)
		if !errors.Is(err, ErrInvalidExpiry) {
			t.Errorf("days %d: expected ErrInvalidExpiry, got %v", days, err)
		}
	}
}

func TestAnnualizedIRR_PremiumAtOrAboveStrike(t *testing.T) {
	if _, err := AnnualizedIRR(100, 100, 30); err == nil {
		t.Error("expected error for premium == strike")
	}
	if _, err := AnnualizedIRR(100, 110, 30); err == nil {
		t.Error("expected error for premium > strike")
	}
}

func TestEffectiveReturn_ExactScaling(t *testing.T) {
	for _, irr := range []float64{-0.5, 0, 0.1, 0.3737, 2.0} {
		got, err := EffectiveReturn(irr, 0.15)
		if err != nil {
			t.Fatalf("irr %.4f: unexpected error: %v", irr, err)
		}
		if got != irr/0.15 {
			t.Errorf("irr %.4f: expected %.6f, got %.6f", irr, irr/0.15, got)
		}
	}
}

func TestEffectiveReturn_BadMargin(t *testing.T) {
	if _, err := EffectiveReturn(0.3, 0); err == nil {
		t.Error("expected error for zero margin")
	}
}

func TestDaysToExpiry_RoundsUp(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		expiry time.Time
		want   int
	}{
		{now.AddDate(0, 0, 30), 30},
		{now.Add(6 * time.Hour), 1},  // later today still counts as one day
		{now.Add(-2 * time.Hour), 0}, // already expired
	}
	for _, tt := range tests {
		if got := DaysToExpiry(tt.expiry, now); got != tt.want {
			t.Errorf("expiry %s: expected %d, got %d", tt.expiry, tt.want, got)
		}
	}
}

func TestEndToEndScenario(t *testing.T) {
	// Reference scenario: min=100, max=150, current=120, put 115@3 in 30d.
	closes := []float64{150, 100, 130, 120}

	high, low, err := Week52Range(closes, 252)
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if high != 150 || low != 100 {
		t.Fatalf("expected (150, 100), got (%.2f, %.2f)", high, low)
	}

	dist, err := DistanceFromLow(120, low)
	if err != nil {
		t.Fatalf("distance: %v", err)
	}
	if math.Abs(dist-20) > 1e-9 {
		t.Errorf("expected distance 20%%, got %.4f", dist)
	}

	irr, err := AnnualizedIRR(115, 3, 30)
	if err != nil {
		t.Fatalf("irr: %v", err)
	}
	eff, err := EffectiveReturn(irr, 0.15)
	if err != nil {
		t.Fatalf("effective: %v", err)
	}
	if math.Abs(eff-2.491) > 0.01 {
		t.Errorf("expected effective return ≈ 2.491, got %.4f", eff)
	}
}

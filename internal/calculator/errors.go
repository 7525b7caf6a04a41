package calculator

import "errors"

var (
	// ErrInsufficientData indicates an empty price series.
	ErrInsufficientData = errors.New("insufficient price data")
	// ErrZeroLow indicates a degenerate series whose low is zero.
	ErrZeroLow = errors.New("52-week low is zero")
	// ErrInvalidExpiry indicates a non-positive days-to-expiry count.
	ErrInvalidExpiry = errors.New("days to expiry must be positive")
	// ErrNoStrikes indicates an empty option chain.
	ErrNoStrikes = errors.New("no strikes available")
)

package model

import "time"

// OptionQuote is a single put strike and its last traded premium.
type OptionQuote struct {
	Strike  float64
	Premium float64
}

// PutChain holds the put quotes for one ticker's nearest expiry.
type PutChain struct {
	Symbol string
	Expiry time.Time
	Quotes []OptionQuote
}

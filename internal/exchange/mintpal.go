package exchange

import (
	"fmt"
	"net/http"
)

// mintpal returns a bare array of market summary records. Records pass
// through exactly as decoded, numeric strings included; consumers of
// this feed have always parsed the strings themselves, so no
// normalization is applied. Pair matching against the "symbol" field is
// exact and case-sensitive.
type mintpal struct{}

func (mintpal) ID() string          { return "mintpal" }
func (mintpal) BaseURL() string     { return "https://api.mintpal.com/v1/market/summary/" }
func (mintpal) Method() string      { return http.MethodGet }
func (mintpal) PairRequired() bool  { return false }
func (mintpal) PairExample() string { return "DOGE_BTC" }

func (d mintpal) BuildURL(_ string) string {
	return d.BaseURL()
}

func (d mintpal) ParseTicker(body any, pair string) (any, error) {
	arr, ok := body.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected payload shape %T", d.ID(), body)
	}
	if pair == "" {
		return arr, nil
	}
	for _, rec := range arr {
		m, ok := rec.(map[string]any)
		if !ok {
			continue
		}
		if sym, _ := m["symbol"].(string); sym == pair {
			return m, nil
		}
	}
	return nil, nil
}

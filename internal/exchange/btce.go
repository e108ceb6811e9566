package exchange

import (
	"fmt"
	"net/http"
	"strings"
)

// btce talks to the BTC-E public API v2. Tickers live under
// /{pair}/ticker with the pair lowercased, wrapped in a "ticker"
// object. BTC-E encodes its figures as JSON numbers already, so the
// extracted object is returned as decoded.
type btce struct{}

func (btce) ID() string          { return "btce" }
func (btce) BaseURL() string     { return "https://btc-e.com/api/2" }
func (btce) Method() string      { return http.MethodGet }
func (btce) PairRequired() bool  { return true }
func (btce) PairExample() string { return "btc_usd" }

func (d btce) BuildURL(pair string) string {
	return d.BaseURL() + "/" + strings.ToLower(pair) + "/ticker"
}

func (d btce) ParseTicker(body any, _ string) (any, error) {
	m, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected payload shape %T", d.ID(), body)
	}
	return m["ticker"], nil
}

package exchange

import (
	"fmt"
	"net/http"
	"strings"

	"tickerprovider/internal/normalize"
)

// okcoin takes the pair as a bare query-string suffix appended straight
// onto the base URL. The ticker sits under a "ticker" key with every
// figure quoted as a string.
type okcoin struct{}

func (okcoin) ID() string          { return "okcoin" }
func (okcoin) BaseURL() string     { return "https://www.okcoin.com/api/v1/ticker.do?symbol=" }
func (okcoin) Method() string      { return http.MethodGet }
func (okcoin) PairRequired() bool  { return true }
func (okcoin) PairExample() string { return "btc_usd" }

func (d okcoin) BuildURL(pair string) string {
	return d.BaseURL() + strings.ToLower(pair)
}

func (d okcoin) ParseTicker(body any, _ string) (any, error) {
	m, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected payload shape %T", d.ID(), body)
	}
	return normalize.Value(m["ticker"]), nil
}

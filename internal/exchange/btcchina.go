package exchange

import (
	"fmt"
	"net/http"

	"tickerprovider/internal/httpx"
	"tickerprovider/internal/normalize"
)

// btcchina only ever quotes its BTC/CNY market. BuildOptions pins the
// pair to the literal "btc_cny" regardless of what the caller asked
// for, matching the upstream contract this package replaces; the pair
// argument to FetchTicker is inert for this exchange.
type btcchina struct{}

const btcchinaPair = "btc_cny"

func (btcchina) ID() string          { return "btcchina" }
func (btcchina) BaseURL() string     { return "https://data.btcchina.com/data/ticker" }
func (btcchina) Method() string      { return http.MethodGet }
func (btcchina) PairRequired() bool  { return false }
func (btcchina) PairExample() string { return btcchinaPair }

func (d btcchina) BuildURL(_ string) string {
	return d.BaseURL()
}

func (btcchina) BuildOptions(_ string) httpx.Options {
	return httpx.Options{Pair: btcchinaPair}
}

func (d btcchina) ParseTicker(body any, _ string) (any, error) {
	m, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected payload shape %T", d.ID(), body)
	}
	return normalize.Value(m), nil
}

package exchange

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"tickerprovider/internal/httpx"
	"tickerprovider/internal/normalize"
)

// poloniex answers its whole returnTicker map in one shot, keyed by
// uppercased pair symbol. Without a pair the request is a plain GET for
// everything; with a pair it switches to a POST form naming the symbol.
type poloniex struct{}

func (poloniex) ID() string          { return "poloniex" }
func (poloniex) BaseURL() string     { return "https://poloniex.com/public?command=returnTicker" }
func (poloniex) Method() string      { return http.MethodPost }
func (poloniex) PairRequired() bool  { return false }
func (poloniex) PairExample() string { return "BTC_XMR" }

func (d poloniex) BuildURL(_ string) string {
	return d.BaseURL()
}

func (poloniex) BuildOptions(pair string) httpx.Options {
	if pair == "" {
		return httpx.Options{Method: http.MethodGet}
	}
	return httpx.Options{
		Method: http.MethodPost,
		Form:   url.Values{"symbol": {pair}},
	}
}

func (d poloniex) ParseTicker(body any, pair string) (any, error) {
	m, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected payload shape %T", d.ID(), body)
	}
	all := normalize.Value(m).(map[string]any)
	if pair == "" {
		return all, nil
	}
	return all[strings.ToUpper(pair)], nil
}

package exchange

import (
	"fmt"
	"net/http"

	"tickerprovider/internal/normalize"
)

// bter serves a flat ticker object with a string "result" status field
// mixed into the payload. The status is dropped and the remaining
// fields, all quoted strings upstream, are normalized.
type bter struct{}

func (bter) ID() string          { return "bter" }
func (bter) BaseURL() string     { return "http://data.bter.com/api/1/ticker" }
func (bter) Method() string      { return http.MethodGet }
func (bter) PairRequired() bool  { return true }
func (bter) PairExample() string { return "btc_usd" }

func (d bter) BuildURL(pair string) string {
	return d.BaseURL() + "/" + pair
}

func (d bter) ParseTicker(body any, _ string) (any, error) {
	m, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected payload shape %T", d.ID(), body)
	}
	out := normalize.Value(m).(map[string]any)
	delete(out, "result")
	return out, nil
}

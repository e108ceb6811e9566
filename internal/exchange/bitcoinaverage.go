package exchange

import (
	"fmt"
	"net/http"
	"strings"

	"tickerprovider/internal/normalize"
)

// bitcoinaverage serves one map with an entry per currency symbol plus
// a shared "timestamp" field. Upstream documents a ceiling of roughly
// one request every ten seconds for this endpoint; nothing here
// enforces it, callers own their own pacing.
type bitcoinaverage struct{}

func (bitcoinaverage) ID() string          { return "bitcoinaverage" }
func (bitcoinaverage) BaseURL() string     { return "https://api.bitcoinaverage.com/ticker/global/all" }
func (bitcoinaverage) Method() string      { return http.MethodGet }
func (bitcoinaverage) PairRequired() bool  { return false }
func (bitcoinaverage) PairExample() string { return "USD" }

func (d bitcoinaverage) BuildURL(_ string) string {
	return d.BaseURL()
}

func (d bitcoinaverage) ParseTicker(body any, pair string) (any, error) {
	m, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected payload shape %T", d.ID(), body)
	}
	if pair == "" {
		return normalize.Value(m), nil
	}
	sym := strings.ToUpper(pair)
	sub := make(map[string]any, 2)
	if ts, ok := m["timestamp"]; ok {
		sub["timestamp"] = ts
	}
	if v, ok := m[sym]; ok {
		sub[sym] = v
	}
	return normalize.Value(sub), nil
}

package exchange

import (
	"errors"
	"net/http"
	"reflect"
	"testing"
)

func TestRegistry_LookupKnownAndUnknown(t *testing.T) {
	r := NewRegistry()

	for _, id := range []string{"btce", "bter", "poloniex", "btcchina", "okcoin", "bitcoinaverage", "mintpal"} {
		d, err := r.Lookup(id)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if d.ID() != id {
			t.Fatalf("lookup %s returned %s", id, d.ID())
		}
	}

	if _, err := r.Lookup("nonexistent"); !errors.Is(err, ErrUnknownExchange) {
		t.Fatalf("want ErrUnknownExchange, got %v", err)
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register(stub{id: "btce"})
	d, err := r.Lookup("btce")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := d.(stub); !ok {
		t.Fatalf("expected replacement descriptor, got %T", d)
	}
}

type stub struct{ id string }

func (s stub) ID() string                         { return s.id }
func (stub) BaseURL() string                      { return "" }
func (stub) Method() string                       { return http.MethodGet }
func (stub) PairRequired() bool                   { return false }
func (stub) PairExample() string                  { return "" }
func (stub) BuildURL(string) string               { return "" }
func (stub) ParseTicker(any, string) (any, error) { return nil, nil }

func TestBTCE_URLAndParse(t *testing.T) {
	d := btce{}
	if got := d.BuildURL("BTC_USD"); got != "https://btc-e.com/api/2/btc_usd/ticker" {
		t.Fatalf("url: %s", got)
	}

	body := map[string]any{"ticker": map[string]any{"last": 101.5, "high": 103.0}}
	v, err := d.ParseTicker(body, "BTC_USD")
	if err != nil {
		t.Fatal(err)
	}
	// BTC-E ships JSON numbers; the sub-object comes back as decoded.
	if !reflect.DeepEqual(v, body["ticker"]) {
		t.Fatalf("got %#v", v)
	}
}

func TestBter_DropsResultAndNormalizes(t *testing.T) {
	d := bter{}
	if got := d.BuildURL("btc_usd"); got != "http://data.bter.com/api/1/ticker/btc_usd" {
		t.Fatalf("url: %s", got)
	}

	body := map[string]any{"result": "true", "last": "245.7", "vol_btc": "18.2"}
	v, err := d.ParseTicker(body, "btc_usd")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"last": 245.7, "vol_btc": 18.2}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %#v, want %#v", v, want)
	}
	if _, ok := body["result"]; !ok {
		t.Fatal("parser must not mutate the decoded body")
	}
}

func TestPoloniex_OptionsAndParse(t *testing.T) {
	d := poloniex{}

	// No pair: plain GET for the whole map.
	opts := d.BuildOptions("")
	if opts.Method != http.MethodGet || opts.Form != nil {
		t.Fatalf("no-pair options: %+v", opts)
	}

	// Pair: POST form naming the symbol.
	opts = d.BuildOptions("BTC_XMR")
	if opts.Method != http.MethodPost || opts.Form.Get("symbol") != "BTC_XMR" {
		t.Fatalf("pair options: %+v", opts)
	}

	body := map[string]any{
		"BTC_XMR": map[string]any{"last": "0.0031"},
		"BTC_LTC": map[string]any{"last": "0.017"},
	}
	v, err := d.ParseTicker(body, "btc_xmr")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"last": 0.0031}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("pair lookup: got %#v, want %#v", v, want)
	}

	v, err = d.ParseTicker(body, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(v.(map[string]any)) != 2 {
		t.Fatalf("whole map: got %#v", v)
	}
}

func TestBTCChina_ForcesPair(t *testing.T) {
	d := btcchina{}
	// The caller's pair is inert for this exchange.
	for _, pair := range []string{"", "ltc_cny", "BTC_USD"} {
		if got := d.BuildOptions(pair).Pair; got != "btc_cny" {
			t.Fatalf("pair %q: options pair %q", pair, got)
		}
	}

	v, err := d.ParseTicker(map[string]any{"ticker": map[string]any{"last": "4521.12"}}, "")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"ticker": map[string]any{"last": 4521.12}}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %#v", v)
	}
}

func TestOKCoin_URLAndParse(t *testing.T) {
	d := okcoin{}
	if got := d.BuildURL("BTC_USD"); got != "https://www.okcoin.com/api/v1/ticker.do?symbol=btc_usd" {
		t.Fatalf("url: %s", got)
	}

	body := map[string]any{"date": "1420000000", "ticker": map[string]any{"last": "241.23", "vol": "8776.12"}}
	v, err := d.ParseTicker(body, "btc_usd")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"last": 241.23, "vol": 8776.12}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %#v, want %#v", v, want)
	}
}

func TestBitcoinAverage_SubsetAndWhole(t *testing.T) {
	d := bitcoinaverage{}
	body := map[string]any{
		"timestamp": "1420000000",
		"USD":       map[string]any{"last": "243.5"},
		"EUR":       map[string]any{"last": "210.1"},
	}

	v, err := d.ParseTicker(body, "usd")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"timestamp": 1420000000.0,
		"USD":       map[string]any{"last": 243.5},
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("subset: got %#v, want %#v", v, want)
	}

	v, err = d.ParseTicker(body, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(v.(map[string]any)) != 3 {
		t.Fatalf("whole: got %#v", v)
	}
}

func TestMintpal_MatchesWithoutNormalizing(t *testing.T) {
	d := mintpal{}
	body := []any{
		map[string]any{"symbol": "DOGE_BTC", "last": "0.00000042"},
		map[string]any{"symbol": "BTC_USD", "last": "243.5"},
	}

	v, err := d.ParseTicker(body, "DOGE_BTC")
	if err != nil {
		t.Fatal(err)
	}
	rec := v.(map[string]any)
	// First match wins and numeric strings stay strings.
	if rec["symbol"] != "DOGE_BTC" || rec["last"] != "0.00000042" {
		t.Fatalf("got %#v", rec)
	}

	// Matching is case-sensitive, no transform.
	v, err = d.ParseTicker(body, "doge_btc")
	if err != nil {
		t.Fatal(err)
	}
	if v != nil {
		t.Fatalf("lowercase pair must not match: %#v", v)
	}

	// No pair: the raw array as decoded.
	v, err = d.ParseTicker(body, "")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(v, body) {
		t.Fatalf("got %#v", v)
	}
}

func TestParseTicker_WrongShape(t *testing.T) {
	if _, err := (btce{}).ParseTicker([]any{}, "btc_usd"); err == nil {
		t.Fatal("array body should fail for btce")
	}
	if _, err := (mintpal{}).ParseTicker(map[string]any{}, ""); err == nil {
		t.Fatal("object body should fail for mintpal")
	}
}

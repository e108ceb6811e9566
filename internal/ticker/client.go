// Package ticker is the public entry point: it composes the request
// builder, one HTTP round trip and the response dispatcher into
// FetchTicker.
package ticker

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"tickerprovider/internal/exchange"
	"tickerprovider/internal/httpx"
	"tickerprovider/internal/request"
)

const defaultTimeout = 15 * time.Second

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=ticker_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches and normalizes current-price tickers from the
// supported exchanges. A zero-configured Client talks to the real
// endpoints; tests swap the transport or the registry through options.
type Client struct {
	registry *exchange.Registry
	builder  *request.Builder
	defaults *httpx.DefaultsCell
	http     HTTPClient
	timeout  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport used for exchange calls.
func WithHTTPClient(h HTTPClient) Option {
	return func(c *Client) { c.http = h }
}

// WithRegistry replaces the built-in exchange registry.
func WithRegistry(r *exchange.Registry) Option {
	return func(c *Client) { c.registry = r }
}

// WithTimeout sets the round-trip timeout of the built-in transport.
// It has no effect when WithHTTPClient is also given.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

// New returns a Client wired to every supported exchange.
func New(opts ...Option) *Client {
	c := &Client{
		registry: exchange.NewRegistry(),
		defaults: httpx.NewDefaults(),
		timeout:  defaultTimeout,
	}
	for _, o := range opts {
		o(c)
	}
	if c.http == nil {
		c.http = httpx.New(c.timeout, c.defaults)
	}
	c.builder = &request.Builder{Registry: c.registry, Defaults: c.defaults}
	return c
}

// UpdateDefaultOptions changes the process-wide request defaults; nil
// patch fields keep their current value.
func (c *Client) UpdateDefaultOptions(p httpx.DefaultsPatch) {
	if h, ok := c.http.(*httpx.Client); ok {
		h.UpdateDefaults(p)
		return
	}
	c.defaults.Update(p)
}

// Exchanges returns the ids of every registered exchange, sorted.
func (c *Client) Exchanges() []string {
	return c.registry.IDs()
}

// BuildURL renders the request URL for the exchange and pair.
func (c *Client) BuildURL(id, pair string) (string, error) {
	return c.builder.BuildURL(id, pair)
}

// BuildOptions returns the merged request options for the exchange and
// pair.
func (c *Client) BuildOptions(id, pair string) (httpx.Options, error) {
	return c.builder.BuildOptions(id, pair)
}

// FetchTicker validates id and pair, performs one HTTP round trip and
// returns the exchange's ticker value. Validation failures return
// before any network access; every other failure kind surfaces through
// the same error return. There is no retry.
func (c *Client) FetchTicker(ctx context.Context, id, pair string) (any, error) {
	if err := c.builder.Validate(id, pair); err != nil {
		return nil, err
	}
	d, err := c.registry.Lookup(id)
	if err != nil {
		return nil, err
	}
	opts, err := c.builder.BuildOptions(id, pair)
	if err != nil {
		return nil, err
	}
	req, err := newRequest(ctx, d.BuildURL(pair), opts)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	return dispatch(resp, err, d, pair)
}

// Result is one FetchTicker completion.
type Result struct {
	Exchange string
	Pair     string
	Ticker   any
	Err      error
}

// Go runs FetchTicker in its own goroutine and delivers exactly one
// Result on the returned channel.
func (c *Client) Go(ctx context.Context, id, pair string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		v, err := c.FetchTicker(ctx, id, pair)
		ch <- Result{Exchange: id, Pair: pair, Ticker: v, Err: err}
	}()
	return ch
}

func newRequest(ctx context.Context, rawURL string, o httpx.Options) (*http.Request, error) {
	var body io.Reader
	if o.Method == http.MethodPost && len(o.Form) > 0 {
		body = strings.NewReader(o.Form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, o.Method, rawURL, body)
	if err != nil {
		return nil, err
	}
	if o.ContentType != "" {
		req.Header.Set("Content-Type", o.ContentType)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if o.UserAgent != "" {
		req.Header.Set("User-Agent", o.UserAgent)
	}
	if !o.KeepAlive {
		req.Close = true
	}
	return req, nil
}

package httpx

import (
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Options describes one outgoing exchange request. A fresh value is
// built per call by merging the process defaults, the call parameters
// and the descriptor's own overrides, in that order.
type Options struct {
	Exchange    string
	Pair        string
	Method      string
	ContentType string
	UserAgent   string
	Insecure    bool
	KeepAlive   bool
	// Form is the urlencoded POST body, nil for GET requests.
	Form url.Values
}

// Merge overlays the non-zero fields of over onto o. Only the fields a
// descriptor may override participate; the TLS and keep-alive hints
// always come from the process defaults.
func (o Options) Merge(over Options) Options {
	if over.Method != "" {
		o.Method = over.Method
	}
	if over.Pair != "" {
		o.Pair = over.Pair
	}
	if over.ContentType != "" {
		o.ContentType = over.ContentType
	}
	if over.UserAgent != "" {
		o.UserAgent = over.UserAgent
	}
	if over.Form != nil {
		o.Form = over.Form
	}
	return o
}

// Client is a small wrapper around http.Client with sane defaults.
// Requests carry their context; headers missing from a request are
// filled in from the defaults cell.
type Client struct {
	HTTP      *http.Client
	defaults  *DefaultsCell
	transport *http.Transport
}

func New(timeout time.Duration, defaults *DefaultsCell) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          200,
		MaxIdleConnsPerHost:   100,
		MaxConnsPerHost:       100,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: 5 * time.Second,
	}
	if defaults == nil {
		defaults = NewDefaults()
	}
	c := &Client{
		HTTP:      &http.Client{Timeout: timeout, Transport: transport},
		defaults:  defaults,
		transport: transport,
	}
	c.applyTLS(defaults.Get())
	return c
}

// Defaults exposes the cell this client reads its headers from.
func (c *Client) Defaults() *DefaultsCell { return c.defaults }

// UpdateDefaults changes the request defaults; nil patch fields keep
// their current value. Toggling Insecure reconfigures the transport's
// TLS verification.
func (c *Client) UpdateDefaults(p DefaultsPatch) {
	c.defaults.Update(p)
	if p.Insecure != nil {
		c.applyTLS(c.defaults.Get())
	}
}

func (c *Client) applyTLS(d Defaults) {
	if d.Insecure {
		c.transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	} else {
		c.transport.TLSClientConfig = nil
	}
}

// Do sends req, filling in User-Agent and Content-Type from the current
// defaults when the request does not set them itself.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	d := c.defaults.Get()
	if d.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", d.UserAgent)
	}
	if d.ContentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", d.ContentType)
	}
	if !d.KeepAlive {
		req.Close = true
	}
	return c.HTTP.Do(req)
}

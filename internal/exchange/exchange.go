// Package exchange holds one descriptor per supported exchange: how to
// address its public ticker endpoint and how to read what it returns.
package exchange

import (
	"errors"
	"fmt"

	"tickerprovider/internal/httpx"
)

// ErrUnknownExchange is returned by Registry.Lookup for ids that were
// never registered.
var ErrUnknownExchange = errors.New("unknown exchange")

// MissingPairError reports a required trading pair that was not
// supplied.
type MissingPairError struct {
	Exchange string
	Example  string
}

func (e *MissingPairError) Error() string {
	if e.Example != "" {
		return fmt.Sprintf("%s requires a pair, e.g. %q", e.Exchange, e.Example)
	}
	return fmt.Sprintf("%s requires a pair", e.Exchange)
}

// Descriptor describes one exchange's ticker contract. Implementations
// are pure; per-call state lives in the request options built for each
// request.
type Descriptor interface {
	ID() string
	BaseURL() string
	Method() string
	// PairRequired reports whether the exchange cannot answer without
	// a trading pair.
	PairRequired() bool
	// PairExample is a sample pair for error messages, "" when none
	// applies.
	PairExample() string
	// BuildURL renders the concrete request URL for pair (may be "").
	BuildURL(pair string) string
	// ParseTicker turns a decoded JSON body into the ticker value.
	// A nil value with a nil error means the body held no ticker.
	ParseTicker(body any, pair string) (any, error)
}

// OptionsBuilder is implemented by descriptors whose method or payload
// depends on the pair.
type OptionsBuilder interface {
	BuildOptions(pair string) httpx.Options
}

package ticker

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"tickerprovider/internal/exchange"
)

// ErrTransport tags network-level failures; the underlying message is
// wrapped alongside it.
var ErrTransport = errors.New("transport error")

// ErrEmptyResponse is returned when a 200 body decodes to nothing the
// exchange parser can use.
var ErrEmptyResponse = errors.New("empty response")

// StatusError reports a non-200 HTTP response. The body is not parsed
// in that case.
type StatusError struct {
	Exchange string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: http status %d", e.Exchange, e.Code)
}

// dispatch turns a completed HTTP exchange into a ticker value or a
// typed failure. The transport error is checked before the status, and
// the body is only decoded on a 200.
func dispatch(resp *http.Response, err error, d exchange.Descriptor, pair string) (any, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Exchange: d.ID(), Code: resp.StatusCode}
	}
	var body any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", d.ID(), ErrEmptyResponse, err)
	}
	if body == nil {
		return nil, fmt.Errorf("%s: %w", d.ID(), ErrEmptyResponse)
	}
	v, err := d.ParseTicker(body, pair)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%s: %w: no ticker for %q", d.ID(), ErrEmptyResponse, pair)
	}
	return v, nil
}

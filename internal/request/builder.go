// Package request turns (exchange id, pair) into a concrete URL and a
// merged set of request options.
package request

import (
	"tickerprovider/internal/exchange"
	"tickerprovider/internal/httpx"
)

// Builder validates calls against a descriptor registry and assembles
// per-call request options from the process defaults.
type Builder struct {
	Registry *exchange.Registry
	Defaults *httpx.DefaultsCell
}

// Validate checks that id is registered and that a pair is present when
// the exchange requires one. It never touches the network.
func (b *Builder) Validate(id, pair string) error {
	d, err := b.Registry.Lookup(id)
	if err != nil {
		return err
	}
	if d.PairRequired() && pair == "" {
		return &exchange.MissingPairError{Exchange: id, Example: d.PairExample()}
	}
	return nil
}

// BuildURL renders the request URL for id and pair.
func (b *Builder) BuildURL(id, pair string) (string, error) {
	d, err := b.Registry.Lookup(id)
	if err != nil {
		return "", err
	}
	return d.BuildURL(pair), nil
}

// BuildOptions merges, later sources winning: the process defaults,
// then the call parameters and descriptor method, then the descriptor's
// own overrides. A descriptor override of the method or pair is final.
func (b *Builder) BuildOptions(id, pair string) (httpx.Options, error) {
	d, err := b.Registry.Lookup(id)
	if err != nil {
		return httpx.Options{}, err
	}
	def := b.Defaults.Get()
	opts := httpx.Options{
		Exchange:    id,
		Pair:        pair,
		Method:      d.Method(),
		ContentType: def.ContentType,
		UserAgent:   def.UserAgent,
		Insecure:    def.Insecure,
		KeepAlive:   def.KeepAlive,
	}
	if ob, ok := d.(exchange.OptionsBuilder); ok {
		opts = opts.Merge(ob.BuildOptions(pair))
	}
	return opts, nil
}

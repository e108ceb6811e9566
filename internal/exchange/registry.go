package exchange

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps exchange ids to descriptors. Reads vastly outnumber
// writes; Register exists so tests can substitute descriptors, not for
// mutation during request processing.
type Registry struct {
	mu   sync.RWMutex
	byID map[string]Descriptor
}

// NewRegistry returns a registry preloaded with every supported
// exchange.
func NewRegistry() *Registry {
	r := &Registry{byID: make(map[string]Descriptor)}
	for _, d := range []Descriptor{
		btce{},
		bter{},
		poloniex{},
		btcchina{},
		okcoin{},
		bitcoinaverage{},
		mintpal{},
	} {
		r.Register(d)
	}
	return r
}

// Register adds or replaces the descriptor for d.ID().
func (r *Registry) Register(d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[d.ID()] = d
}

// Lookup returns the descriptor for id.
func (r *Registry) Lookup(id string) (Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExchange, id)
	}
	return d, nil
}

// IDs returns the registered exchange ids, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

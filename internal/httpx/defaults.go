package httpx

import "sync"

// Defaults is the process-wide request configuration: read by every
// request, changed only through DefaultsCell.Update.
type Defaults struct {
	ContentType string
	UserAgent   string
	Insecure    bool
	KeepAlive   bool
}

// DefaultsPatch updates select Defaults fields; nil fields keep the
// current value.
type DefaultsPatch struct {
	ContentType *string
	UserAgent   *string
	Insecure    *bool
	KeepAlive   *bool
}

// DefaultsCell holds the current Defaults behind a read-mostly lock.
type DefaultsCell struct {
	mu sync.RWMutex
	d  Defaults
}

// NewDefaults returns a cell seeded with the stock defaults.
func NewDefaults() *DefaultsCell {
	return &DefaultsCell{d: Defaults{
		ContentType: "application/json",
		UserAgent:   "tickerprovider/1.0",
		KeepAlive:   true,
	}}
}

// Get returns a snapshot of the current defaults.
func (c *DefaultsCell) Get() Defaults {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.d
}

// Update applies the non-nil fields of p.
func (c *DefaultsCell) Update(p DefaultsPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p.ContentType != nil {
		c.d.ContentType = *p.ContentType
	}
	if p.UserAgent != nil {
		c.d.UserAgent = *p.UserAgent
	}
	if p.Insecure != nil {
		c.d.Insecure = *p.Insecure
	}
	if p.KeepAlive != nil {
		c.d.KeepAlive = *p.KeepAlive
	}
}

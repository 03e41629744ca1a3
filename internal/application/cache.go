package application

import (
	"sort"
	"sync"
	"sync/atomic"

	"exchangerates-service/internal/domain"
)

// RateCache holds the currencies served to readers, keyed by code.
// Entries are copied on the way in and on the way out so callers never share a rates map.
type RateCache struct {
	m sync.Map
	n atomic.Int64
}

func NewRateCache() *RateCache { return &RateCache{} }

func (c *RateCache) Get(code string) (domain.Currency, bool) {
	v, ok := c.m.Load(code)
	if !ok {
		return domain.Currency{}, false
	}
	return v.(domain.Currency).Clone(), true
}

func (c *RateCache) Has(code string) bool {
	_, ok := c.m.Load(code)
	return ok
}

// Put inserts or replaces the entry for cur.Code.
func (c *RateCache) Put(cur domain.Currency) {
	if _, loaded := c.m.Swap(cur.Code, cur.Clone()); !loaded {
		c.n.Add(1)
	}
}

// Codes returns the cached codes in ascending order.
func (c *RateCache) Codes() []string {
	out := make([]string, 0, c.Len())
	c.m.Range(func(k, _ any) bool {
		out = append(out, k.(string))
		return true
	})
	sort.Strings(out)
	return out
}

func (c *RateCache) Len() int { return int(c.n.Load()) }

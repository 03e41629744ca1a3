package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rates maps a quote currency code to the amount of it one unit of the base buys.
type Rates map[string]decimal.Decimal

// Clone returns an independent copy; nil stays nil.
func (r Rates) Clone() Rates {
	if r == nil {
		return nil
	}
	out := make(Rates, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Currency is a base currency together with its latest known rates.
// ID is assigned by the store; zero means the record was never persisted.
type Currency struct {
	ID        int64
	Code      string
	Rates     Rates
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone copies the record including its rates map.
func (c Currency) Clone() Currency {
	c.Rates = c.Rates.Clone()
	return c
}

// Touch replaces the rates and stamps the update time, never moving it before CreatedAt.
func (c *Currency) Touch(rates Rates, now time.Time) {
	c.Rates = rates.Clone()
	if now.Before(c.CreatedAt) {
		now = c.CreatedAt
	}
	c.UpdatedAt = now
}

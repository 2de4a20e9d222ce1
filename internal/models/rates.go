package models

import "time"

// RateTable maps a currency code to its multiplier relative to a single
// anchor currency. The anchor's own entry is always exactly 1.0.
type RateTable map[string]float64

// Clone returns an independent copy of the table.
func (t RateTable) Clone() RateTable {
	if t == nil {
		return nil
	}
	out := make(RateTable, len(t))
	for code, rate := range t {
		out[code] = rate
	}
	return out
}

// Keys of the persisted cache record in the rate store.
const (
	KeyExchangeRates = "exchangeRates"
	KeyLastUpdate    = "lastUpdate"
	KeyRateAnchor    = "rateAnchor"
)

// CacheRecord is the persisted pair of rate table and fetch timestamp,
// together with the anchor the table was fetched for. It is overwritten as a
// whole on every successful fetch and read once at startup.
type CacheRecord struct {
	Anchor    string
	Rates     RateTable
	FetchedAt time.Time
}

// Fresh reports whether the record is younger than ttl.
func (r CacheRecord) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(r.FetchedAt) < ttl
}

// RatesResponse carries the current committed rate table.
// swagger:model RatesResponse
type RatesResponse struct {
	// Anchor currency the rates are relative to
	Anchor string `json:"anchor" example:"USD"`
	// Rates by currency code
	Rates map[string]float64 `json:"rates"`
	// Time of the last successful fetch, RFC3339; empty before first commit
	LastUpdate string `json:"last_update,omitempty" example:"2026-08-31T12:00:00Z"`
}

// ErrorResponse is the generic error payload.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Error string `json:"error" example:"unsupported currency"`
}

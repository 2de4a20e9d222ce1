package services

import "github.com/linkalls/raterover/internal/models"

// Convert computes the target amount from a rate table anchored at anchor.
// It is pure: no I/O, no state, deterministic.
//
// The second return value reports that the table could not answer the query
// because from differs from the anchor; the caller should request a refresh
// for from and treat the returned amount as a placeholder. An empty table is
// a plain pass-through (no rates available yet), not an error. An unknown
// target currency falls back to 1:1 with the anchor.
func Convert(amount float64, from, to string, table models.RateTable, anchor string) (float64, bool) {
	if len(table) == 0 {
		return amount, false
	}
	if from != anchor {
		return amount, true
	}

	rate, ok := table[to]
	if !ok {
		rate = 1.0
	}
	return amount * rate, false
}

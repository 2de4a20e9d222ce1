package repositories

import (
	"encoding/json"
	"time"

	"github.com/linkalls/raterover/internal/logger"
	"github.com/linkalls/raterover/internal/models"
)

// encodeRecord flattens a cache record into the persisted key-value entries.
func encodeRecord(rec models.CacheRecord) (map[string]string, error) {
	raw, err := json.Marshal(rec.Rates)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		models.KeyExchangeRates: string(raw),
		models.KeyLastUpdate:    rec.FetchedAt.UTC().Format(time.RFC3339),
		models.KeyRateAnchor:    rec.Anchor,
	}, nil
}

// decodeRecord rebuilds a cache record from its persisted entries. A nil
// result means cache miss: any missing or malformed entry discards the whole
// record rather than surfacing an error to the caller.
func decodeRecord(kv map[string]string) *models.CacheRecord {
	ratesRaw := kv[models.KeyExchangeRates]
	if ratesRaw == "" {
		return nil
	}

	var rates models.RateTable
	if err := json.Unmarshal([]byte(ratesRaw), &rates); err != nil {
		logger.Log.Warnw("discarding malformed cached rates", "error", err)
		return nil
	}

	fetchedAt, err := time.Parse(time.RFC3339, kv[models.KeyLastUpdate])
	if err != nil {
		logger.Log.Warnw("discarding cached rates with malformed timestamp",
			"value", kv[models.KeyLastUpdate], "error", err)
		return nil
	}

	anchor := kv[models.KeyRateAnchor]
	if anchor == "" {
		return nil
	}

	return &models.CacheRecord{
		Anchor:    anchor,
		Rates:     rates,
		FetchedAt: fetchedAt,
	}
}

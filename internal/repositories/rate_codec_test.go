package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkalls/raterover/internal/models"
)

func TestRecordCodec_RoundTrip(t *testing.T) {
	rec := models.CacheRecord{
		Anchor: models.USD,
		Rates: models.RateTable{
			models.USD: 1.0,
			models.EUR: 0.92,
			models.JPY: 150.25,
		},
		FetchedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}

	kv, err := encodeRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30T12:00:00Z", kv[models.KeyLastUpdate])
	assert.Equal(t, models.USD, kv[models.KeyRateAnchor])

	got := decodeRecord(kv)
	require.NotNil(t, got)
	assert.Equal(t, rec.Anchor, got.Anchor)
	assert.Equal(t, rec.Rates, got.Rates)
	assert.True(t, rec.FetchedAt.Equal(got.FetchedAt))
}

func TestDecodeRecord_MissIsNil(t *testing.T) {
	base := map[string]string{
		models.KeyExchangeRates: `{"USD":1,"EUR":0.92}`,
		models.KeyLastUpdate:    "2026-08-30T12:00:00Z",
		models.KeyRateAnchor:    models.USD,
	}

	tests := []struct {
		name   string
		mutate func(kv map[string]string)
	}{
		{"empty input", func(kv map[string]string) {
			for k := range kv {
				delete(kv, k)
			}
		}},
		{"missing rates", func(kv map[string]string) { delete(kv, models.KeyExchangeRates) }},
		{"malformed rates", func(kv map[string]string) { kv[models.KeyExchangeRates] = "{broken" }},
		{"missing timestamp", func(kv map[string]string) { delete(kv, models.KeyLastUpdate) }},
		{"malformed timestamp", func(kv map[string]string) { kv[models.KeyLastUpdate] = "yesterday" }},
		{"missing anchor", func(kv map[string]string) { delete(kv, models.KeyRateAnchor) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := make(map[string]string, len(base))
			for k, v := range base {
				kv[k] = v
			}
			tt.mutate(kv)
			assert.Nil(t, decodeRecord(kv))
		})
	}
}

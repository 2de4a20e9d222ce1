package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/linkalls/raterover/internal/models"
)

func TestRedisRateStore(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	store := NewRedisRateStore(rdb, 0)

	t.Run("Empty store is a miss", func(t *testing.T) {
		rec, err := store.LoadRates(ctx)
		assert.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("Save and load record", func(t *testing.T) {
		rec := models.CacheRecord{
			Anchor: models.USD,
			Rates: models.RateTable{
				models.USD: 1.0,
				models.EUR: 0.92,
				models.JPY: 150.0,
			},
			FetchedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		}

		err := store.SaveRates(ctx, rec)
		assert.NoError(t, err)

		got, err := store.LoadRates(ctx)
		assert.NoError(t, err)
		if assert.NotNil(t, got) {
			assert.Equal(t, rec.Anchor, got.Anchor)
			assert.Equal(t, rec.Rates, got.Rates)
			assert.True(t, rec.FetchedAt.Equal(got.FetchedAt))
		}
	})

	t.Run("Partial record is a miss", func(t *testing.T) {
		// Drop the anchor key to simulate a half-written cache.
		err := rdb.Del(ctx, models.KeyRateAnchor).Err()
		assert.NoError(t, err)

		got, err := store.LoadRates(ctx)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Save overwrites previous record", func(t *testing.T) {
		rec := models.CacheRecord{
			Anchor: models.EUR,
			Rates: models.RateTable{
				models.EUR: 1.0,
				models.USD: 1.09,
			},
			FetchedAt: time.Now().UTC().Truncate(time.Second),
		}

		err := store.SaveRates(ctx, rec)
		assert.NoError(t, err)

		got, err := store.LoadRates(ctx)
		assert.NoError(t, err)
		if assert.NotNil(t, got) {
			assert.Equal(t, models.EUR, got.Anchor)
			assert.Equal(t, rec.Rates, got.Rates)
		}
	})

	t.Run("Entries expire with TTL", func(t *testing.T) {
		expiring := NewRedisRateStore(rdb, 2*time.Second)

		rec := models.CacheRecord{
			Anchor:    models.GBP,
			Rates:     models.RateTable{models.GBP: 1.0},
			FetchedAt: time.Now().UTC(),
		}
		err := expiring.SaveRates(ctx, rec)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		got, err := expiring.LoadRates(ctx)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/linkalls/raterover/internal/logger"
	"github.com/linkalls/raterover/internal/models"
)

// RedisRateStore persists the cached rate table in Redis.
type RedisRateStore struct {
	client *redis.Client
	exp    time.Duration // 0 keeps entries until the next overwrite
}

// NewRedisRateStore creates a store instance with an optional entry TTL.
func NewRedisRateStore(client *redis.Client, expiration time.Duration) *RedisRateStore {
	return &RedisRateStore{
		client: client,
		exp:    expiration,
	}
}

// LoadRates reads the persisted record. A nil record without error means
// cache miss, including partially written or malformed entries.
func (s *RedisRateStore) LoadRates(ctx context.Context) (*models.CacheRecord, error) {
	vals, err := s.client.MGet(ctx,
		models.KeyExchangeRates,
		models.KeyLastUpdate,
		models.KeyRateAnchor,
	).Result()
	if err != nil {
		logger.Log.Errorw("redis load failed", "error", err)
		return nil, err
	}

	kv := make(map[string]string, 3)
	keys := []string{models.KeyExchangeRates, models.KeyLastUpdate, models.KeyRateAnchor}
	for i, v := range vals {
		str, ok := v.(string)
		if !ok {
			continue
		}
		kv[keys[i]] = str
	}

	rec := decodeRecord(kv)

	logger.Log.Infow("redis load",
		"hit", rec != nil,
	)

	return rec, nil
}

// SaveRates overwrites all entries of the record atomically via a transaction
// pipeline.
func (s *RedisRateStore) SaveRates(ctx context.Context, rec models.CacheRecord) error {
	kv, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	for key, val := range kv {
		pipe.Set(ctx, key, val, s.exp)
	}
	_, err = pipe.Exec(ctx)

	logger.Log.Infow("redis save",
		"anchor", rec.Anchor,
		"rates", len(rec.Rates),
		"error", err,
	)

	return err
}

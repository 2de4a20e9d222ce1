package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/linkalls/raterover/internal/logger"
	"github.com/linkalls/raterover/internal/models"
)

// PostgresRateStore persists the cached rate table in a key-value table.
type PostgresRateStore struct {
	db *sqlx.DB
}

func NewPostgresRateStore(db *sqlx.DB) *PostgresRateStore {
	return &PostgresRateStore{db: db}
}

// EnsureSchema creates the cache table when it does not exist yet.
func (s *PostgresRateStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS rate_cache (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

// LoadRates reads the persisted record. A nil record without error means
// cache miss, including partially written or malformed entries.
func (s *PostgresRateStore) LoadRates(ctx context.Context) (*models.CacheRecord, error) {
	rows, err := s.db.QueryxContext(ctx,
		`SELECT key, value FROM rate_cache WHERE key IN ($1, $2, $3)`,
		models.KeyExchangeRates, models.KeyLastUpdate, models.KeyRateAnchor,
	)
	if err != nil {
		logger.Log.Errorw("postgres load failed", "error", err)
		return nil, err
	}
	defer rows.Close()

	kv := make(map[string]string, 3)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			logger.Log.Errorw("postgres scan failed", "error", err)
			return nil, err
		}
		kv[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rec := decodeRecord(kv)

	logger.Log.Infow("postgres load",
		"hit", rec != nil,
	)

	return rec, nil
}

// SaveRates upserts all entries of the record inside a single transaction so
// the store is never observed half-written.
func (s *PostgresRateStore) SaveRates(ctx context.Context, rec models.CacheRecord) error {
	kv, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	const query = `
		INSERT INTO rate_cache (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	for key, val := range kv {
		if _, err := tx.ExecContext(ctx, query, key, val); err != nil {
			logger.Log.Errorw("postgres upsert failed", "key", key, "error", err)
			return err
		}
	}

	err = tx.Commit()

	logger.Log.Infow("postgres save",
		"anchor", rec.Anchor,
		"rates", len(rec.Rates),
		"error", err,
	)

	return err
}

package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkalls/raterover/internal/models"
)

func newMockStore(t *testing.T) (*PostgresRateStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresRateStore(sqlx.NewDb(db, "sqlmock")), mock
}

func TestPostgresRateStore_LoadRates_Hit(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow(models.KeyExchangeRates, `{"USD":1,"EUR":0.92}`).
		AddRow(models.KeyLastUpdate, "2026-08-30T12:00:00Z").
		AddRow(models.KeyRateAnchor, models.USD)
	mock.ExpectQuery(`SELECT key, value FROM rate_cache`).
		WithArgs(models.KeyExchangeRates, models.KeyLastUpdate, models.KeyRateAnchor).
		WillReturnRows(rows)

	rec, err := store.LoadRates(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, models.USD, rec.Anchor)
	assert.Equal(t, models.RateTable{models.USD: 1, models.EUR: 0.92}, rec.Rates)
	assert.Equal(t, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), rec.FetchedAt.UTC())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRateStore_LoadRates_EmptyTableIsMiss(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT key, value FROM rate_cache`).
		WithArgs(models.KeyExchangeRates, models.KeyLastUpdate, models.KeyRateAnchor).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))

	rec, err := store.LoadRates(context.Background())
	require.NoError(t, err)
	assert.Nil(t, rec)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRateStore_LoadRates_QueryError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT key, value FROM rate_cache`).
		WillReturnError(errors.New("connection reset"))

	rec, err := store.LoadRates(context.Background())
	assert.Error(t, err)
	assert.Nil(t, rec)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRateStore_SaveRates(t *testing.T) {
	store, mock := newMockStore(t)

	// The three upserts come from map iteration, so their order varies.
	mock.MatchExpectationsInOrder(false)
	mock.ExpectBegin()
	for i := 0; i < 3; i++ {
		mock.ExpectExec(`INSERT INTO rate_cache`).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := store.SaveRates(context.Background(), models.CacheRecord{
		Anchor:    models.USD,
		Rates:     models.RateTable{models.USD: 1, models.EUR: 0.92},
		FetchedAt: time.Now(),
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRateStore_SaveRates_UpsertErrorRollsBack(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO rate_cache`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := store.SaveRates(context.Background(), models.CacheRecord{
		Anchor:    models.USD,
		Rates:     models.RateTable{models.USD: 1},
		FetchedAt: time.Now(),
	})
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRateStore_EnsureSchema(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS rate_cache`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

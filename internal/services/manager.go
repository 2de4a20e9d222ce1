package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/singleflight"

	"github.com/linkalls/raterover/internal/logger"
	"github.com/linkalls/raterover/internal/models"
)

var (
	// ErrUnsupportedCurrency is returned for codes outside the catalog.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

// RateStore persists the cache record. LoadRates returns a nil record on
// cache miss, including malformed persisted data.
type RateStore interface {
	LoadRates(ctx context.Context) (*models.CacheRecord, error)
	SaveRates(ctx context.Context, rec models.CacheRecord) error
}

// RatesFetcher performs a single network fetch of rates anchored at base.
type RatesFetcher interface {
	Fetch(ctx context.Context, base string, targets []string) (models.RateTable, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RateManager owns the in-memory rate table and its anchor. It decides
// between serving cached rates and refreshing from the network, guarantees at
// most one fetch in flight per base currency, and notifies subscribers after
// every committed change.
type RateManager struct {
	store       RateStore
	fetcher     RatesFetcher
	kafkaWriter KafkaWriter
	ttl         time.Duration

	mu           sync.RWMutex
	table        models.RateTable
	anchor       string
	lastUpdate   time.Time
	selectedBase string

	group singleflight.Group

	subsMu sync.Mutex
	subs   []func(anchor string)
}

// NewRateManager creates a manager in the uninitialized state. kafkaWriter
// may be nil; rate-update events are then skipped. ttl is the cache freshness
// window (24h in production).
func NewRateManager(
	store RateStore,
	fetcher RatesFetcher,
	kafkaWriter KafkaWriter,
	defaultBase string,
	ttl time.Duration,
) *RateManager {
	return &RateManager{
		store:        store,
		fetcher:      fetcher,
		kafkaWriter:  kafkaWriter,
		ttl:          ttl,
		selectedBase: strings.ToUpper(strings.TrimSpace(defaultBase)),
	}
}

// Initialize loads the persisted record and adopts it when fresh; otherwise
// it refreshes from the network for the selected base. Until it returns,
// CurrentTable observes an empty table and conversions pass amounts through.
func (m *RateManager) Initialize(ctx context.Context) error {
	rec, err := m.store.LoadRates(ctx)
	if err != nil {
		// Storage trouble is a cache miss, never fatal.
		logger.Log.Warnw("rate cache unavailable, falling back to fetch", "error", err)
		rec = nil
	}

	if rec != nil && rec.Fresh(time.Now(), m.ttl) && models.IsSupported(rec.Anchor) {
		m.mu.Lock()
		m.table = rec.Rates
		m.anchor = rec.Anchor
		m.lastUpdate = rec.FetchedAt
		m.selectedBase = rec.Anchor
		m.mu.Unlock()

		logger.Log.Infow("adopted cached rates",
			"anchor", rec.Anchor,
			"rates", len(rec.Rates),
			"fetched_at", rec.FetchedAt,
		)

		m.notify(rec.Anchor)
		return nil
	}

	return m.Refresh(ctx, m.SelectedBase())
}

// Refresh fetches rates anchored at base and commits them. Concurrent calls
// for the same base coalesce into a single network request. A failed fetch
// leaves the previously committed table and anchor untouched.
func (m *RateManager) Refresh(ctx context.Context, base string) error {
	base = strings.ToUpper(strings.TrimSpace(base))
	if !models.IsSupported(base) {
		return ErrUnsupportedCurrency
	}

	_, err, _ := m.group.Do(base, func() (interface{}, error) {
		return nil, m.doRefresh(ctx, base)
	})
	return err
}

// SetBase records a new user-selected base currency and triggers a refresh
// for it. Any fetch still in flight for another base will be discarded when
// it completes.
func (m *RateManager) SetBase(ctx context.Context, base string) error {
	base = strings.ToUpper(strings.TrimSpace(base))
	if !models.IsSupported(base) {
		return ErrUnsupportedCurrency
	}

	m.mu.Lock()
	m.selectedBase = base
	m.mu.Unlock()

	return m.Refresh(ctx, base)
}

func (m *RateManager) doRefresh(ctx context.Context, base string) error {
	targets := make([]string, 0, len(models.Catalog)-1)
	for _, c := range models.Catalog {
		if c.Code != base {
			targets = append(targets, c.Code)
		}
	}

	table, err := m.fetcher.Fetch(ctx, base, targets)
	if err != nil {
		logger.Log.Errorw("rate refresh failed, keeping previous table",
			"base", base,
			"error", err,
		)
		return err
	}

	now := time.Now()

	m.mu.Lock()
	if m.selectedBase != base {
		// The selection moved on while this fetch was in flight; an older
		// response must never overwrite a newer selection.
		selected := m.selectedBase
		m.mu.Unlock()
		logger.Log.Infow("discarding superseded rate fetch",
			"fetched_base", base,
			"selected_base", selected,
		)
		return nil
	}
	m.table = table
	m.anchor = base
	m.lastUpdate = now
	m.mu.Unlock()

	rec := models.CacheRecord{Anchor: base, Rates: table, FetchedAt: now}
	if err := m.store.SaveRates(ctx, rec); err != nil {
		// The in-memory state is already committed; losing the write-through
		// only costs a fetch on the next startup.
		logger.Log.Errorw("rate cache write-through failed", "base", base, "error", err)
	}

	m.publishRateUpdate(ctx, base, len(table))
	m.notify(base)

	logger.Log.Infow("rates committed", "anchor", base, "rates", len(table))
	return nil
}

// CurrentTable returns a copy of the latest committed rate table; empty until
// the first load or fetch resolves.
func (m *RateManager) CurrentTable() models.RateTable {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.table.Clone()
}

// CurrentAnchor returns the anchor of the latest committed table; empty until
// the first commit.
func (m *RateManager) CurrentAnchor() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.anchor
}

// SelectedBase returns the currently selected base currency.
func (m *RateManager) SelectedBase() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selectedBase
}

// LastUpdate returns the fetch time of the committed table; zero until the
// first commit.
func (m *RateManager) LastUpdate() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastUpdate
}

// Subscribe registers a callback invoked after every committed change with
// the new anchor. Callbacks run synchronously on the committing goroutine and
// must not block.
func (m *RateManager) Subscribe(fn func(anchor string)) {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	m.subs = append(m.subs, fn)
}

func (m *RateManager) notify(anchor string) {
	m.subsMu.Lock()
	subs := make([]func(string), len(m.subs))
	copy(subs, m.subs)
	m.subsMu.Unlock()

	for _, fn := range subs {
		fn(anchor)
	}
}

// publishRateUpdate publishes a rate-update event to Kafka.
func (m *RateManager) publishRateUpdate(ctx context.Context, anchor string, rateCount int) {
	if m.kafkaWriter == nil {
		return
	}

	event := models.RateUpdateEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Anchor:    anchor,
		RateCount: rateCount,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal rate-update event", "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := m.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish rate-update event", "anchor", anchor, "error", err)
	} else {
		logger.Log.Infow("rate-update event published", "anchor", anchor, "rates", rateCount)
	}
}

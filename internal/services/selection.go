package services

import (
	"context"
	"strings"
	"sync"

	"github.com/linkalls/raterover/internal/models"
)

// BaseSetter is the rate-refresh trigger the selection fires when the "from"
// currency changes.
type BaseSetter interface {
	SetBase(ctx context.Context, base string) error
}

// Selection is the explicit application-state object holding the
// user-selected currency pair and amount. The presentation layer reads and
// writes it; a changed "from" currency triggers a refresh because the cached
// table is anchored to the old base.
type Selection struct {
	rates BaseSetter

	mu     sync.Mutex
	from   string
	to     string
	amount float64
}

func NewSelection(rates BaseSetter, from, to string) *Selection {
	return &Selection{
		rates: rates,
		from:  strings.ToUpper(strings.TrimSpace(from)),
		to:    strings.ToUpper(strings.TrimSpace(to)),
	}
}

// Get returns the current selection.
func (s *Selection) Get() (from, to string, amount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.from, s.to, s.amount
}

// Set updates the selection. When the "from" currency changes, a refresh for
// the new base is triggered before returning.
func (s *Selection) Set(ctx context.Context, from, to string, amount float64) error {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if !models.IsSupported(from) || !models.IsSupported(to) {
		return ErrUnsupportedCurrency
	}

	s.mu.Lock()
	baseChanged := from != s.from
	s.from = from
	s.to = to
	s.amount = amount
	s.mu.Unlock()

	if baseChanged {
		return s.rates.SetBase(ctx, from)
	}
	return nil
}

// Swap exchanges the "from" and "to" currencies and triggers a refresh for
// the new base.
func (s *Selection) Swap(ctx context.Context) (from, to string, err error) {
	s.mu.Lock()
	s.from, s.to = s.to, s.from
	from, to = s.from, s.to
	s.mu.Unlock()

	return from, to, s.rates.SetBase(ctx, from)
}

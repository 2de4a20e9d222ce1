package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/linkalls/raterover/internal/logger"
	"github.com/linkalls/raterover/internal/models"
)

const maxBodyBytes = 256 << 10

// FetchError reports a failed rate fetch: a non-200 response, a transport
// error or an unparsable payload. The caller keeps its previous table.
type FetchError struct {
	Status int
	Reason string
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("rate fetch failed: http %d: %s", e.Status, e.Reason)
	}
	return fmt.Sprintf("rate fetch failed: %s", e.Reason)
}

// RatesFetcher fetches a rate table from the provider's currency endpoint.
type RatesFetcher struct {
	baseURL    string
	httpClient *http.Client
}

// NewRatesFetcher creates a fetcher against the given provider base URL,
// e.g. https://latest.currency-api.pages.dev/v1.
func NewRatesFetcher(baseURL string, timeout time.Duration) *RatesFetcher {
	return &RatesFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch performs exactly one GET for the rates anchored at base and copies
// the requested targets into the result. Targets absent from the response are
// silently omitted; the base's own entry is forced to exactly 1.0.
func (f *RatesFetcher) Fetch(ctx context.Context, base string, targets []string) (models.RateTable, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	url := fmt.Sprintf("%s/currencies/%s.json", f.baseURL, strings.ToLower(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Reason: err.Error()}
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("rate request failed", "url", url, "error", err)
		return nil, &FetchError{Reason: err.Error()}
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{Reason: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("rate provider returned non-200", "url", url, "status", resp.StatusCode)
		return nil, &FetchError{Status: resp.StatusCode, Reason: string(body)}
	}

	// Response shape: { "date": "...", "<base_lowercase>": { "<code_lowercase>": <number>, ... } }
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &FetchError{Reason: "unparsable response: " + err.Error()}
	}

	nestedRaw, ok := payload[strings.ToLower(base)]
	if !ok {
		return nil, &FetchError{Reason: fmt.Sprintf("response lacks %q object", strings.ToLower(base))}
	}

	var nested map[string]float64
	if err := json.Unmarshal(nestedRaw, &nested); err != nil {
		return nil, &FetchError{Reason: "unparsable rate object: " + err.Error()}
	}

	table := make(models.RateTable, len(targets)+1)
	for _, target := range targets {
		target = strings.ToUpper(strings.TrimSpace(target))
		if rate, ok := nested[strings.ToLower(target)]; ok {
			table[target] = rate
		}
	}
	// The provider may omit the base or return it with floating noise.
	table[base] = 1.0

	logger.Log.Infow("rates fetched",
		"base", base,
		"requested", len(targets),
		"received", len(table)-1,
	)

	return table, nil
}

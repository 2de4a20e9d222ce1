package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/linkalls/raterover/internal/models"
)

// RatesReader exposes the latest committed rate table.
type RatesReader interface {
	CurrentTable() models.RateTable
	CurrentAnchor() string
	LastUpdate() time.Time
}

// NewGetRatesHandler returns an HTTP handler for the current rate table.
// @Summary Get current rates
// @Description Returns the committed rate table, its anchor currency and the last fetch time
// @Tags rates
// @Produce json
// @Success 200 {object} models.RatesResponse "Current rates"
// @Router /rates [get]
func NewGetRatesHandler(rates RatesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := models.RatesResponse{
			Anchor: rates.CurrentAnchor(),
			Rates:  rates.CurrentTable(),
		}
		if last := rates.LastUpdate(); !last.IsZero() {
			resp.LastUpdate = last.UTC().Format(time.RFC3339)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// RegisterGetRatesHandler registers the rates route.
func RegisterGetRatesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/rates", h)
}

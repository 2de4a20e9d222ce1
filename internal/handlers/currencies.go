package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linkalls/raterover/internal/models"
)

// NewGetCurrenciesHandler returns an HTTP handler listing the supported
// currencies with their display names.
// @Summary List supported currencies
// @Description Returns the fixed catalog of supported currency codes and display names
// @Tags currencies
// @Produce json
// @Success 200 {object} models.CurrenciesResponse "Supported currencies"
// @Router /currencies [get]
func NewGetCurrenciesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.CurrenciesResponse{
			Currencies: models.Catalog,
		})
	}
}

// RegisterGetCurrenciesHandler registers the currencies route.
func RegisterGetCurrenciesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/currencies", h)
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linkalls/raterover/internal/logger"
	"github.com/linkalls/raterover/internal/models"
	"github.com/linkalls/raterover/internal/services"
)

// SelectionState is the application-state object holding the selected pair
// and amount.
type SelectionState interface {
	Get() (from, to string, amount float64)
	Set(ctx context.Context, from, to string, amount float64) error
	Swap(ctx context.Context) (from, to string, err error)
}

// NewGetSelectionHandler returns an HTTP handler for the current selection
// and its converted result.
// @Summary Get current selection
// @Description Returns the selected currency pair, amount and the converted result
// @Tags selection
// @Produce json
// @Success 200 {object} models.SelectionResponse "Current selection"
// @Router /selection [get]
func NewGetSelectionHandler(selection SelectionState, rates RateSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, to, amount := selection.Get()
		writeSelection(w, http.StatusOK, rates, from, to, amount)
	}
}

// NewPutSelectionHandler returns an HTTP handler updating the selection.
// Changing the "from" currency refreshes the rate table for the new base; a
// failed refresh keeps the previous table and the response falls back to the
// unconverted amount.
// @Summary Update selection
// @Description Sets the selected currency pair and amount; a changed source currency triggers a rate refresh
// @Tags selection
// @Accept json
// @Produce json
// @Param request body models.SelectionRequest true "New selection"
// @Success 200 {object} models.SelectionResponse "Updated selection"
// @Failure 400 {object} models.ErrorResponse "Invalid selection"
// @Router /selection [put]
func NewPutSelectionHandler(selection SelectionState, rates RateSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SelectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Amount < 0 {
			writeError(w, http.StatusBadRequest, "amount must be non-negative")
			return
		}

		if err := selection.Set(r.Context(), req.From, req.To, req.Amount); err != nil {
			if errors.Is(err, services.ErrUnsupportedCurrency) {
				writeError(w, http.StatusBadRequest, "unsupported currency")
				return
			}
			// Fetch failures are diagnostic only; the selection is already
			// updated and the converter falls back to pass-through.
			logger.Log.Errorw("refresh after selection change failed", "error", err)
		}

		from, to, amount := selection.Get()
		writeSelection(w, http.StatusOK, rates, from, to, amount)
	}
}

// NewSwapSelectionHandler returns an HTTP handler swapping the selected pair.
// @Summary Swap selected currencies
// @Description Exchanges the source and target currencies and refreshes rates for the new base
// @Tags selection
// @Produce json
// @Success 200 {object} models.SelectionResponse "Swapped selection"
// @Router /selection/swap [post]
func NewSwapSelectionHandler(selection SelectionState, rates RateSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, _, err := selection.Swap(r.Context()); err != nil && !errors.Is(err, services.ErrUnsupportedCurrency) {
			logger.Log.Errorw("refresh after swap failed", "error", err)
		}

		from, to, amount := selection.Get()
		writeSelection(w, http.StatusOK, rates, from, to, amount)
	}
}

// RegisterSelectionHandlers registers the selection routes.
func RegisterSelectionHandlers(r chi.Router, get, put, swap http.HandlerFunc) {
	r.Get("/selection", get)
	r.Put("/selection", put)
	r.Post("/selection/swap", swap)
}

func writeSelection(w http.ResponseWriter, code int, rates RateSource, from, to string, amount float64) {
	result, stale := services.Convert(amount, from, to, rates.CurrentTable(), rates.CurrentAnchor())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(models.SelectionResponse{
		From:             from,
		To:               to,
		Amount:           amount,
		Result:           result,
		RefreshTriggered: stale,
	})
}

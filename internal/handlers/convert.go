package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linkalls/raterover/internal/logger"
	"github.com/linkalls/raterover/internal/models"
	"github.com/linkalls/raterover/internal/services"
)

// RateSource exposes the committed table for conversion queries.
type RateSource interface {
	CurrentTable() models.RateTable
	CurrentAnchor() string
}

// RefreshTrigger requests a rate refresh for a base currency.
type RefreshTrigger interface {
	Refresh(ctx context.Context, base string) error
}

// NewConvertHandler returns an HTTP handler computing a conversion against the
// committed table. When the table is anchored to a different currency than
// the requested source, the input amount is returned unchanged and a refresh
// for the source currency is triggered in the background. The refresh is
// deliberately detached from the computation so repeated queries do not stack
// network calls on the pure read path.
// @Summary Convert an amount
// @Description Converts an amount between two supported currencies using the committed rate table
// @Tags convert
// @Accept json
// @Produce json
// @Param request body models.ConvertRequest true "Conversion request"
// @Success 200 {object} models.ConvertResponse "Conversion result"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /convert [post]
func NewConvertHandler(rates RateSource, trigger RefreshTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ConvertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if req.Amount < 0 {
			writeError(w, http.StatusBadRequest, "amount must be non-negative")
			return
		}
		if !models.IsSupported(req.From) || !models.IsSupported(req.To) {
			writeError(w, http.StatusBadRequest, "unsupported currency")
			return
		}

		result, stale := services.Convert(
			req.Amount, req.From, req.To,
			rates.CurrentTable(), rates.CurrentAnchor(),
		)

		if stale {
			base := req.From
			go func() {
				if err := trigger.Refresh(context.Background(), base); err != nil {
					logger.Log.Errorw("background refresh failed", "base", base, "error", err)
				}
			}()
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.ConvertResponse{
			Result:           result,
			From:             req.From,
			To:               req.To,
			RefreshTriggered: stale,
		})
	}
}

// RegisterConvertHandler registers the convert route.
func RegisterConvertHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/convert", h)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: msg})
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linkalls/raterover/internal/logger"
	"github.com/linkalls/raterover/internal/models"
)

// Refresher triggers rate refreshes and reports the selected base.
type Refresher interface {
	Refresh(ctx context.Context, base string) error
	SelectedBase() string
}

// NewRefreshHandler returns an HTTP handler that triggers a rate refresh.
// The fetch completes in the background; overlapping triggers for the same
// base coalesce into a single network request.
// @Summary Trigger a rate refresh
// @Description Requests a fresh rate table for the given base currency (default: the selected one)
// @Tags rates
// @Accept json
// @Produce json
// @Param request body models.RefreshRequest false "Refresh request"
// @Success 202 {object} models.RefreshResponse "Refresh accepted"
// @Failure 400 {object} models.ErrorResponse "Unsupported base currency"
// @Router /refresh [post]
func NewRefreshHandler(refresher Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RefreshRequest
		if r.Body != nil {
			// Empty bodies are fine; the selected base is used then.
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		base := req.Base
		if base == "" {
			base = refresher.SelectedBase()
		}
		if !models.IsSupported(base) {
			writeError(w, http.StatusBadRequest, "unsupported currency")
			return
		}

		go func() {
			if err := refresher.Refresh(context.Background(), base); err != nil {
				logger.Log.Errorw("triggered refresh failed", "base", base, "error", err)
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(models.RefreshResponse{
			Base:   base,
			Status: "accepted",
		})
	}
}

// RegisterRefreshHandler registers the refresh route.
func RegisterRefreshHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/refresh", h)
}

package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/linkalls/raterover/internal/handlers"
	"github.com/linkalls/raterover/internal/models"
)

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRefresher := handlers.NewMockRefresher(ctrl)
	handler := handlers.NewRefreshHandler(mockRefresher)

	t.Run("explicit_base", func(t *testing.T) {
		refreshed := make(chan string, 1)
		mockRefresher.EXPECT().
			Refresh(gomock.Any(), models.EUR).
			DoAndReturn(func(_ context.Context, base string) error {
				refreshed <- base
				return nil
			})

		req := httptest.NewRequest(http.MethodPost, "/refresh",
			strings.NewReader(`{"base": "EUR"}`))
		w := httptest.NewRecorder()

		handler(w, req)

		res := w.Result()
		defer res.Body.Close()

		require.Equal(t, http.StatusAccepted, res.StatusCode)

		var body models.RefreshResponse
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		require.Equal(t, models.EUR, body.Base)
		require.Equal(t, "accepted", body.Status)

		select {
		case base := <-refreshed:
			require.Equal(t, models.EUR, base)
		case <-time.After(time.Second):
			t.Fatal("refresh was not triggered")
		}
	})

	t.Run("empty_body_uses_selected_base", func(t *testing.T) {
		refreshed := make(chan string, 1)
		mockRefresher.EXPECT().SelectedBase().Return(models.JPY)
		mockRefresher.EXPECT().
			Refresh(gomock.Any(), models.JPY).
			DoAndReturn(func(_ context.Context, base string) error {
				refreshed <- base
				return nil
			})

		req := httptest.NewRequest(http.MethodPost, "/refresh", strings.NewReader(``))
		w := httptest.NewRecorder()

		handler(w, req)

		res := w.Result()
		defer res.Body.Close()

		require.Equal(t, http.StatusAccepted, res.StatusCode)

		var body models.RefreshResponse
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		require.Equal(t, models.JPY, body.Base)

		select {
		case <-refreshed:
		case <-time.After(time.Second):
			t.Fatal("refresh was not triggered")
		}
	})

	t.Run("unsupported_base", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/refresh",
			strings.NewReader(`{"base": "XXX"}`))
		w := httptest.NewRecorder()

		handler(w, req)

		res := w.Result()
		defer res.Body.Close()

		require.Equal(t, http.StatusBadRequest, res.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		require.Equal(t, map[string]interface{}{"error": "unsupported currency"}, body)
	})

	t.Run("failed_refresh_still_accepted", func(t *testing.T) {
		refreshed := make(chan struct{})
		mockRefresher.EXPECT().
			Refresh(gomock.Any(), models.USD).
			DoAndReturn(func(_ context.Context, _ string) error {
				close(refreshed)
				return errors.New("provider down")
			})

		req := httptest.NewRequest(http.MethodPost, "/refresh",
			strings.NewReader(`{"base": "USD"}`))
		w := httptest.NewRecorder()

		handler(w, req)

		res := w.Result()
		defer res.Body.Close()

		require.Equal(t, http.StatusAccepted, res.StatusCode)

		select {
		case <-refreshed:
		case <-time.After(time.Second):
			t.Fatal("refresh was not triggered")
		}
	})
}

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cleantech-forge/helio/pkg/store"
)

func TestHealthHandler(t *testing.T) {
	t.Run("returns the exact liveness body", func(t *testing.T) {
		w := httptest.NewRecorder()
		HealthHandler(newTestServer(nil)).ServeHTTP(
			w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"status":"ok","service":"clean-energy-backend"}`, w.Body.String())
	})

	t.Run("body is independent of store state", func(t *testing.T) {
		stores := map[string]store.Store{
			"nil store":     nil,
			"failing store": failingStore{},
			"memory store":  store.NewMemoryStore("test"),
		}
		for name, st := range stores {
			t.Run(name, func(t *testing.T) {
				w := httptest.NewRecorder()
				HealthHandler(newTestServer(st)).ServeHTTP(
					w, httptest.NewRequest(http.MethodGet, "/", nil))
				assert.JSONEq(t,
					`{"status":"ok","service":"clean-energy-backend"}`,
					w.Body.String())
			})
		}
	})

	t.Run("rejects non-GET methods", func(t *testing.T) {
		w := httptest.NewRecorder()
		HealthHandler(newTestServer(nil)).ServeHTTP(
			w, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("unknown paths are not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		HealthHandler(newTestServer(nil)).ServeHTTP(
			w, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

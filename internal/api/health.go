package api

import (
	"encoding/json"
	"net/http"

	"github.com/cleantech-forge/helio/internal/server"
)

// HealthResponse is the liveness marker returned by GET /.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthHandler reports liveness. The response is constant and independent
// of store state.
func HealthHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The root pattern catches every otherwise-unmatched path.
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(HealthResponse{
			Status:  "ok",
			Service: ServiceName,
		}); err != nil {
			srv.Logger.Error("error encoding health response", "error", err)
		}
	})
}

package api

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/cleantech-forge/helio/internal/server"
)

// DiagnosticsResponse reports each backend check independently with
// human-readable status strings. It is rendered verbatim by the frontend's
// status page.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// maxDiagnosticCollections caps the collection names listed by GET /test.
const maxDiagnosticCollections = 10

// DiagnosticsHandler inspects the store handle and environment without ever
// failing the request; every check degrades to a status string instead of
// propagating its error.
func DiagnosticsHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		resp := DiagnosticsResponse{
			Backend:          "✅ Running",
			Database:         "❌ Database not initialized",
			DatabaseURL:      "❌ Not Set",
			DatabaseName:     "❌ Not Set",
			ConnectionStatus: "Not Connected",
			Collections:      []string{},
		}

		var checkErrs *multierror.Error

		if srv.Store != nil {
			resp.ConnectionStatus = "Connected"

			names, err := srv.Store.ListCollectionNames(r.Context())
			if err != nil {
				resp.Database = "⚠️ Connected but Error: " + truncateError(err)
				checkErrs = multierror.Append(checkErrs, err)
			} else {
				if len(names) > maxDiagnosticCollections {
					names = names[:maxDiagnosticCollections]
				}
				resp.Collections = names
				resp.Database = "✅ Connected & Working"
			}
		}

		if os.Getenv("DATABASE_URL") != "" {
			resp.DatabaseURL = "✅ Set"
		}
		if os.Getenv("DATABASE_NAME") != "" {
			resp.DatabaseName = "✅ Set"
		}

		if err := checkErrs.ErrorOrNil(); err != nil {
			srv.Logger.Warn("diagnostic checks reported errors", "error", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			srv.Logger.Error("error encoding diagnostics response", "error", err)
		}
	})
}

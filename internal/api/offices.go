package api

import (
	"encoding/json"
	"net/http"

	"github.com/cleantech-forge/helio/internal/server"
	"github.com/cleantech-forge/helio/pkg/models"
	"github.com/cleantech-forge/helio/pkg/store"
)

// OfficesHandler lists all office locations, unfiltered.
func OfficesHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		if srv.Store == nil {
			writeOffices(srv, w, defaultOffices())
			return
		}

		docs, err := srv.Store.GetDocuments(
			r.Context(), models.CollectionOffices, store.Filter{}, 0)
		if err != nil {
			srv.Logger.Warn("error querying offices, serving defaults",
				"error", err)
			writeOffices(srv, w, defaultOffices())
			return
		}

		offices := make([]models.Office, 0, len(docs))
		for _, doc := range docs {
			o, err := models.OfficeFromDocument(doc)
			if err != nil {
				srv.Logger.Warn("skipping malformed office document", "error", err)
				continue
			}
			offices = append(offices, *o)
		}

		writeOffices(srv, w, offices)
	})
}

func writeOffices(
	srv server.Server, w http.ResponseWriter, offices []models.Office,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(offices); err != nil {
		srv.Logger.Error("error encoding offices response", "error", err)
	}
}

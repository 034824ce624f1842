package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cleantech-forge/helio/internal/server"
	"github.com/cleantech-forge/helio/pkg/models"
	"github.com/cleantech-forge/helio/pkg/store"
)

// defaultStoriesLimit is the number of stories returned when no limit
// parameter is given.
const defaultStoriesLimit = 6

// StoriesHandler lists impact stories in the store's natural order, bounded
// by the limit parameter.
func StoriesHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		limit := defaultStoriesLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, "Invalid value for limit parameter",
					http.StatusBadRequest)
				return
			}
			limit = n
		}

		if srv.Store == nil {
			writeStories(srv, w, defaultStories())
			return
		}

		docs, err := srv.Store.GetDocuments(
			r.Context(), models.CollectionImpactStories, store.Filter{}, limit)
		if err != nil {
			srv.Logger.Warn("error querying impact stories, serving defaults",
				"error", err)
			writeStories(srv, w, defaultStories())
			return
		}

		stories := make([]models.ImpactStory, 0, len(docs))
		for _, doc := range docs {
			s, err := models.ImpactStoryFromDocument(doc)
			if err != nil {
				srv.Logger.Warn("skipping malformed impact story document",
					"error", err)
				continue
			}
			stories = append(stories, *s)
		}

		writeStories(srv, w, stories)
	})
}

func writeStories(
	srv server.Server, w http.ResponseWriter, stories []models.ImpactStory,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stories); err != nil {
		srv.Logger.Error("error encoding stories response", "error", err)
	}
}

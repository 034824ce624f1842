package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cleantech-forge/helio/internal/server"
	"github.com/cleantech-forge/helio/pkg/models"
	"github.com/cleantech-forge/helio/pkg/store"
)

// SolutionsHandler lists energy products, optionally filtered by sector
// and/or featured. Without a store, or when the query fails, it serves the
// static defaults and ignores filters.
func SolutionsHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		q := r.URL.Query()
		filter := store.Filter{}
		if sector := q.Get("sector"); sector != "" {
			filter["sector"] = sector
		}
		if v := q.Get("featured"); v != "" {
			featured, err := strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "Invalid value for featured parameter",
					http.StatusBadRequest)
				return
			}
			filter["featured"] = featured
		}

		if srv.Store == nil {
			writeProducts(srv, w, defaultSolutions())
			return
		}

		docs, err := srv.Store.GetDocuments(
			r.Context(), models.CollectionEnergyProducts, filter, 0)
		if err != nil {
			srv.Logger.Warn("error querying energy products, serving defaults",
				"error", err)
			writeProducts(srv, w, defaultSolutions())
			return
		}

		products := make([]models.EnergyProduct, 0, len(docs))
		for _, doc := range docs {
			p, err := models.EnergyProductFromDocument(doc)
			if err != nil {
				srv.Logger.Warn("skipping malformed energy product document",
					"error", err)
				continue
			}
			products = append(products, *p)
		}

		writeProducts(srv, w, products)
	})
}

func writeProducts(
	srv server.Server, w http.ResponseWriter, products []models.EnergyProduct,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(products); err != nil {
		srv.Logger.Error("error encoding solutions response", "error", err)
	}
}

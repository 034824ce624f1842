package api

import (
	"net/http"

	"github.com/cleantech-forge/helio/internal/server"
)

// NewRouter mounts all API endpoints on a ServeMux wrapped with the CORS and
// request logging middleware.
func NewRouter(srv server.Server) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/", HealthHandler(srv))
	mux.Handle("/test", DiagnosticsHandler(srv))
	mux.Handle("/api/solutions", SolutionsHandler(srv))
	mux.Handle("/api/stories", StoriesHandler(srv))
	mux.Handle("/api/offices", OfficesHandler(srv))
	mux.Handle("/api/inquiry", InquiryHandler(srv))

	return WithCORS(WithRequestLogging(srv.Logger, mux))
}

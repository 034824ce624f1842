package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleantech-forge/helio/internal/server"
	"github.com/cleantech-forge/helio/pkg/models"
)

// InquiryResponse acknowledges a contact form submission. Ok is false when
// the submission was received but could not be persisted.
type InquiryResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message"`
}

// InquiryHandler accepts contact form submissions. Submissions without
// consent are rejected before any store access; a failed store write is
// acknowledged softly with ok=false rather than surfaced as an HTTP error.
func InquiryHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var payload models.Inquiry
		if err := decodeRequest(r, &payload); err != nil {
			srv.Logger.Error("error decoding inquiry request", "error", err)
			http.Error(w, fmt.Sprintf("Bad request: %q", err),
				http.StatusBadRequest)
			return
		}

		if err := payload.Validate(); err != nil {
			http.Error(w, fmt.Sprintf("Invalid inquiry: %v", err),
				http.StatusBadRequest)
			return
		}

		if !payload.Consent {
			http.Error(w, "Consent required for storing contact info.",
				http.StatusBadRequest)
			return
		}

		if srv.Store != nil {
			if _, err := srv.Store.CreateDocument(
				r.Context(), models.CollectionInquiries, payload,
			); err != nil {
				srv.Logger.Error("error storing inquiry", "error", err)
				writeInquiryResponse(srv, w, InquiryResponse{
					Ok:      false,
					Message: "Received but DB error: " + truncateError(err),
				})
				return
			}
		}

		writeInquiryResponse(srv, w, InquiryResponse{
			Ok:      true,
			Message: "Thank you. Our team will contact you shortly.",
		})
	})
}

func writeInquiryResponse(
	srv server.Server, w http.ResponseWriter, resp InquiryResponse,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		srv.Logger.Error("error encoding inquiry response", "error", err)
	}
}

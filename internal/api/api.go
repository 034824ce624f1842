// Package api implements the HTTP JSON endpoints of the content API. Every
// handler is a factory over server.Server so collaborators are injected
// rather than looked up globally.
package api

import (
	"encoding/json"
	"net/http"
)

// ServiceName identifies this service in the liveness response.
const ServiceName = "clean-energy-backend"

// maxErrorLength bounds error strings surfaced in API responses.
const maxErrorLength = 80

// decodeRequest decodes a JSON request body into v.
func decodeRequest(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// truncateError renders an error capped at maxErrorLength characters, for
// inclusion in user-visible diagnostic strings.
func truncateError(err error) string {
	msg := err.Error()
	if len(msg) > maxErrorLength {
		msg = msg[:maxErrorLength]
	}
	return msg
}

package http

import (
	"net/http"

	"github.com/rs/cors"
)

// withCORS lets other origins call the JSON API. An empty list allows any origin.
func withCORS(handler http.Handler, allowed []string) http.Handler {
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", headerRequestID, headerRequestedBy},
		ExposedHeaders: []string{headerRequestID},
	}).Handler(handler)
}

package server

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Handler returns the API routes wrapped in request logging.
func (s *ServerContext) Handler(logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/config", s.HandleConfig)
	mux.HandleFunc("/api/geometry", s.HandleGeometry)
	return RequestLogger(logger)(mux)
}

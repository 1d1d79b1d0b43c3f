package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"

	"tempmon/internal/config"
)

// Handler wraps mux with CORS, request ids and request logging.
func Handler(cfg config.Config, mux *http.ServeMux) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSAllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", RequestIDHeader}),
		handlers.ExposedHeaders([]string{RequestIDHeader}),
	)
	return cors(requestID(requestLogger(mux)))
}

func NewServer(cfg config.Config, mux *http.ServeMux) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           Handler(cfg, mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

package httpapi

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewMux returns a mux with the operational endpoints. mqtt may be nil.
func NewMux(db *sql.DB, mqtt ConnectionStatus) *http.ServeMux {
	mux := http.NewServeMux()
	registerHealthcheck(mux, db, mqtt)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

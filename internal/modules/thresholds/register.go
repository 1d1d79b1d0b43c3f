package thresholds

import (
	"database/sql"
	"net/http"

	"tempmon/internal/modules/thresholds/controller"
	"tempmon/internal/modules/thresholds/repository"
)

// RegisterFeature mounts the thresholds API and returns the repository so
// other features can read the active threshold.
func RegisterFeature(mux *http.ServeMux, db *sql.DB) repository.ThresholdRepository {
	thresholdRepository := repository.NewRepository(db)
	controller.NewThresholdsController(thresholdRepository).RegisterRoutes(mux)
	return thresholdRepository
}

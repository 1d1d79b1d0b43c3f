package readings

import (
	"database/sql"
	"log/slog"
	"net/http"

	"tempmon/internal/modules/readings/controller"
	"tempmon/internal/modules/readings/repository"
	"tempmon/internal/modules/readings/service"
	"tempmon/internal/mqtt"
)

// RegisterFeature mounts the readings API and the analysis page. When
// subscriber is non-nil, MQTT readings are stored through the same repository.
func RegisterFeature(mux *http.ServeMux, db *sql.DB, thresholds controller.ThresholdSource, subscriber mqtt.MQTTSubscriber, logger *slog.Logger) {
	readingRepository := repository.NewRepository(db)
	controller.NewReadingsController(readingRepository, thresholds).RegisterRoutes(mux)

	if subscriber != nil {
		service.NewService(readingRepository, logger.With("component", "readings")).Register(subscriber)
	}
}

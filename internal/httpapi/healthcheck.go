package httpapi

import (
	"database/sql"
	"log/slog"
	"net/http"

	"tempmon/internal/utils"
)

// ConnectionStatus reports whether the MQTT subscriber is connected.
type ConnectionStatus interface {
	IsConnected() bool
}

type healthchecker interface {
	handleHealthz(w http.ResponseWriter, r *http.Request)
}

type healthcheckerImpl struct {
	db   *sql.DB
	mqtt ConnectionStatus
}

func NewHealthchecker(db *sql.DB, mqtt ConnectionStatus) healthchecker {
	return &healthcheckerImpl{db: db, mqtt: mqtt}
}

func (h *healthcheckerImpl) handleHealthz(w http.ResponseWriter, r *http.Request) {
	var ok int
	if err := h.db.QueryRowContext(r.Context(), `SELECT 1`).Scan(&ok); err != nil {
		slog.Error("failed to check database connectivity", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to check database connectivity")
		return
	}

	// MQTT is optional, so its state is reported but never fails the check.
	mqttState := "disabled"
	if h.mqtt != nil {
		mqttState = "disconnected"
		if h.mqtt.IsConnected() {
			mqttState = "connected"
		}
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "mqtt": mqttState})
}

func registerHealthcheck(mux *http.ServeMux, db *sql.DB, mqtt ConnectionStatus) {
	healthchecker := NewHealthchecker(db, mqtt)
	mux.HandleFunc("GET /healthz", healthchecker.handleHealthz)
}

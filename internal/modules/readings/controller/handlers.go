package controller

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"tempmon/internal/metrics"
	"tempmon/internal/modules/readings/repository"
	"tempmon/internal/modules/readings/types"
	"tempmon/internal/modules/readings/views"
	"tempmon/internal/utils"
)

// storageFailureMessage is sent on 500s; the underlying error is only logged.
const storageFailureMessage = "storage failure"

func (c *readingsControllerImpl) handleList(w http.ResponseWriter, r *http.Request) {
	readings, err := c.repository.List(r.Context())
	if err != nil {
		metrics.StorageFailures.WithLabelValues("list_readings").Inc()
		slog.Error("list readings failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, storageFailureMessage)
		return
	}
	utils.WriteJSON(w, http.StatusOK, readings)
}

func (c *readingsControllerImpl) handleLatest(w http.ResponseWriter, r *http.Request) {
	latest, err := c.repository.Latest(r.Context())
	if err != nil {
		metrics.StorageFailures.WithLabelValues("latest_reading").Inc()
		slog.Error("latest reading failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, storageFailureMessage)
		return
	}
	// An empty table is not an error: the body is JSON null.
	utils.WriteJSON(w, http.StatusOK, latest)
}

func (c *readingsControllerImpl) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in types.NewReading
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		metrics.ValidationFailures.WithLabelValues("reading", metrics.SourceHTTP).Inc()
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := c.repository.Create(r.Context(), in)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			metrics.ValidationFailures.WithLabelValues("reading", metrics.SourceHTTP).Inc()
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		metrics.StorageFailures.WithLabelValues("create_reading").Inc()
		slog.Error("create reading failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, storageFailureMessage)
		return
	}

	metrics.ObserveReading(metrics.SourceHTTP, created.TemperatureDifference)
	slog.Debug("reading created", "id", created.ID, "temperature", created.Temperature)
	utils.WriteJSON(w, http.StatusCreated, created)
}

// handleAnalysis renders the readings table. Fetch errors are logged and the
// page falls back to its empty state.
func (c *readingsControllerImpl) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	data := views.AnalysisData{}

	readings, err := c.repository.List(r.Context())
	if err != nil {
		slog.Error("analysis: list readings failed", "error", err)
		readings = nil
	}
	data.Rows = views.NewRows(readings)
	if len(readings) > 0 {
		latest := views.NewRow(readings[0])
		data.Latest = &latest
	}

	if c.thresholds != nil {
		active, err := c.thresholds.Active(r.Context())
		if err != nil {
			slog.Error("analysis: active threshold failed", "error", err)
		} else if active != nil {
			data.ActiveThreshold = views.FormatNumber(&active.Value)
			data.ActiveThresholdLabel = active.Label
		}
	}

	var buf bytes.Buffer
	if err := views.RenderAnalysis(&buf, &data); err != nil {
		slog.Error("analysis template render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("analysis: write response failed", "error", err)
	}
}

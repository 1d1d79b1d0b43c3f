package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"tempmon/internal/metrics"
	"tempmon/internal/modules/thresholds/repository"
	"tempmon/internal/modules/thresholds/types"
	"tempmon/internal/utils"
)

// storageFailureMessage is sent on 500s; the underlying error is only logged.
const storageFailureMessage = "storage failure"

func (c *thresholdsControllerImpl) handleList(w http.ResponseWriter, r *http.Request) {
	thresholds, err := c.repository.List(r.Context())
	if err != nil {
		metrics.StorageFailures.WithLabelValues("list_thresholds").Inc()
		slog.Error("list thresholds failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, storageFailureMessage)
		return
	}
	utils.WriteJSON(w, http.StatusOK, thresholds)
}

func (c *thresholdsControllerImpl) handleActive(w http.ResponseWriter, r *http.Request) {
	active, err := c.repository.Active(r.Context())
	if err != nil {
		metrics.StorageFailures.WithLabelValues("active_threshold").Inc()
		slog.Error("active threshold failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, storageFailureMessage)
		return
	}
	utils.WriteJSON(w, http.StatusOK, active)
}

func (c *thresholdsControllerImpl) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in types.NewThreshold
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		metrics.ValidationFailures.WithLabelValues("threshold", metrics.SourceHTTP).Inc()
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := c.repository.Create(r.Context(), in)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			metrics.ValidationFailures.WithLabelValues("threshold", metrics.SourceHTTP).Inc()
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		metrics.StorageFailures.WithLabelValues("create_threshold").Inc()
		slog.Error("create threshold failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, storageFailureMessage)
		return
	}

	slog.Info("threshold created", "id", created.ID, "value", created.Value, "label", created.Label)
	utils.WriteJSON(w, http.StatusCreated, created)
}

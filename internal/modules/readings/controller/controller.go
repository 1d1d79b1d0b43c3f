package controller

import (
	"context"
	"net/http"

	"tempmon/internal/modules/readings/repository"
	thresholdtypes "tempmon/internal/modules/thresholds/types"
)

type ReadingsController interface {
	RegisterRoutes(mux *http.ServeMux)
}

// ThresholdSource supplies the active threshold shown on the analysis page.
type ThresholdSource interface {
	Active(ctx context.Context) (*thresholdtypes.Threshold, error)
}

type readingsControllerImpl struct {
	repository repository.ReadingRepository
	thresholds ThresholdSource
}

// NewReadingsController wires the readings routes. thresholds may be nil.
func NewReadingsController(repository repository.ReadingRepository, thresholds ThresholdSource) ReadingsController {
	return &readingsControllerImpl{repository: repository, thresholds: thresholds}
}

func (c *readingsControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/readings", c.handleList)
	mux.HandleFunc("GET /api/readings/latest", c.handleLatest)
	mux.HandleFunc("POST /api/readings", c.handleCreate)
	mux.HandleFunc("GET /{$}", c.handleAnalysis)
}

package controller

import (
	"net/http"

	"tempmon/internal/modules/thresholds/repository"
)

type ThresholdsController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type thresholdsControllerImpl struct {
	repository repository.ThresholdRepository
}

func NewThresholdsController(repository repository.ThresholdRepository) ThresholdsController {
	return &thresholdsControllerImpl{repository: repository}
}

func (c *thresholdsControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/thresholds", c.handleList)
	mux.HandleFunc("GET /api/thresholds/active", c.handleActive)
	mux.HandleFunc("POST /api/thresholds", c.handleCreate)
}

package service

import (
	"context"
	"errors"
	"log/slog"

	"tempmon/internal/metrics"
	"tempmon/internal/modules/readings/repository"
	"tempmon/internal/modules/readings/types"
	"tempmon/internal/mqtt"
	"tempmon/pkg/telemetry"
)

// Service stores readings that arrive over MQTT.
type Service struct {
	repository repository.ReadingRepository
	logger     *slog.Logger
}

func NewService(repository repository.ReadingRepository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

func (s *Service) Register(subscriber mqtt.MQTTSubscriber) {
	subscriber.SetMessageHandler(s.Ingest)
}

// Ingest creates a reading from a telemetry message. The stored difference
// uses the threshold carried by the message, exactly like the HTTP API.
func (s *Service) Ingest(ctx context.Context, msg telemetry.Reading) error {
	created, err := s.repository.Create(ctx, types.NewReading{
		Temperature:    msg.Temperature,
		ThresholdValue: msg.ThresholdValue,
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			metrics.ValidationFailures.WithLabelValues("reading", metrics.SourceMQTT).Inc()
			s.logger.Warn("rejected telemetry", "sensor_id", msg.SensorID, "error", err)
			return err
		}
		metrics.StorageFailures.WithLabelValues("create_reading").Inc()
		s.logger.Error("failed to store telemetry", "sensor_id", msg.SensorID, "error", err)
		return err
	}

	metrics.ObserveReading(metrics.SourceMQTT, created.TemperatureDifference)
	s.logger.Debug("stored telemetry",
		"sensor_id", msg.SensorID,
		"id", created.ID,
		"temperature", created.Temperature,
	)
	return nil
}

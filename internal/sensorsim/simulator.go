package sensorsim

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"tempmon/pkg/telemetry"
)

type publisher interface {
	Publish(r telemetry.Reading) error
}

// Simulator publishes one reading per interval.
type Simulator struct {
	scheduler *gocron.Scheduler
	publisher publisher
	walker    *Walker
	cfg       Config
	logger    *slog.Logger
}

func NewSimulator(cfg Config, pub publisher, walker *Walker, logger *slog.Logger) *Simulator {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Simulator{
		scheduler: s,
		publisher: pub,
		walker:    walker,
		cfg:       cfg,
		logger:    logger,
	}
}

// Tick publishes a single reading. Publish failures are returned and the
// reading is not retried.
func (s *Simulator) Tick() error {
	r := telemetry.Reading{
		SensorID:    s.cfg.SensorID,
		Temperature: s.walker.Next(),
	}
	if s.cfg.ThresholdValue != nil {
		r.ThresholdValue = *s.cfg.ThresholdValue
	}
	if err := s.publisher.Publish(r); err != nil {
		return fmt.Errorf("sensor %s: %w", s.cfg.SensorID, err)
	}
	return nil
}

func (s *Simulator) Start() error {
	_, err := s.scheduler.Every(s.cfg.PublishInterval).Do(func() {
		if err := s.Tick(); err != nil {
			s.logger.Warn("publish failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule publish job: %w", err)
	}
	s.logger.Info("simulator started", "sensor_id", s.cfg.SensorID, "interval", s.cfg.PublishInterval)
	s.scheduler.StartAsync()
	return nil
}

func (s *Simulator) Stop() {
	s.scheduler.Stop()
}

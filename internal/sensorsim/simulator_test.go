package sensorsim

import (
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"tempmon/pkg/telemetry"
)

type fakePublisher struct {
	mu   sync.Mutex
	got  []telemetry.Reading
	err  error
	sent chan struct{}
}

func (f *fakePublisher) Publish(r telemetry.Reading) error {
	f.mu.Lock()
	f.got = append(f.got, r)
	f.mu.Unlock()
	if f.sent != nil {
		select {
		case f.sent <- struct{}{}:
		default:
		}
	}
	return f.err
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func newSim(cfg Config, pub publisher) *Simulator {
	return NewSimulator(cfg, pub, NewWalker(cfg.BaseTemperature, cfg.MaxDrift, rand.New(rand.NewPCG(5, 6))), discard())
}

func TestTick_attachesThreshold(t *testing.T) {
	threshold := 20.0
	pub := &fakePublisher{}
	sim := newSim(Config{SensorID: "s1", BaseTemperature: 21, MaxDrift: 2, ThresholdValue: &threshold}, pub)

	if err := sim.Tick(); err != nil {
		t.Fatalf("Tick() = %v", err)
	}
	if len(pub.got) != 1 {
		t.Fatalf("published %d readings; want 1", len(pub.got))
	}
	r := pub.got[0]
	if r.SensorID != "s1" || r.ThresholdValue != 20.0 {
		t.Errorf("reading = %+v", r)
	}
	if temp, ok := r.Temperature.(float64); !ok || temp < 19 || temp > 23 {
		t.Errorf("temperature = %v; want float64 within 21±2", r.Temperature)
	}
}

func TestTick_noThreshold(t *testing.T) {
	pub := &fakePublisher{}
	if err := newSim(Config{SensorID: "s1", BaseTemperature: 21}, pub).Tick(); err != nil {
		t.Fatalf("Tick() = %v", err)
	}
	if pub.got[0].ThresholdValue != nil {
		t.Errorf("ThresholdValue = %v; want nil", pub.got[0].ThresholdValue)
	}
}

func TestTick_publishError(t *testing.T) {
	pub := &fakePublisher{err: ErrNotConnected}
	err := newSim(Config{SensorID: "s1"}, pub).Tick()
	if !errors.Is(err, ErrNotConnected) {
		t.Errorf("Tick() = %v; want ErrNotConnected", err)
	}
}

func TestStart_publishesOnSchedule(t *testing.T) {
	pub := &fakePublisher{sent: make(chan struct{}, 1)}
	sim := newSim(Config{SensorID: "s1", BaseTemperature: 21, PublishInterval: time.Second}, pub)

	if err := sim.Start(); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	defer sim.Stop()

	select {
	case <-pub.sent:
	case <-time.After(3 * time.Second):
		t.Fatal("no reading published")
	}
}

package sensorsim

import (
	"context"
	"log/slog"
)

// Run connects to the broker and publishes until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	logger := slog.Default().With("component", "sensorsim")

	pub := NewPublisher(cfg.Base, logger)
	defer pub.Disconnect()
	if err := pub.Connect(ctx); err != nil {
		return err
	}

	sim := NewSimulator(cfg, pub, NewWalker(cfg.BaseTemperature, cfg.MaxDrift, nil), logger)
	if err := sim.Start(); err != nil {
		return err
	}
	defer sim.Stop()

	<-ctx.Done()
	return ctx.Err()
}

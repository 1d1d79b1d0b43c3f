package app

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tempmon/internal/config"
	"tempmon/internal/db"
	"tempmon/internal/httpapi"
	"tempmon/internal/migrate"
	"tempmon/internal/modules/readings"
	readingsviews "tempmon/internal/modules/readings/views"
	"tempmon/internal/modules/thresholds"
	"tempmon/internal/mqtt"
)

func Run(ctx context.Context, cfg config.Config) error {
	slog.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"httpAddr", cfg.HTTPAddr,
		"corsAllowedOrigins", cfg.CORSAllowedOrigins,
		"sqliteDriver", cfg.SQLiteDriver,
		"sqlitePath", cfg.SQLitePath,
		"sqliteMaxOpenConns", cfg.SQLiteMaxOpenConns,
		"sqliteMaxIdleConns", cfg.SQLiteMaxIdleConns,
		"sqliteConnMaxLifetime", cfg.SQLiteConnMaxLifetime,
		"sqliteLogStatements", cfg.SQLiteLogStatements,
		"mqttEnabled", cfg.MQTTEnabled,
		"mqttBroker", cfg.MQTTBroker,
		"mqttPort", cfg.MQTTPort,
		"mqttTopic", cfg.MQTTTopic,
	)

	dbConn, err := db.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(dbConn); closeErr != nil {
			slog.Error("db close", "error", closeErr)
		}
	}()

	if err := migrate.Run(ctx, dbConn); err != nil {
		return err
	}

	var ok int
	if err := dbConn.QueryRowContext(ctx, `SELECT 1`).Scan(&ok); err != nil {
		return err
	}
	if ok != 1 {
		return errors.New("database connection failed")
	}
	slog.Info("database connection successful")

	if err := readingsviews.LoadTemplates(); err != nil {
		return err
	}

	var subscriber *mqtt.Subscriber
	if cfg.MQTTEnabled {
		subscriber = mqtt.NewSubscriber(cfg, slog.Default().With("component", "mqtt"))
	}

	// Handlers are registered before Connect so messages delivered right after
	// the subscription are not dropped.
	mux := newMux(dbConn, subscriber)

	if subscriber != nil {
		connectCtx, connectCancel := context.WithTimeout(ctx, 5*time.Second)
		err = subscriber.Connect(connectCtx)
		connectCancel()
		if err != nil {
			slog.Warn("mqtt connection failed (continuing without mqtt)", "error", err)
		}
	}

	srv := httpapi.NewServer(cfg, mux)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if subscriber != nil {
			subscriber.Disconnect()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if subscriber != nil {
		slog.Info("mqtt disconnecting")
		subscriber.Disconnect()
	}

	slog.Info("http shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err = <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}

// newMux wires every feature onto one mux. subscriber may be nil.
func newMux(dbConn *sql.DB, subscriber *mqtt.Subscriber) *http.ServeMux {
	var (
		status     httpapi.ConnectionStatus
		mqttTarget mqtt.MQTTSubscriber
	)
	if subscriber != nil {
		status = subscriber
		mqttTarget = subscriber
	}

	mux := httpapi.NewMux(dbConn, status)
	thresholdRepository := thresholds.RegisterFeature(mux, dbConn)
	readings.RegisterFeature(mux, dbConn, thresholdRepository, mqttTarget, slog.Default())
	return mux
}

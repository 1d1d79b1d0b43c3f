package sensorsim

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"tempmon/internal/config"
)

type Config struct {
	// Base carries the settings shared with the server: APP_ENV, LOG_LEVEL
	// and the MQTT broker.
	Base config.Config

	SensorID        string
	PublishInterval time.Duration
	BaseTemperature float64
	// MaxDrift bounds how far the walk may move away from BaseTemperature.
	MaxDrift float64
	// ThresholdValue is attached to every reading when set.
	ThresholdValue *float64
}

func LoadFromEnv() (Config, error) {
	base, err := config.LoadFromEnv()
	if err != nil {
		return Config{}, err
	}

	sensorID := strings.TrimSpace(os.Getenv("SENSOR_ID"))
	if sensorID == "" {
		sensorID = "sim-1"
	}
	if strings.ContainsAny(sensorID, "/+#") {
		return Config{}, fmt.Errorf("invalid SENSOR_ID %q (must not contain /, + or #)", sensorID)
	}
	if strings.TrimSpace(os.Getenv("MQTT_CLIENT_ID")) == "" {
		base.MQTTClientID = "tempmon-sensorsim-" + sensorID
	}

	intervalStr := strings.TrimSpace(os.Getenv("PUBLISH_INTERVAL"))
	if intervalStr == "" {
		intervalStr = "10s"
	}
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid PUBLISH_INTERVAL %q: %w", intervalStr, err)
	}
	if interval < time.Second {
		return Config{}, fmt.Errorf("invalid PUBLISH_INTERVAL %q (must be at least 1s)", intervalStr)
	}

	baseTemp, err := floatFromEnv("BASE_TEMPERATURE", 21)
	if err != nil {
		return Config{}, err
	}
	maxDrift, err := floatFromEnv("MAX_DRIFT", 5)
	if err != nil {
		return Config{}, err
	}
	if maxDrift < 0 {
		return Config{}, fmt.Errorf("invalid MAX_DRIFT %v (must be >= 0)", maxDrift)
	}

	var threshold *float64
	if s := strings.TrimSpace(os.Getenv("THRESHOLD_VALUE")); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid THRESHOLD_VALUE %q: %w", s, err)
		}
		threshold = &v
	}

	return Config{
		Base:            base,
		SensorID:        sensorID,
		PublishInterval: interval,
		BaseTemperature: baseTemp,
		MaxDrift:        maxDrift,
		ThresholdValue:  threshold,
	}, nil
}

func floatFromEnv(key string, def float64) (float64, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return v, nil
}

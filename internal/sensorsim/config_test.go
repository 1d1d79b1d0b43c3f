package sensorsim

import (
	"strings"
	"testing"
	"time"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "LOG_LEVEL", "HTTP_ADDR", "PORT", "MQTT_ENABLED", "MQTT_BROKER", "MQTT_PORT",
		"MQTT_CLIENT_ID", "MQTT_TOPIC", "SENSOR_ID", "PUBLISH_INTERVAL", "BASE_TEMPERATURE",
		"MAX_DRIFT", "THRESHOLD_VALUE", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_LOG_SQL",
	} {
		t.Setenv(k, "")
	}
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoadFromEnv_defaults(t *testing.T) {
	setEnv(t, nil)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() = %v", err)
	}
	if cfg.SensorID != "sim-1" || cfg.PublishInterval != 10*time.Second {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.BaseTemperature != 21 || cfg.MaxDrift != 5 || cfg.ThresholdValue != nil {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Base.MQTTClientID != "tempmon-sensorsim-sim-1" {
		t.Errorf("MQTTClientID = %q", cfg.Base.MQTTClientID)
	}
}

func TestLoadFromEnv_overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"SENSOR_ID":        "greenhouse",
		"PUBLISH_INTERVAL": "2s",
		"BASE_TEMPERATURE": "18.5",
		"THRESHOLD_VALUE":  "20",
		"MQTT_CLIENT_ID":   "custom",
	})

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() = %v", err)
	}
	if cfg.SensorID != "greenhouse" || cfg.PublishInterval != 2*time.Second || cfg.BaseTemperature != 18.5 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ThresholdValue == nil || *cfg.ThresholdValue != 20 {
		t.Errorf("ThresholdValue = %v; want 20", cfg.ThresholdValue)
	}
	if cfg.Base.MQTTClientID != "custom" {
		t.Errorf("MQTTClientID = %q; want custom", cfg.Base.MQTTClientID)
	}
}

func TestLoadFromEnv_invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"PUBLISH_INTERVAL": {"PUBLISH_INTERVAL": "soon"},
		"too short":        {"PUBLISH_INTERVAL": "10ms"},
		"BASE_TEMPERATURE": {"BASE_TEMPERATURE": "warm"},
		"THRESHOLD_VALUE":  {"THRESHOLD_VALUE": "x"},
		"MAX_DRIFT":        {"MAX_DRIFT": "-1"},
		"SENSOR_ID":        {"SENSOR_ID": "a/b"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			setEnv(t, env)
			_, err := LoadFromEnv()
			if err == nil {
				t.Fatal("LoadFromEnv() = nil; want error")
			}
			for k := range env {
				if !strings.Contains(err.Error(), k) {
					t.Errorf("error %q does not name %s", err, k)
				}
			}
		})
	}
}

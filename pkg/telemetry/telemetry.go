// Package telemetry holds the MQTT wire format shared by the server and the
// sensor simulator.
package telemetry

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TopicPrefix and TopicSuffix frame the per-sensor topic sensors/<id>/readings.
const (
	TopicPrefix = "sensors/"
	TopicSuffix = "/readings"
)

var validate = validator.New()

// Reading is one published measurement. Numeric fields stay untyped so the
// receiver can reject non-numbers the same way the HTTP API does.
type Reading struct {
	SensorID       string `json:"sensor_id" validate:"required,max=64"`
	Temperature    any    `json:"temperature"`
	ThresholdValue any    `json:"threshold_value,omitempty"`
}

// Topic returns the topic a sensor publishes to.
func Topic(sensorID string) string {
	return TopicPrefix + sensorID + TopicSuffix
}

// SensorFromTopic extracts the sensor id from a topic built by Topic.
func SensorFromTopic(topic string) (string, bool) {
	if !strings.HasPrefix(topic, TopicPrefix) || !strings.HasSuffix(topic, TopicSuffix) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(topic, TopicPrefix), TopicSuffix)
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

// Decode parses a payload. A missing sensor_id is taken from the topic.
func Decode(topic string, payload []byte) (Reading, error) {
	var r Reading
	if err := json.Unmarshal(payload, &r); err != nil {
		return Reading{}, fmt.Errorf("decode reading: %w", err)
	}
	if r.SensorID == "" {
		r.SensorID, _ = SensorFromTopic(topic)
	}
	if err := validate.Struct(r); err != nil {
		return Reading{}, fmt.Errorf("invalid reading: %w", err)
	}
	return r, nil
}

func Encode(r Reading) ([]byte, error) {
	if err := validate.Struct(r); err != nil {
		return nil, fmt.Errorf("invalid reading: %w", err)
	}
	return json.Marshal(r)
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Source labels distinguish where a reading came from.
const (
	SourceHTTP = "http"
	SourceMQTT = "mqtt"
)

// ReadingsCreated counts readings persisted, labeled by ingestion source.
var ReadingsCreated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tempmon_readings_created_total",
		Help: "The total number of sensor readings stored",
	},
	[]string{"source"},
)

// ValidationFailures counts create payloads rejected before storage.
var ValidationFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tempmon_validation_failures_total",
		Help: "The total number of rejected create payloads",
	},
	[]string{"resource", "source"},
)

// StorageFailures counts errors returned by the database, per operation.
var StorageFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tempmon_storage_failures_total",
		Help: "The total number of failed storage operations",
	},
	[]string{"op"},
)

// TemperatureDifference tracks the stored temperature minus threshold.
var TemperatureDifference = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "tempmon_temperature_difference_celsius",
		Help:    "Distribution of temperature minus threshold at ingestion",
		Buckets: []float64{-20, -10, -5, -2, -1, 0, 1, 2, 5, 10, 20},
	},
)

// MQTTMessages counts received MQTT messages by outcome.
var MQTTMessages = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tempmon_mqtt_messages_total",
		Help: "MQTT messages received, by processing outcome",
	},
	[]string{"outcome"},
)

// ObserveReading records a stored reading.
func ObserveReading(source string, difference *float64) {
	ReadingsCreated.WithLabelValues(source).Inc()
	if difference != nil {
		TemperatureDifference.Observe(*difference)
	}
}

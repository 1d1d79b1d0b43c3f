package types

import "time"

// SensorReading is one stored measurement. Nullable numbers are encoded as JSON null.
type SensorReading struct {
	ID                    int64     `json:"id"`
	Temperature           float64   `json:"temperature"`
	ThresholdValue        *float64  `json:"threshold_value"`
	TemperatureDifference *float64  `json:"temperature_difference"`
	RecordedAt            time.Time `json:"recorded_at"`
}

// NewReading is the create payload as decoded from JSON. Fields stay untyped
// so that only real JSON numbers are accepted as numbers.
type NewReading struct {
	Temperature    any `json:"temperature"`
	ThresholdValue any `json:"threshold_value"`
}

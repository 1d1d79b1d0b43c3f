package types

import "time"

// Threshold is a configured reference temperature. The newest one is active.
type Threshold struct {
	ID        int64     `json:"id"`
	Value     float64   `json:"value"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

type NewThreshold struct {
	Value any    `json:"value"`
	Label string `json:"label"`
}

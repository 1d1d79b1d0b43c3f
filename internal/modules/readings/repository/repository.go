package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"tempmon/internal/modules/readings/types"
	"tempmon/internal/utils"
)

//go:embed sql/list-readings.sql
var listReadingsSQL string

//go:embed sql/insert-reading.sql
var insertReadingSQL string

const (
	// ListLimit caps List results.
	ListLimit = 100
)

// ErrInvalidInput marks create payloads rejected before anything is stored.
// Any other error returned by the repository is a storage failure.
var ErrInvalidInput = errors.New("invalid input")

var validate = validator.New()

type ReadingRepository interface {
	List(ctx context.Context) ([]types.SensorReading, error)
	Latest(ctx context.Context) (*types.SensorReading, error)
	Create(ctx context.Context, in types.NewReading) (*types.SensorReading, error)
}

type repositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) ReadingRepository {
	return &repositoryImpl{db: db}
}

// storedRow holds the columns exactly as the driver returns them.
type storedRow struct {
	id                    int64
	temperature           any
	thresholdValue        any
	temperatureDifference any
	recordedAt            any
}

// insertParams is the validated, typed form of a create payload.
type insertParams struct {
	Temperature           *float64 `validate:"required"`
	ThresholdValue        *float64
	TemperatureDifference *float64
}

func (r *repositoryImpl) List(ctx context.Context) ([]types.SensorReading, error) {
	return r.query(ctx, ListLimit)
}

func (r *repositoryImpl) Latest(ctx context.Context) (*types.SensorReading, error) {
	out, err := r.query(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

func (r *repositoryImpl) query(ctx context.Context, limit int) ([]types.SensorReading, error) {
	rows, err := r.db.QueryContext(ctx, listReadingsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("query readings: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close readings rows", "error", err)
		}
	}()

	out := make([]types.SensorReading, 0, limit)
	for rows.Next() {
		var raw storedRow
		if err := rows.Scan(&raw.id, &raw.temperature, &raw.thresholdValue, &raw.temperatureDifference, &raw.recordedAt); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		rec, err := normalize(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate readings: %w", err)
	}
	return out, nil
}

func (r *repositoryImpl) Create(ctx context.Context, in types.NewReading) (*types.SensorReading, error) {
	params, err := prepareInsert(in)
	if err != nil {
		return nil, err
	}

	var raw storedRow
	err = r.db.QueryRowContext(ctx, insertReadingSQL,
		*params.Temperature,
		nullable(params.ThresholdValue),
		nullable(params.TemperatureDifference),
	).Scan(&raw.id, &raw.temperature, &raw.thresholdValue, &raw.temperatureDifference, &raw.recordedAt)
	if err != nil {
		return nil, fmt.Errorf("insert reading: %w", err)
	}

	rec, err := normalize(raw)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// prepareInsert validates the payload and computes the difference that is
// stored with the row. The difference is never recomputed afterwards.
func prepareInsert(in types.NewReading) (insertParams, error) {
	var p insertParams
	if t, ok := utils.AsNumber(in.Temperature); ok {
		p.Temperature = &t
	}
	if err := validate.Struct(p); err != nil {
		return insertParams{}, fmt.Errorf("%w: temperature must be a number", ErrInvalidInput)
	}

	if th, ok := utils.AsNumber(in.ThresholdValue); ok {
		diff := *p.Temperature - th
		if !utils.IsFinite(diff) {
			return insertParams{}, fmt.Errorf("%w: temperature_difference is out of range", ErrInvalidInput)
		}
		p.ThresholdValue = &th
		p.TemperatureDifference = &diff
	}
	return p, nil
}

// normalize is the single mapping applied to every row leaving the repository.
func normalize(raw storedRow) (types.SensorReading, error) {
	temperature, err := utils.StoredNumber(raw.temperature)
	if err != nil {
		return types.SensorReading{}, fmt.Errorf("reading %d temperature: %w", raw.id, err)
	}
	if temperature == nil {
		return types.SensorReading{}, fmt.Errorf("reading %d temperature: unexpected NULL", raw.id)
	}
	threshold, err := utils.StoredNumber(raw.thresholdValue)
	if err != nil {
		return types.SensorReading{}, fmt.Errorf("reading %d threshold_value: %w", raw.id, err)
	}
	diff, err := utils.StoredNumber(raw.temperatureDifference)
	if err != nil {
		return types.SensorReading{}, fmt.Errorf("reading %d temperature_difference: %w", raw.id, err)
	}
	recordedAt, err := parseTimestamp(raw.recordedAt)
	if err != nil {
		return types.SensorReading{}, fmt.Errorf("reading %d recorded_at: %w", raw.id, err)
	}

	return types.SensorReading{
		ID:                    raw.id,
		Temperature:           *temperature,
		ThresholdValue:        threshold,
		TemperatureDifference: diff,
		RecordedAt:            recordedAt,
	}, nil
}

func parseTimestamp(v any) (time.Time, error) {
	var ts string
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case string:
		ts = t
	case []byte:
		ts = string(t)
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", v)
	}
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		var err2 error
		parsed, err2 = time.Parse(time.RFC3339, ts)
		if err2 != nil {
			return time.Time{}, fmt.Errorf("parse timestamp %q: RFC3339Nano: %w; RFC3339: %w", ts, err, err2)
		}
	}
	return parsed.UTC(), nil
}

func nullable(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

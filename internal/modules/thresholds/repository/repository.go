package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"tempmon/internal/modules/thresholds/types"
	"tempmon/internal/utils"
)

//go:embed sql/list-thresholds.sql
var listThresholdsSQL string

//go:embed sql/insert-threshold.sql
var insertThresholdSQL string

// ListLimit caps List results.
const ListLimit = 100

// ErrInvalidInput marks payloads rejected before anything is stored.
var ErrInvalidInput = errors.New("invalid input")

var validate = validator.New()

type ThresholdRepository interface {
	List(ctx context.Context) ([]types.Threshold, error)
	// Active returns the most recently created threshold, or nil if none exist.
	Active(ctx context.Context) (*types.Threshold, error)
	Create(ctx context.Context, in types.NewThreshold) (*types.Threshold, error)
}

type repositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) ThresholdRepository {
	return &repositoryImpl{db: db}
}

type insertParams struct {
	Value *float64 `validate:"required"`
	Label string   `validate:"max=64"`
}

func (r *repositoryImpl) List(ctx context.Context) ([]types.Threshold, error) {
	return r.query(ctx, ListLimit)
}

func (r *repositoryImpl) Active(ctx context.Context) (*types.Threshold, error) {
	out, err := r.query(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

func (r *repositoryImpl) query(ctx context.Context, limit int) ([]types.Threshold, error) {
	rows, err := r.db.QueryContext(ctx, listThresholdsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("query thresholds: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close thresholds rows", "error", err)
		}
	}()

	out := make([]types.Threshold, 0, limit)
	for rows.Next() {
		th, err := scanThreshold(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, th)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate thresholds: %w", err)
	}
	return out, nil
}

func (r *repositoryImpl) Create(ctx context.Context, in types.NewThreshold) (*types.Threshold, error) {
	p := insertParams{Label: strings.TrimSpace(in.Label)}
	if v, ok := utils.AsNumber(in.Value); ok {
		p.Value = &v
	}
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, describe(err))
	}

	th, err := scanThreshold(r.db.QueryRowContext(ctx, insertThresholdSQL, *p.Value, p.Label))
	if err != nil {
		return nil, fmt.Errorf("insert threshold: %w", err)
	}
	return &th, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanThreshold(s scanner) (types.Threshold, error) {
	var (
		th        types.Threshold
		createdAt string
	)
	if err := s.Scan(&th.ID, &th.Value, &th.Label, &createdAt); err != nil {
		return types.Threshold{}, fmt.Errorf("scan threshold: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return types.Threshold{}, fmt.Errorf("threshold %d created_at: %w", th.ID, err)
	}
	th.CreatedAt = ts.UTC()
	return th, nil
}

// describe turns validator errors into a client-facing message.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	switch verrs[0].Field() {
	case "Value":
		return "value must be a number"
	case "Label":
		return "label must be at most 64 characters"
	}
	return verrs[0].Error()
}

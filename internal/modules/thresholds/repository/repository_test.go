package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"tempmon/internal/migrate"
	"tempmon/internal/modules/thresholds/types"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("close db: %v", closeErr)
		}
	})
	if err := migrate.Run(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestActive_empty(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	got, err := repo.Active(context.Background())
	if err != nil {
		t.Fatalf("Active() error = %v", err)
	}
	if got != nil {
		t.Errorf("Active() = %+v; want nil", got)
	}
}

func TestCreate_newestIsActive(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, types.NewThreshold{Value: 20.0, Label: "  day  "})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if first.Label != "day" {
		t.Errorf("Label = %q; want trimmed %q", first.Label, "day")
	}
	if first.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}

	second, err := repo.Create(ctx, types.NewThreshold{Value: 16.5, Label: "night"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	active, err := repo.Active(ctx)
	if err != nil {
		t.Fatalf("Active() error = %v", err)
	}
	if active == nil || active.ID != second.ID || active.Value != 16.5 {
		t.Errorf("Active() = %+v; want id %d value 16.5", active, second.ID)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 || all[0].ID != second.ID || all[1].ID != first.ID {
		t.Errorf("List() = %+v; want newest first", all)
	}
}

func TestCreate_zeroAndNegative(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	for _, v := range []float64{0, -12.25} {
		got, err := repo.Create(context.Background(), types.NewThreshold{Value: v})
		if err != nil {
			t.Fatalf("Create(%v) error = %v", v, err)
		}
		if got.Value != v {
			t.Errorf("Value = %v; want %v", got.Value, v)
		}
	}
}

func TestCreate_invalid(t *testing.T) {
	tests := []struct {
		name    string
		in      types.NewThreshold
		wantMsg string
	}{
		{name: "missing value", in: types.NewThreshold{}, wantMsg: "value must be a number"},
		{name: "string value", in: types.NewThreshold{Value: "20"}, wantMsg: "value must be a number"},
		{name: "bool value", in: types.NewThreshold{Value: true}, wantMsg: "value must be a number"},
		{name: "long label", in: types.NewThreshold{Value: 1.0, Label: strings.Repeat("x", 65)}, wantMsg: "label must be at most 64 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			repo := NewRepository(db)

			_, err := repo.Create(context.Background(), tt.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Create() error = %v; want ErrInvalidInput", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q; want it to contain %q", err, tt.wantMsg)
			}
			var n int
			if err := db.QueryRow(`SELECT COUNT(*) FROM thresholds`).Scan(&n); err != nil {
				t.Fatalf("count: %v", err)
			}
			if n != 0 {
				t.Errorf("rows = %d; want 0", n)
			}
		})
	}
}

func TestCreate_labelAtLimit(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	label := strings.Repeat("é", 64)

	got, err := repo.Create(context.Background(), types.NewThreshold{Value: 1.0, Label: label})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.Label != label {
		t.Errorf("Label = %q; want %q", got.Label, label)
	}
}

func TestList_capped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	for i := 0; i < ListLimit+3; i++ {
		if _, err := db.Exec(`INSERT INTO thresholds (value) VALUES (?)`, float64(i)); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != ListLimit {
		t.Errorf("len = %d; want %d", len(got), ListLimit)
	}
}

func TestList_storageFailure(t *testing.T) {
	db := setupTestDB(t)
	if _, err := db.Exec(`DROP TABLE thresholds`); err != nil {
		t.Fatalf("drop: %v", err)
	}

	_, err := NewRepository(db).List(context.Background())
	if err == nil || errors.Is(err, ErrInvalidInput) {
		t.Errorf("List() error = %v; want storage error", err)
	}
}

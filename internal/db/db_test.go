package db

import (
	"path/filepath"
	"strings"
	"testing"

	"tempmon/internal/config"
)

func TestBuildDSN(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "explicit DSN wins",
			cfg:  config.Config{SQLiteDSN: "file::memory:?cache=shared", SQLitePath: filepath.Join(dir, "a.db")},
			want: "file::memory:?cache=shared",
		},
		{
			name: "memory path passes through",
			cfg:  config.Config{SQLitePath: ":memory:"},
			want: ":memory:",
		},
		{
			name: "plain path gets file prefix and params",
			cfg:  config.Config{SQLitePath: filepath.Join(dir, "nested", "b.db")},
			want: "file:" + filepath.Join(dir, "nested", "b.db") + "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL",
		},
		{
			name: "file URI with query appends params",
			cfg:  config.Config{SQLitePath: "file:" + filepath.Join(dir, "c.db") + "?mode=rwc"},
			want: "file:" + filepath.Join(dir, "c.db") + "?mode=rwc&_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildDSN(tt.cfg)
			if err != nil {
				t.Fatalf("buildDSN() err = %v", err)
			}
			if got != tt.want {
				t.Errorf("buildDSN() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestOpen_createsDirectoryAndPings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "tempmon.db")
	cfg := config.Config{
		SQLiteDriver:       "sqlite3",
		SQLitePath:         path,
		SQLiteMaxOpenConns: 1,
		SQLiteMaxIdleConns: 1,
	}

	conn, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() err = %v", err)
	}
	defer func() {
		if err := Close(conn); err != nil {
			t.Errorf("Close() err = %v", err)
		}
	}()

	var ok int
	if err := conn.QueryRow(`SELECT 1`).Scan(&ok); err != nil || ok != 1 {
		t.Fatalf("SELECT 1 = %d, %v", ok, err)
	}
}

func TestOpen_withStatementLogging(t *testing.T) {
	cfg := config.Config{
		SQLiteDriver:        "sqlite3",
		SQLitePath:          ":memory:",
		SQLiteMaxOpenConns:  1,
		SQLiteLogStatements: true,
	}

	conn, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() err = %v", err)
	}
	defer func() { _ = Close(conn) }()

	if _, ok := conn.Driver().(*loggingDriver); !ok {
		t.Errorf("Driver() = %T; want *loggingDriver", conn.Driver())
	}
}

func TestOpen_unknownDriver(t *testing.T) {
	_, err := Open(config.Config{SQLiteDriver: "nope", SQLitePath: ":memory:"})
	if err == nil {
		t.Fatal("Open() err = nil; want error for unknown driver")
	}
	if !strings.Contains(err.Error(), "db open") {
		t.Errorf("err = %q; want db open prefix", err)
	}
}

func TestClose_nil(t *testing.T) {
	if err := Close(nil); err != nil {
		t.Fatalf("Close(nil) = %v; want nil", err)
	}
}

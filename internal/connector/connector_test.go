package connector

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/dbterm/internal/config"
)

func TestPlaceholder(t *testing.T) {
	names := []string{"table1", "table2"}
	p := NewPlaceholder(names)
	names[0] = "mutated"

	got, err := p.Tables(context.Background())
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}
	if strings.Join(got, ",") != "table1,table2" {
		t.Errorf("Tables() = %v", got)
	}

	got[1] = "changed"
	again, _ := p.Tables(context.Background())
	if again[1] != "table2" {
		t.Error("callers must not be able to modify the placeholder list")
	}

	if p.Name() != "placeholder" {
		t.Errorf("Name() = %q", p.Name())
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestPlaceholderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewPlaceholder(nil).Tables(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func createDatabase(t *testing.T, statements ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("executing %q: %v", stmt, err)
		}
	}
	return path
}

func TestSQLiteTables(t *testing.T) {
	path := createDatabase(t,
		"CREATE TABLE users (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT)",
		"CREATE TABLE orders (id INTEGER PRIMARY KEY, user_id INTEGER)",
		"CREATE INDEX orders_user ON orders(user_id)",
		"CREATE VIEW active_users AS SELECT * FROM users",
	)

	ctx := context.Background()
	s, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer s.Close()

	got, err := s.Tables(ctx)
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}
	// AUTOINCREMENT creates sqlite_sequence, which must be hidden.
	if strings.Join(got, ",") != "orders,users" {
		t.Errorf("Tables() = %v, want [orders users]", got)
	}
	if s.Name() != "sqlite:"+path {
		t.Errorf("Name() = %q", s.Name())
	}
}

func TestSQLiteEmptyDatabase(t *testing.T) {
	path := createDatabase(t, "PRAGMA user_version = 1")

	s, err := OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer s.Close()

	got, err := s.Tables(context.Background())
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Tables() = %v, want none", got)
	}
}

func TestOpenSQLiteMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.db")

	_, err := OpenSQLite(context.Background(), path)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("OpenSQLite must not create the database file")
	}
}

func TestOpenSQLiteEmptyPath(t *testing.T) {
	if _, err := OpenSQLite(context.Background(), ""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestOpen(t *testing.T) {
	dbPath := createDatabase(t, "CREATE TABLE items (id INTEGER)")
	ctx := context.Background()

	tests := []struct {
		name     string
		cfg      config.Database
		wantName string
		wantErr  error
	}{
		{"empty driver", config.Database{}, "placeholder", nil},
		{"placeholder", config.Database{Driver: config.DriverPlaceholder}, "placeholder", nil},
		{"sqlite", config.Database{Driver: config.DriverSQLite, DSN: dbPath}, "sqlite:" + dbPath, nil},
		{"unknown", config.Database{Driver: "oracle"}, "", ErrUnsupportedDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Open(ctx, tt.cfg, config.DefaultTables())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer c.Close()

			if c.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", c.Name(), tt.wantName)
			}
			if _, err := c.Tables(ctx); err != nil {
				t.Errorf("Tables failed: %v", err)
			}
		})
	}
}

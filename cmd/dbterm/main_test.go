package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/dbterm/internal/config"
)

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name         string
		configDriver *string
		opts         cliOptions
		wantDriver   string
		wantDSN      string
		wantLevel    string
	}{
		{
			name:       "no flags",
			wantDriver: config.DriverPlaceholder,
			wantLevel:  "info",
		},
		{
			name:       "dsn implies sqlite",
			opts:       cliOptions{dsn: "app.db"},
			wantDriver: config.DriverSQLite,
			wantDSN:    "app.db",
			wantLevel:  "info",
		},
		{
			name:         "dsn implies sqlite over an empty driver",
			configDriver: ptr(""),
			opts:         cliOptions{dsn: "app.db"},
			wantDriver:   config.DriverSQLite,
			wantDSN:      "app.db",
			wantLevel:    "info",
		},
		{
			name:       "explicit driver wins",
			opts:       cliOptions{driver: "placeholder", dsn: "app.db", logLevel: "debug"},
			wantDriver: config.DriverPlaceholder,
			wantDSN:    "app.db",
			wantLevel:  "debug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			if tt.configDriver != nil {
				cfg.Database.Driver = *tt.configDriver
			}
			applyFlags(cfg, tt.opts)

			if cfg.Database.Driver != tt.wantDriver {
				t.Errorf("driver = %q, want %q", cfg.Database.Driver, tt.wantDriver)
			}
			if cfg.Database.DSN != tt.wantDSN {
				t.Errorf("dsn = %q, want %q", cfg.Database.DSN, tt.wantDSN)
			}
			if cfg.Logging.Level != tt.wantLevel {
				t.Errorf("level = %q, want %q", cfg.Logging.Level, tt.wantLevel)
			}
		})
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dbterm.log")

	f, err := openLogFile(path)
	if err != nil {
		t.Fatalf("openLogFile() error = %v", err)
	}
	if _, err := f.WriteString("line\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "line\n" {
		t.Errorf("log content = %q", data)
	}
}

func ptr[T any](v T) *T { return &v }

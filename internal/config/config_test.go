package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/dshills/dbterm/internal/renderer/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.UI.Tables) != 6 || cfg.UI.Tables[0] != "table1" || cfg.UI.Tables[5] != "table6" {
		t.Errorf("default tables = %v", cfg.UI.Tables)
	}
	if cfg.Database.Driver != DriverPlaceholder {
		t.Errorf("default driver = %q", cfg.Database.Driver)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected defaults, got level %q", cfg.Logging.Level)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"

[database]
driver = "sqlite"
dsn = "/tmp/app.db"

[ui]
tables = ["users", "orders"]

[ui.theme]
insert = "#ff8800"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
	if cfg.Database.Driver != DriverSQLite || cfg.Database.DSN != "/tmp/app.db" {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.Database.Timeout != DefaultTimeout.String() {
		t.Errorf("timeout default lost: %q", cfg.Database.Timeout)
	}
	if strings.Join(cfg.UI.Tables, ",") != "users,orders" {
		t.Errorf("tables = %v", cfg.UI.Tables)
	}
	if cfg.UI.Theme.Insert != "#ff8800" {
		t.Errorf("insert color = %q", cfg.UI.Theme.Insert)
	}
	if cfg.UI.Theme.Border != "#808080" {
		t.Errorf("border default lost: %q", cfg.UI.Theme.Border)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"
`)
	t.Setenv("DBTERM_LOG_LEVEL", "error")
	t.Setenv("DBTERM_DB_DRIVER", "sqlite")
	t.Setenv("DBTERM_DB_DSN", "/data/env.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Logging.Level != "error" {
		t.Errorf("env should override file, level = %q", cfg.Logging.Level)
	}
	if cfg.Database.Driver != DriverSQLite || cfg.Database.DSN != "/data/env.db" {
		t.Errorf("database = %+v", cfg.Database)
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "[logging\nlevel = 1\n")

	_, err := Load(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Path != path {
		t.Errorf("Path = %q, want %q", parseErr.Path, path)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, "[logging]\ncolour = true\n")

	_, err := Load(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Config)
		wantPath string
	}{
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }, "database.driver"},
		{"sqlite without dsn", func(c *Config) { c.Database.Driver = DriverSQLite }, "database.dsn"},
		{"bad timeout", func(c *Config) { c.Database.Timeout = "soon" }, "database.timeout"},
		{"negative timeout", func(c *Config) { c.Database.Timeout = "-1s" }, "database.timeout"},
		{"bad color", func(c *Config) { c.UI.Theme.Title = "#zzzzzz" }, "ui.theme.title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", verr.Path, tt.wantPath)
			}
		})
	}
}

func TestValidateCollectsAll(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "loud"
	cfg.Database.Driver = "oracle"

	var errs ValidationErrors
	if !errors.As(cfg.Validate(), &errs) {
		t.Fatal("expected ValidationErrors")
	}
	if len(errs) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(errs), errs)
	}
	if !strings.HasPrefix(errs.Error(), "invalid configuration: ") {
		t.Errorf("Error() = %q", errs.Error())
	}
}

func TestValidateAcceptsEmptyDriverAndColors(t *testing.T) {
	cfg := Default()
	cfg.Database.Driver = ""
	cfg.UI.Theme = Theme{}
	cfg.Logging.Level = "WARN"

	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    core.Color
		wantErr bool
	}{
		{"", core.ColorDefault, false},
		{"  ", core.ColorDefault, false},
		{"#ff0000", core.ColorFromRGB(255, 0, 0), false},
		{"00ff00", core.ColorFromRGB(0, 255, 0), false},
		{"4", core.ColorFromIndex(4), false},
		{" 255 ", core.ColorFromIndex(255), false},
		{"112233", core.ColorFromRGB(0x11, 0x22, 0x33), false},
		{"256", core.Color{}, true},
		{"nope", core.Color{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equals(tt.want) {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTimeoutDuration(t *testing.T) {
	d, err := Database{}.TimeoutDuration()
	if err != nil || d != DefaultTimeout {
		t.Errorf("empty timeout = %v, %v", d, err)
	}

	d, err = Database{Timeout: "250ms"}.TimeoutDuration()
	if err != nil || d != 250*time.Millisecond {
		t.Errorf("250ms timeout = %v, %v", d, err)
	}
}

func TestDefaultPaths(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG directories only apply on linux")
	}
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_CACHE_HOME", "/cache")

	if p, err := DefaultPath(); err != nil || p != filepath.Join("/cfg", "dbterm", "config.toml") {
		t.Errorf("DefaultPath() = %q, %v", p, err)
	}
	if p, err := DefaultLogFile(); err != nil || p != filepath.Join("/cache", "dbterm", "dbterm.log") {
		t.Errorf("DefaultLogFile() = %q, %v", p, err)
	}
}

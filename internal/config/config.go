package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/dbterm/internal/config/loader"
	"github.com/dshills/dbterm/internal/renderer/core"
)

// AppName names the per-user config and cache directories.
const AppName = "dbterm"

// Supported database drivers.
const (
	DriverPlaceholder = "placeholder"
	DriverSQLite      = "sqlite"
)

// Config is the complete dbterm configuration.
type Config struct {
	Logging  Logging  `toml:"logging"`
	Database Database `toml:"database"`
	UI       UI       `toml:"ui"`
}

// Logging configures the log file.
type Logging struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level"`
	// File is the log file path. Empty selects DefaultLogFile.
	File string `toml:"file"`
}

// Database selects the connector used to list tables.
type Database struct {
	// Driver is "placeholder" (or empty) or "sqlite".
	Driver string `toml:"driver"`
	// DSN is the driver specific data source, a file path for sqlite.
	DSN string `toml:"dsn"`
	// Timeout bounds connecting and listing tables, as a Go duration.
	Timeout string `toml:"timeout"`
}

// TimeoutDuration parses Timeout. Empty means DefaultTimeout.
func (d Database) TimeoutDuration() (time.Duration, error) {
	if d.Timeout == "" {
		return DefaultTimeout, nil
	}
	return time.ParseDuration(d.Timeout)
}

// DefaultTimeout is used when Database.Timeout is empty.
const DefaultTimeout = 5 * time.Second

// UI configures the screen.
type UI struct {
	// Tables lists the names shown by the placeholder connector.
	Tables []string `toml:"tables"`
	Theme  Theme    `toml:"theme"`
}

// Theme holds hex colors ("#rrggbb") or 256-color palette indexes ("4").
// Empty uses the terminal default.
type Theme struct {
	Border string `toml:"border"`
	Title  string `toml:"title"`
	Text   string `toml:"text"`
	Tables string `toml:"tables"`
	Normal string `toml:"normal"`
	Insert string `toml:"insert"`
}

// Fields returns the theme's settings keyed by name.
func (t Theme) Fields() map[string]string {
	return map[string]string{
		"border": t.Border,
		"title":  t.Title,
		"text":   t.Text,
		"tables": t.Tables,
		"normal": t.Normal,
		"insert": t.Insert,
	}
}

// ParseColor converts a theme value to a color. Empty means the terminal
// default; a decimal number from 0 to 255 is a palette index.
func ParseColor(value string) (core.Color, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return core.ColorDefault, nil
	}
	if len(value) <= 3 {
		if n, err := strconv.ParseUint(value, 10, 64); err == nil {
			if n > 255 {
				return core.Color{}, fmt.Errorf("palette index %d out of range", n)
			}
			return core.ColorFromIndex(uint8(n)), nil
		}
	}
	return core.ColorFromHex(value)
}

// DefaultTables are the placeholder table names.
func DefaultTables() []string {
	return []string{"table1", "table2", "table3", "table4", "table5", "table6"}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: Logging{
			Level: "info",
		},
		Database: Database{
			Driver:  DriverPlaceholder,
			Timeout: DefaultTimeout.String(),
		},
		UI: UI{
			Tables: DefaultTables(),
			Theme: Theme{
				Border: "#808080",
				Title:  "#ffffff",
				Normal: "#00ff00",
				Insert: "#5f87ff",
			},
		},
	}
}

// envMapping maps environment variables to config paths.
func envMapping() map[string]string {
	return map[string]string{
		"DBTERM_LOG_LEVEL":  "logging.level",
		"DBTERM_LOG_FILE":   "logging.file",
		"DBTERM_DB_DRIVER":  "database.driver",
		"DBTERM_DB_DSN":     "database.dsn",
		"DBTERM_DB_TIMEOUT": "database.timeout",
	}
}

// Load builds the configuration from defaults, the TOML file at path and the
// environment. A missing file is not an error. An empty path uses
// DefaultPath. The result is not validated.
func Load(path string) (*Config, error) {
	return load(loader.NewTOMLLoader(resolvePath(path)), loader.NewEnvLoader(envMapping()))
}

func load(file *loader.TOMLLoader, env *loader.EnvLoader) (*Config, error) {
	cfg := Default()
	if file.Path() != "" {
		if _, err := file.Load(cfg); err != nil {
			return nil, err
		}
	}
	if err := loader.Merge("environment", env.Load(), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolvePath(path string) string {
	if path != "" {
		return path
	}
	p, err := DefaultPath()
	if err != nil {
		return ""
	}
	return p
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, "config.toml"), nil
}

// DefaultLogFile returns the per-user log file location.
func DefaultLogFile() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, AppName+".log"), nil
}

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if !slices.Contains(logLevels, strings.ToLower(c.Logging.Level)) {
		errs = append(errs, &ValidationError{
			Path:    "logging.level",
			Message: "must be one of " + strings.Join(logLevels, ", "),
			Value:   c.Logging.Level,
		})
	}

	switch c.Database.Driver {
	case "", DriverPlaceholder:
	case DriverSQLite:
		if c.Database.DSN == "" {
			errs = append(errs, &ValidationError{
				Path:    "database.dsn",
				Message: "required for the sqlite driver",
				Value:   c.Database.DSN,
			})
		}
	default:
		errs = append(errs, &ValidationError{
			Path:    "database.driver",
			Message: "unsupported driver",
			Value:   c.Database.Driver,
		})
	}

	if d, err := c.Database.TimeoutDuration(); err != nil || d <= 0 {
		errs = append(errs, &ValidationError{
			Path:    "database.timeout",
			Message: "must be a positive duration such as 5s",
			Value:   c.Database.Timeout,
		})
	}

	fields := c.UI.Theme.Fields()
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if _, err := ParseColor(fields[name]); err != nil {
			errs = append(errs, &ValidationError{
				Path:    "ui.theme." + name,
				Message: "invalid color, want #rrggbb or a palette index",
				Value:   fields[name],
			})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

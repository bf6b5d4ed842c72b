// Package connector lists the tables of the configured database.
//
// The table list is read once at startup and shown in the Tables panel.
// Two connectors exist: Placeholder, which returns a fixed list of names,
// and SQLite, which reads user tables from a local database file.
package connector

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshills/dbterm/internal/config"
)

// ErrUnsupportedDriver is returned by Open for an unknown driver name.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Connector is a source of table names.
type Connector interface {
	// Name identifies the connector in logs.
	Name() string

	// Tables returns the table names in display order.
	Tables(ctx context.Context) ([]string, error)

	// Close releases any held resources.
	Close() error
}

// Open creates the connector selected by cfg.Driver. tables is the list used
// by the placeholder connector.
func Open(ctx context.Context, cfg config.Database, tables []string) (Connector, error) {
	switch cfg.Driver {
	case "", config.DriverPlaceholder:
		return NewPlaceholder(tables), nil
	case config.DriverSQLite:
		return OpenSQLite(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

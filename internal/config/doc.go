// Package config loads dbterm settings.
//
// Settings are layered in order of increasing precedence:
//
//  1. Built-in defaults (Default)
//  2. The TOML config file, usually $XDG_CONFIG_HOME/dbterm/config.toml
//  3. DBTERM_* environment variables
//
// Command-line flags are applied by the caller after Load returns.
//
// Example config.toml:
//
//	[logging]
//	level = "debug"
//	file = "/tmp/dbterm.log"
//
//	[database]
//	driver = "sqlite"
//	dsn = "/var/lib/app/data.db"
//	timeout = "5s"
//
//	[ui]
//	tables = ["users", "orders"]
//
//	[ui.theme]
//	border = "#808080"
//	tables = "6"
//	insert = "#5f87ff"
package config

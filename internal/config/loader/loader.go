// Package loader reads configuration sources into Go values.
//
// TOML files are decoded with go-toml in strict mode so unknown keys are
// reported rather than ignored. Environment variables are collected into a
// nested map keyed by setting path, ready to be layered over file values.
package loader

import (
	"os"
)

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

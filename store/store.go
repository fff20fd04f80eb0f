// Package store provides the key-value persistence backends of the ledger.
//
// Every backend satisfies vendas.Storage: Get reports whether the key exists,
// Set replaces the value atomically.
package store

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// KV is the contract shared by every backend.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// Drivers accepted by Open.
const (
	DriverDir    = "dir"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Open returns the backend named driver. For "dir" the dsn is a directory,
// for "sqlite" a database file. Relative sqlite paths are resolved in dataDir.
func Open(driver, dataDir, dsn string) (KV, error) {
	switch driver {
	case DriverDir, "":
		return NewDir(dataDir)
	case DriverSQLite:
		if !filepath.IsAbs(dsn) {
			dsn = filepath.Join(dataDir, dsn)
		}
		return OpenSQLite(dsn)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q want %q, %q or %q", driver, DriverDir, DriverSQLite, DriverMemory)
	}
}

var keyRE = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

func checkKey(key string) error {
	if !keyRE.MatchString(key) || key == "." || key == ".." {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}

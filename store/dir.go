package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir stores each key in its own file under a directory.
type Dir struct {
	path string
}

// NewDir creates path if needed and returns a Dir rooted there.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", path, err)
	}
	return &Dir{path: path}, nil
}

// Path returns the directory.
func (d *Dir) Path() string { return d.path }

func (d *Dir) Get(key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(filepath.Join(d.path, key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("could not read %q: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes value to a temporary file and renames it over the previous one,
// so a reader sees either the old or the new value.
func (d *Dir) Set(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(d.path, "."+key+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", key, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("could not sync %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(d.path, key)); err != nil {
		return fmt.Errorf("could not replace %q: %w", key, err)
	}
	return nil
}

func (d *Dir) Close() error { return nil }

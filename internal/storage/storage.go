// Package storage provides file operations for fg's JSON stores.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// EnvConfigDir overrides the directory holding fg's state files.
const EnvConfigDir = "FG_CONFIG_DIR"

// WriteError reports a failure to persist a store file or its directory.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Dir returns the directory holding config.json, aliases.json and
// settings.toml. It does not create the directory.
//
// Resolution order: $FG_CONFIG_DIR, the OS user config dir + "/fg",
// ~/.config/fg, then ./.config/fg when no home directory is known.
func Dir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "fg")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "fg")
	}
	return filepath.Join(".", ".config", "fg")
}

// SaveJSON atomically writes data as indented JSON to path.
// It ensures the parent directory exists, writes to a temp file,
// then renames to the final path. Filesystem failures are *WriteError.
func SaveJSON(path string, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &WriteError{Path: filepath.Dir(path), Err: err}
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, jsonData, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// LoadJSON reads JSON from path into dest.
// Returns os.ErrNotExist if the file doesn't exist (caller should handle).
func LoadJSON(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Lock takes an exclusive advisory lock on path + ".lock", blocking until it
// is available. The returned func releases it.
func Lock(path string) (unlock func(), err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &WriteError{Path: filepath.Dir(path), Err: err}
	}

	fl := flock.New(path + ".lock")
	if err := fl.Lock(); err != nil {
		return nil, &WriteError{Path: fl.Path(), Err: err}
	}
	return func() { _ = fl.Unlock() }, nil
}

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/raphi011/fg/internal/storage"
)

// Backend modes.
const (
	ModeGit = "git"
	ModeGH  = "gh"
)

// ModeFileName is the mode store inside the fg config directory.
const ModeFileName = "config.json"

// ValidModes lists the accepted backend modes.
var ValidModes = []string{ModeGit, ModeGH}

// ErrInvalidMode is returned when setting a mode other than ValidModes.
var ErrInvalidMode = errors.New("invalid mode")

type modeFile struct {
	Mode string `json:"mode"`
}

// ModeStore persists the backend mode in config.json.
type ModeStore struct {
	path string
}

// NewModeStore returns a store backed by config.json in dir.
func NewModeStore(dir string) *ModeStore {
	return &ModeStore{path: filepath.Join(dir, ModeFileName)}
}

// Path returns the location of config.json.
func (s *ModeStore) Path() string {
	return s.path
}

// ReadMode returns the stored mode. A missing, unreadable or corrupt file,
// or a stored value outside ValidModes, reads as ModeGit.
func (s *ModeStore) ReadMode() string {
	var f modeFile
	if err := storage.LoadJSON(s.path, &f); err != nil {
		return ModeGit
	}
	if !slices.Contains(ValidModes, f.Mode) {
		return ModeGit
	}
	return f.Mode
}

// WriteMode validates mode and replaces config.json with it.
func (s *ModeStore) WriteMode(mode string) error {
	if !slices.Contains(ValidModes, mode) {
		return fmt.Errorf("%w %q: must be %s", ErrInvalidMode, mode, formatOptions(ValidModes))
	}

	unlock, err := storage.Lock(s.path)
	if err != nil {
		return err
	}
	defer unlock()

	return storage.SaveJSON(s.path, modeFile{Mode: mode})
}

// Package alias stores named sequences of backend subcommands.
//
// The table lives in aliases.json in the fg config directory:
//
//	{
//	  "commands": {
//	    "save": ["add .", "commit -m wip"]
//	  }
//	}
//
// Each command string is a full backend subcommand. It is split on
// whitespace when run, so quoted arguments with spaces are not supported.
package alias

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/fg/internal/storage"
)

// FileName is the alias store inside the fg config directory.
const FileName = "aliases.json"

var (
	// ErrNotFound is matched by *NotFoundError.
	ErrNotFound = errors.New("alias not found")

	// ErrEmptyName is returned when creating an alias without a name.
	ErrEmptyName = errors.New("alias name must not be empty")

	// ErrEmptyCommands is returned when creating an alias without commands.
	ErrEmptyCommands = errors.New("alias requires at least one command")

	// ErrBlankCommand is returned when a command is empty or only whitespace.
	ErrBlankCommand = errors.New("alias command must not be blank")
)

// maxSuggestions caps the "did you mean" list.
const maxSuggestions = 3

// NotFoundError reports a missing alias, with similarly named ones.
type NotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("Alias '%s' not found", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type file struct {
	Commands map[string][]string `json:"commands"`
}

// Store persists aliases in aliases.json.
type Store struct {
	path string
}

// NewStore returns a store backed by aliases.json in dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, FileName)}
}

// Path returns the location of aliases.json.
func (s *Store) Path() string {
	return s.path
}

// Read returns the whole alias table. A missing, unreadable or corrupt file
// reads as an empty table. The result is never nil.
func (s *Store) Read() map[string][]string {
	var f file
	if err := storage.LoadJSON(s.path, &f); err != nil || f.Commands == nil {
		return make(map[string][]string)
	}
	return f.Commands
}

// Create inserts or replaces the alias name and persists the table.
func (s *Store) Create(name string, commands []string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(commands) == 0 {
		return ErrEmptyCommands
	}
	for _, c := range commands {
		if strings.TrimSpace(c) == "" {
			return ErrBlankCommand
		}
	}

	unlock, err := storage.Lock(s.path)
	if err != nil {
		return err
	}
	defer unlock()

	table := s.Read()
	table[name] = slices.Clone(commands)
	return storage.SaveJSON(s.path, file{Commands: table})
}

// Lookup returns the commands stored for name, or a *NotFoundError.
func (s *Store) Lookup(name string) ([]string, error) {
	table := s.Read()
	if commands, ok := table[name]; ok {
		return commands, nil
	}
	return nil, &NotFoundError{Name: name, Suggestions: suggest(name, table)}
}

// All yields every alias sorted by name. The table is read once, when
// iteration starts.
func (s *Store) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		table := s.Read()
		for _, name := range slices.Sorted(maps.Keys(table)) {
			if !yield(name, table[name]) {
				return
			}
		}
	}
}

// suggest ranks alias names by fuzzy match against name.
func suggest(name string, table map[string][]string) []string {
	if name == "" || len(table) == 0 {
		return nil
	}

	names := slices.Sorted(maps.Keys(table))
	matches := fuzzy.Find(name, names)

	var out []string
	for _, m := range matches {
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

package alias

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"

	"github.com/raphi011/fg/internal/storage"
)

func TestRead_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string // empty means no file
	}{
		{"missing file", ""},
		{"corrupt json", `{"commands": {`},
		{"null commands", `{"commands": null}`},
		{"wrong shape", `{"commands": ["status"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			if tt.content != "" {
				if err := os.WriteFile(filepath.Join(dir, FileName), []byte(tt.content), 0o644); err != nil {
					t.Fatalf("WriteFile failed: %v", err)
				}
			}
			got := NewStore(dir).Read()
			if got == nil || len(got) != 0 {
				t.Errorf("Read() = %v, want empty non-nil map", got)
			}
		})
	}
}

func TestCreate_RoundTrip(t *testing.T) {
	t.Parallel()

	s := NewStore(filepath.Join(t.TempDir(), "fg"))

	if err := s.Create("x", []string{"status", "log"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got := s.Read()
	want := map[string][]string{"x": {"status", "log"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read() = %v, want %v", got, want)
	}
}

func TestCreate_Replaces(t *testing.T) {
	t.Parallel()

	s := NewStore(t.TempDir())

	if err := s.Create("x", []string{"status", "log"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := s.Create("y", []string{"fetch"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := s.Create("x", []string{"diff"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got := s.Read()
	want := map[string][]string{"x": {"diff"}, "y": {"fetch"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read() = %v, want %v", got, want)
	}
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()

	s := NewStore(t.TempDir())

	if err := s.Create("", []string{"status"}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Create(\"\") error = %v, want ErrEmptyName", err)
	}
	if err := s.Create("x", nil); !errors.Is(err, ErrEmptyCommands) {
		t.Errorf("Create(nil commands) error = %v, want ErrEmptyCommands", err)
	}
	for _, commands := range [][]string{{""}, {"status", "   "}, {"\t"}} {
		if err := s.Create("x", commands); !errors.Is(err, ErrBlankCommand) {
			t.Errorf("Create(%q) error = %v, want ErrBlankCommand", commands, err)
		}
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Error("failed Create must not write aliases.json")
	}
}

func TestCreate_FileFormat(t *testing.T) {
	t.Parallel()

	s := NewStore(t.TempDir())
	if err := s.Create("save", []string{"add .", "commit -m wip"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	var raw struct {
		Commands map[string][]string `json:"commands"`
	}
	if err := storage.LoadJSON(s.Path(), &raw); err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}
	if !slices.Equal(raw.Commands["save"], []string{"add .", "commit -m wip"}) {
		t.Errorf("commands[save] = %q", raw.Commands["save"])
	}
}

func TestCreate_WriteError(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	err := NewStore(blocker).Create("x", []string{"status"})
	var we *storage.WriteError
	if !errors.As(err, &we) {
		t.Errorf("Create() error = %v, want *storage.WriteError", err)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	s := NewStore(t.TempDir())
	for name, cmds := range map[string][]string{
		"save":  {"add .", "commit -m wip"},
		"sync":  {"pull", "push"},
		"stash": {"stash"},
	} {
		if err := s.Create(name, cmds); err != nil {
			t.Fatalf("Create(%q) error = %v", name, err)
		}
	}

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		got, err := s.Lookup("sync")
		if err != nil {
			t.Fatalf("Lookup() error = %v", err)
		}
		if !slices.Equal(got, []string{"pull", "push"}) {
			t.Errorf("Lookup() = %q", got)
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		_, err := s.Lookup("missing")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Lookup() error = %v, want ErrNotFound", err)
		}
		if err.Error() != "Alias 'missing' not found" {
			t.Errorf("Lookup() error = %q", err.Error())
		}
	})

	t.Run("suggestions", func(t *testing.T) {
		t.Parallel()
		_, err := s.Lookup("sav")
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("Lookup() error = %v, want *NotFoundError", err)
		}
		if !slices.Contains(nf.Suggestions, "save") {
			t.Errorf("Suggestions = %q, want to contain save", nf.Suggestions)
		}
	})
}

func TestLookup_EmptyStore(t *testing.T) {
	t.Parallel()

	_, err := NewStore(t.TempDir()).Lookup("missing")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Lookup() error = %v, want *NotFoundError", err)
	}
	if len(nf.Suggestions) != 0 {
		t.Errorf("Suggestions = %q, want none", nf.Suggestions)
	}
}

func TestAll_Sorted(t *testing.T) {
	t.Parallel()

	s := NewStore(t.TempDir())
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := s.Create(name, []string{"status"}); err != nil {
			t.Fatalf("Create(%q) error = %v", name, err)
		}
	}

	var names []string
	for name, cmds := range s.All() {
		names = append(names, name)
		if !slices.Equal(cmds, []string{"status"}) {
			t.Errorf("All() %s = %q", name, cmds)
		}
	}

	want := []string{"alpha", "mid", "zeta"}
	if !slices.Equal(names, want) {
		t.Errorf("All() names = %q, want %q", names, want)
	}
}

func TestAll_EarlyStop(t *testing.T) {
	t.Parallel()

	s := NewStore(t.TempDir())
	for _, name := range []string{"a", "b", "c"} {
		if err := s.Create(name, []string{"status"}); err != nil {
			t.Fatalf("Create(%q) error = %v", name, err)
		}
	}

	count := 0
	for range s.All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("iterated %d times after break, want 1", count)
	}
}

package static

import (
	"strings"
	"testing"
)

func TestRenderTable_Empty(t *testing.T) {
	t.Parallel()

	if got := RenderTable([]string{"NAME", "COMMANDS"}, nil); got != "" {
		t.Errorf("RenderTable(no rows) = %q, want empty", got)
	}
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		AliasTableRow("save", []string{"add .", "commit -m wip"}),
		AliasTableRow("sync", []string{"pull", "push"}),
	}
	got := RenderTable([]string{"NAME", "COMMANDS"}, rows)

	for _, want := range []string{"NAME", "COMMANDS", "save", "add . ; commit -m wip", "sync", "pull ; push"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderTable output missing %q:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("RenderTable output should end with a newline")
	}
}

func TestAliasTableRow(t *testing.T) {
	t.Parallel()

	row := AliasTableRow("x", []string{"status"})
	if len(row) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(row))
	}
	if row[0] != "x" || row[1] != "status" {
		t.Errorf("AliasTableRow = %q", row)
	}
}

func TestAliasLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		commands []string
		want     string
	}{
		{"save", []string{"add .", "commit -m wip"}, `save -> ["add .", "commit -m wip"]`},
		{"st", []string{"status"}, `st -> ["status"]`},
	}
	for _, tt := range tests {
		if got := AliasLine(tt.name, tt.commands); got != tt.want {
			t.Errorf("AliasLine(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

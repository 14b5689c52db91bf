// Package static provides non-interactive terminal output components.
package static

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// AliasTableRow formats one alias as NAME, COMMANDS columns. Commands are
// joined with " ; " in run order.
func AliasTableRow(name string, commands []string) []string {
	return []string{name, strings.Join(commands, " ; ")}
}

// AliasLine formats one alias for plain (non-terminal) output:
//
//	save -> ["add .", "commit -m wip"]
func AliasLine(name string, commands []string) string {
	return fmt.Sprintf("%s -> %s", name, QuoteList(commands))
}

// QuoteList renders commands as a bracketed list of quoted strings.
func QuoteList(commands []string) string {
	quoted := make([]string, len(commands))
	for i, c := range commands {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

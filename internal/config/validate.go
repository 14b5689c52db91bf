package config

import (
	"fmt"
	"strings"
)

// validateArg checks that a setting used as a backend argument cannot be
// mistaken for an option.
func validateArg(value, field string) error {
	if strings.HasPrefix(value, "-") {
		return fmt.Errorf("invalid %s %q: must not start with \"-\"", field, value)
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

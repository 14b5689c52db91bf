// Package styles provides shared lipgloss styles for fg output.
//
// Styles always render escape sequences; the output and error writers
// downsample them to what the terminal supports.
package styles

import "charm.land/lipgloss/v2"

// Colors used throughout the UI
var (
	// Success is used for completed actions (green)
	Success = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error = lipgloss.Color("196")

	// Warning is used for recoverable problems (orange)
	Warning = lipgloss.Color("214")
)

// Common styles
var (
	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color with bold
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
)

// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss colors are configured. All
// styling is semantic (Success, Error, Literal, etc.) rather than visual.
//
// When disabled, all helpers return the input string unchanged with no ANSI
// codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool

	successStyle  lipgloss.Style
	warningStyle  lipgloss.Style
	errorStyle    lipgloss.Style
	headerStyle   lipgloss.Style
	mutedStyle    lipgloss.Style
	literalStyle  lipgloss.Style
	argumentStyle lipgloss.Style
)

// Init initializes the style package. It respects the NO_COLOR and
// GRAFT_NO_COLOR environment variables; if either is set, styling is
// disabled regardless of the enable parameter.
//
// Call once from main before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("GRAFT_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if !enabled {
		return
	}

	// Force an ANSI256 profile regardless of TTY detection so output is
	// stable when piped through the playground.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	literalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	argumentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	if !enabled {
		return text
	}
	return warningStyle.Render(text)
}

// Error styles text for error messages.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Header styles text for section headers.
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}

// Muted styles de-emphasized text.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}

// Literal styles a literal command token.
func Literal(text string) string {
	if !enabled {
		return text
	}
	return literalStyle.Render(text)
}

// Argument styles an argument placeholder.
func Argument(text string) string {
	if !enabled {
		return text
	}
	return argumentStyle.Render(text)
}

// Package ui renders a View's current tasks to the terminal: a styled
// table of properties (lipgloss/termenv) and, for a single-task detail
// view, a markdown-rendered description (glamour). Output is serialized
// through a single exclusive handle per render call.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ConfigureColorProfile detects the terminal's color capability via
// termenv and applies it to lipgloss's global renderer, so table styles
// degrade gracefully outside a full-color terminal.
func ConfigureColorProfile() termenv.Profile {
	var profile termenv.Profile
	switch {
	case !ShouldUseColor():
		profile = termenv.Ascii
	case os.Getenv("CLICOLOR_FORCE") != "":
		profile = termenv.EnvColorProfile()
	case IsTerminal():
		profile = termenv.NewOutput(os.Stdout).ColorProfile()
	default:
		profile = termenv.Ascii
	}
	lipgloss.SetColorProfile(profile)
	return profile
}

// IsTerminal reports whether stdout is a TTY.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ShouldUseColor follows the standard NO_COLOR / CLICOLOR conventions,
// falling back to TTY detection.
func ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CLICOLOR") == "0" {
		return false
	}
	if os.Getenv("CLICOLOR_FORCE") != "" {
		return true
	}
	return IsTerminal()
}

// Width returns the terminal width, or a sane default outside a TTY.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

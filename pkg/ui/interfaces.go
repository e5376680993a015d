package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cloudposse/gridtable/pkg/terminal"
)

// Formatter provides text formatting with automatic degradation.
// Formatter RETURNS FORMATTED STRINGS. It never writes to streams.
//
// Usage Pattern:
//
//	f := ui.NewFormatter(term)
//	msg := f.Warningf("no styles match %q", pattern) // "⚠ no styles match ..." with a yellow icon
//
// The package-level Warning and Info write such messages to the UI channel.
// Tables go to the data channel through Output.
type Formatter interface {
	// StatusMessage prefixes text with a colored icon. Used by Warning and Info.
	StatusMessage(icon string, style *lipgloss.Style, text string) string

	Warning(text string) string                      // "⚠ {text}"
	Warningf(format string, a ...interface{}) string // "⚠ {formatted}"
	Info(text string) string                         // "ℹ {text}"
	Infof(format string, a ...interface{}) string    // "ℹ {formatted}"

	// Capability queries (delegates to terminal.Terminal).
	ColorProfile() terminal.ColorProfile
	SupportsColor() bool
}

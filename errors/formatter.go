package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cockroachdb/errors"
	"github.com/mitchellh/go-wordwrap"
	"github.com/muesli/reflow/indent"
	"golang.org/x/term"

	"github.com/cloudposse/gridtable/pkg/perf"
)

const (
	// DefaultMaxLineLength is the default maximum line length before wrapping.
	DefaultMaxLineLength = 80

	newline    = "\n"
	hintIcon   = "💡 "
	hintIndent = 4

	colorRed   = "#FF0000"
	colorGray  = "#808080"
	colorGreen = "#00A651"
)

// FormatterConfig controls error formatting behavior.
type FormatterConfig struct {
	// Verbose enables detailed error chain output.
	Verbose bool

	// Color controls color output: "auto", "always", or "never".
	Color string

	// MaxLineLength is the maximum length before wrapping (default: 80).
	MaxLineLength int
}

// DefaultFormatterConfig returns default formatting configuration.
func DefaultFormatterConfig() FormatterConfig {
	defer perf.Track(nil, "errors.DefaultFormatterConfig")()

	return FormatterConfig{
		Verbose:       false,
		Color:         "auto",
		MaxLineLength: DefaultMaxLineLength,
	}
}

// formatContextTable creates a styled 2-column table for error context.
// Context is extracted from cockroachdb/errors safe details ("style=box column=2").
func formatContextTable(err error, useColor bool) string {
	var rows [][]string
	for _, payload := range errors.GetAllSafeDetails(err) {
		for _, detail := range payload.SafeDetails {
			for _, pair := range strings.Split(fmt.Sprintf("%v", detail), " ") {
				if parts := strings.SplitN(pair, "=", 2); len(parts) == 2 {
					rows = append(rows, []string{parts[0], parts[1]})
				}
			}
		}
	}

	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Context", "Value").
		Rows(rows...)

	if useColor {
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
			if row == table.HeaderRow {
				return style.Foreground(lipgloss.Color(colorGreen)).Bold(true)
			}
			if col == 0 {
				return style.Foreground(lipgloss.Color(colorGray))
			}
			return style
		})
	}

	return newline + t.String()
}

// Format formats an error for display: message, hints, and in verbose mode the
// context table and the full stack trace.
func Format(err error, config FormatterConfig) string {
	defer perf.Track(nil, "errors.Format")()

	if err == nil {
		return ""
	}

	useColor := shouldUseColor(config.Color)

	errorStyle := lipgloss.NewStyle()
	if useColor {
		errorStyle = errorStyle.Foreground(lipgloss.Color(colorRed))
	}

	var output strings.Builder

	mainMsg := err.Error()
	if len(mainMsg) > config.MaxLineLength && !config.Verbose {
		mainMsg = wrapText(mainMsg, config.MaxLineLength)
	}
	output.WriteString(errorStyle.Render(mainMsg))

	hints := errors.GetAllHints(err)
	if len(hints) > 0 {
		output.WriteString(newline)
		for _, hint := range hints {
			output.WriteString(indent.String(hintIcon+hint, hintIndent))
			output.WriteString(newline)
		}
	}

	if config.Verbose {
		if contextTable := formatContextTable(err, useColor); contextTable != "" {
			output.WriteString(contextTable)
			output.WriteString(newline)
		}
		output.WriteString(newline)
		output.WriteString(formatStackTrace(err, useColor))
	}

	return output.String()
}

// shouldUseColor determines if color output should be used.
func shouldUseColor(colorMode string) bool {
	switch colorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// wrapText wraps text on word boundaries to the specified width.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultMaxLineLength
	}
	return wordwrap.WrapString(text, uint(width))
}

// formatStackTrace formats the full error chain with stack traces.
func formatStackTrace(err error, useColor bool) string {
	style := lipgloss.NewStyle()
	if useColor {
		style = style.Foreground(lipgloss.Color(colorGray))
	}

	return style.Render(fmt.Sprintf("%+v", err))
}

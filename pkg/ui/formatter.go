package ui

import (
	"fmt"
	stdio "io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	errUtils "github.com/cloudposse/gridtable/errors"
	"github.com/cloudposse/gridtable/pkg/io"
	"github.com/cloudposse/gridtable/pkg/perf"
	"github.com/cloudposse/gridtable/pkg/terminal"
)

const (
	newline           = "\n"
	iconMessageFormat = "%s %s"

	iconWarning = "⚠"
	iconInfo    = "ℹ"
)

var (
	globalFormatter *formatter
	formatterMu     sync.RWMutex
)

// InitFormatter initializes the global formatter with an I/O context.
// Call once at startup, after configuration is loaded.
func InitFormatter(ioCtx io.Context, opts ...terminal.Option) {
	defer perf.Track(nil, "ui.InitFormatter")()

	formatterMu.Lock()
	defer formatterMu.Unlock()

	// terminal.Write() → io.Write(UIStream) → stderr.
	termOpts := append([]terminal.Option{terminal.WithIO(NewTerminalWriter(ioCtx))}, opts...)
	term := terminal.New(termOpts...)

	globalFormatter = NewFormatter(term).(*formatter)
}

// Terminal returns the terminal of the global formatter, or nil before InitFormatter.
func Terminal() terminal.Terminal {
	formatterMu.RLock()
	defer formatterMu.RUnlock()

	if globalFormatter == nil {
		return nil
	}
	return globalFormatter.terminal
}

func getFormatter() (*formatter, error) {
	formatterMu.RLock()
	defer formatterMu.RUnlock()

	if globalFormatter == nil {
		return nil, errUtils.ErrUIFormatterNotInitialized
	}
	return globalFormatter, nil
}

// Warning writes a warning message with a yellow sign to stderr (UI channel).
func Warning(text string) error {
	return writeStatus(func(f *formatter) string { return f.Warning(text) })
}

// Warningf writes a formatted warning message to stderr (UI channel).
func Warningf(format string, a ...interface{}) error {
	return Warning(fmt.Sprintf(format, a...))
}

// Info writes an info message with a cyan icon to stderr (UI channel).
func Info(text string) error {
	return writeStatus(func(f *formatter) string { return f.Info(text) })
}

// Infof writes a formatted info message to stderr (UI channel).
func Infof(format string, a ...interface{}) error {
	return Info(fmt.Sprintf(format, a...))
}

func writeStatus(render func(f *formatter) string) error {
	f, err := getFormatter()
	if err != nil {
		return err
	}
	return f.terminal.Write(render(f) + newline)
}

// formatter implements the Formatter interface.
type formatter struct {
	terminal terminal.Terminal
	styles   styleSet
}

// styleSet holds the icon styles of status messages.
type styleSet struct {
	warning lipgloss.Style
	info    lipgloss.Style
}

// NewFormatter creates a Formatter that degrades to plain text when term has no colors.
func NewFormatter(term terminal.Terminal) Formatter {
	defer perf.Track(nil, "ui.NewFormatter")()

	r := lipgloss.NewRenderer(stdio.Discard)
	r.SetColorProfile(term.ColorProfile().TermenvProfile())

	return &formatter{
		terminal: term,
		styles: styleSet{
			warning: r.NewStyle().Foreground(lipgloss.Color("#FFA500")),
			info:    r.NewStyle().Foreground(lipgloss.Color("#00FFFF")),
		},
	}
}

func (f *formatter) SupportsColor() bool {
	return f.terminal.ColorProfile() != terminal.ColorNone
}

func (f *formatter) ColorProfile() terminal.ColorProfile {
	return f.terminal.ColorProfile()
}

// StatusMessage returns "{icon} {text}" where only the icon is colored.
func (f *formatter) StatusMessage(icon string, style *lipgloss.Style, text string) string {
	if !f.SupportsColor() || style == nil {
		return fmt.Sprintf(iconMessageFormat, icon, text)
	}
	return fmt.Sprintf(iconMessageFormat, style.Render(icon), text)
}

func (f *formatter) Warning(text string) string {
	return f.StatusMessage(iconWarning, &f.styles.warning, text)
}

func (f *formatter) Warningf(format string, a ...interface{}) string {
	return f.Warning(fmt.Sprintf(format, a...))
}

func (f *formatter) Info(text string) string {
	return f.StatusMessage(iconInfo, &f.styles.info, text)
}

func (f *formatter) Infof(format string, a ...interface{}) string {
	return f.Info(fmt.Sprintf(format, a...))
}

// terminalWriter adapts io.Context to terminal.IOWriter.
type terminalWriter struct {
	ioCtx io.Context
}

// NewTerminalWriter lets a terminal write through the I/O layer.
func NewTerminalWriter(ioCtx io.Context) terminal.IOWriter {
	return &terminalWriter{ioCtx: ioCtx}
}

func (w *terminalWriter) Write(stream int, content string) error {
	return w.ioCtx.Write(io.Stream(stream), content)
}

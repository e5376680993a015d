package terminal

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/cloudposse/gridtable/pkg/perf"
	"github.com/cloudposse/gridtable/pkg/schema"
)

// IOWriter is the interface for writing to I/O streams.
// This avoids circular dependency with pkg/io.
type IOWriter interface {
	// stream values: 0=Data (stdout), 1=UI (stderr)
	Write(stream int, content string) error
}

// IOStream mirrors io.Stream without importing pkg/io.
type IOStream int

const (
	IOStreamData IOStream = 0
	IOStreamUI   IOStream = 1
)

// Terminal provides terminal capability detection.
type Terminal interface {
	// Write outputs UI content to the terminal.
	Write(content string) error

	// IsTTY returns whether the given stream is a TTY.
	IsTTY(stream Stream) bool

	// ColorProfile returns the color capabilities used for rendering.
	ColorProfile() ColorProfile

	// Width returns the terminal width for the given stream, or 0 if unknown.
	Width(stream Stream) int

	// SupportsUTF8 reports whether box-drawing glyphs can be written.
	SupportsUTF8() bool
}

// Stream represents a terminal stream.
type Stream int

const (
	Stdin Stream = iota
	Stdout
	Stderr
)

// ColorProfile represents terminal color capabilities.
type ColorProfile int

const (
	ColorNone ColorProfile = iota // No color support
	Color16                       // 16 colors (basic ANSI)
	Color256                      // 256 colors
	ColorTrue                     // Truecolor (16 million colors)
)

// String returns the string representation of ColorProfile.
func (c ColorProfile) String() string {
	switch c {
	case ColorNone:
		return "None"
	case Color16:
		return "16"
	case Color256:
		return "256"
	case ColorTrue:
		return "TrueColor"
	default:
		return "Unknown"
	}
}

// TermenvProfile converts the profile for lipgloss/termenv renderers.
func (c ColorProfile) TermenvProfile() termenv.Profile {
	switch c {
	case ColorTrue:
		return termenv.TrueColor
	case Color256:
		return termenv.ANSI256
	case Color16:
		return termenv.ANSI
	default:
		return termenv.Ascii
	}
}

// Config holds terminal configuration from various sources.
type Config struct {
	// From CLI flags
	NoColor bool
	Color   bool

	// From environment variables
	EnvNoColor       bool   // NO_COLOR
	EnvCLIColor      string // CLICOLOR
	EnvCLIColorForce bool   // CLICOLOR_FORCE
	EnvTerm          string // TERM
	EnvColorTerm     string // COLORTERM
	EnvLocale        string // first non-empty of LC_ALL, LC_CTYPE, LANG

	// From gridtable.yaml
	Settings schema.Terminal
}

// terminal implements the Terminal interface.
type terminal struct {
	io           IOWriter
	config       *Config
	colorProfile ColorProfile
	isTTY        func(fd uintptr) bool
}

// Option configures Terminal.
type Option func(*terminal)

// New creates a new Terminal with configuration.
func New(opts ...Option) Terminal {
	defer perf.Track(nil, "terminal.New")()

	t := &terminal{
		config: buildConfig(),
		isTTY:  isTerminal,
	}

	for _, opt := range opts {
		opt(t)
	}

	// Detect color profile once at initialization.
	t.colorProfile = t.config.DetectColorProfile(t.IsTTY(Stdout))

	return t
}

// WithIO sets the I/O writer for output.
// If not set, terminal writes directly to os.Stderr.
func WithIO(io IOWriter) Option {
	return func(t *terminal) {
		t.io = io
	}
}

// WithConfig sets a custom config (for testing).
func WithConfig(cfg *Config) Option {
	return func(t *terminal) {
		t.config = cfg
	}
}

// WithTTYDetector overrides TTY detection (for testing).
func WithTTYDetector(detect func(fd uintptr) bool) Option {
	return func(t *terminal) {
		t.isTTY = detect
	}
}

func (t *terminal) Write(content string) error {
	if t.io != nil {
		return t.io.Write(int(IOStreamUI), content)
	}

	_, err := fmt.Fprint(os.Stderr, content)
	return err
}

func (t *terminal) IsTTY(stream Stream) bool {
	file := streamToFile(stream)
	if file == nil {
		return false
	}
	return t.isTTY(file.Fd())
}

func (t *terminal) ColorProfile() ColorProfile {
	return t.colorProfile
}

func (t *terminal) Width(stream Stream) int {
	file := streamToFile(stream)
	if file == nil {
		return 0
	}

	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}

	return width
}

func (t *terminal) SupportsUTF8() bool {
	return t.config.SupportsUTF8()
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func streamToFile(stream Stream) *os.File {
	switch stream {
	case Stdin:
		return os.Stdin
	case Stdout:
		return os.Stdout
	case Stderr:
		return os.Stderr
	default:
		return nil
	}
}

// buildConfig constructs Config from flags, environment and gridtable.yaml.
func buildConfig() *Config {
	cfg := &Config{
		// From flags (bound via viper in cmd/root.go)
		NoColor: viper.GetBool("no-color"),
		Color:   viper.GetBool("color"),

		EnvNoColor:       os.Getenv("NO_COLOR") != "",
		EnvCLIColor:      os.Getenv("CLICOLOR"),
		EnvCLIColorForce: os.Getenv("CLICOLOR_FORCE") != "",
		EnvTerm:          os.Getenv("TERM"),
		EnvColorTerm:     os.Getenv("COLORTERM"),
		EnvLocale:        firstNonEmpty(os.Getenv("LC_ALL"), os.Getenv("LC_CTYPE"), os.Getenv("LANG")),
		Settings:         schema.Terminal{Color: true},
	}

	if viper.IsSet("settings.terminal") {
		var settings schema.Terminal
		if err := viper.UnmarshalKey("settings.terminal", &settings); err == nil {
			cfg.Settings = settings
		}
	}

	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ShouldUseColor determines if color should be used based on config priority.
// Priority (highest to lowest):
// 1. NO_COLOR env var - disables all color
// 2. CLICOLOR=0 - disables color (unless CLICOLOR_FORCE is set)
// 3. CLICOLOR_FORCE - forces color even for non-TTY
// 4. --no-color flag
// 5. --color flag
// 6. gridtable.yaml settings.terminal.no_color
// 7. gridtable.yaml settings.terminal.color
// 8. Default (true for TTY, false for non-TTY)
func (c *Config) ShouldUseColor(isTTY bool) bool {
	if c.EnvNoColor {
		return false
	}

	if c.EnvCLIColor == "0" && !c.EnvCLIColorForce {
		return false
	}

	if c.EnvCLIColorForce {
		return true
	}

	if c.NoColor {
		return false
	}

	if c.Color {
		return true
	}

	if c.Settings.NoColor {
		return false
	}
	if !c.Settings.Color {
		return false
	}

	return isTTY
}

// DetectColorProfile determines the terminal's color capabilities.
func (c *Config) DetectColorProfile(isTTY bool) ColorProfile {
	if !c.ShouldUseColor(isTTY) {
		return ColorNone
	}

	colorTerm := strings.ToLower(c.EnvColorTerm)
	if colorTerm == "truecolor" || colorTerm == "24bit" {
		return ColorTrue
	}

	termVar := strings.ToLower(c.EnvTerm)
	if strings.Contains(termVar, "256") {
		return Color256
	}

	if strings.Contains(termVar, "color") || termVar == "xterm" || termVar == "screen" {
		return Color16
	}

	// Color was requested or the stream is a TTY: assume basic ANSI.
	return Color16
}

// SupportsUTF8 reports whether the locale accepts UTF-8 output.
// settings.terminal.unicode overrides detection.
func (c *Config) SupportsUTF8() bool {
	if c.Settings.Unicode != nil {
		return *c.Settings.Unicode
	}

	locale := strings.ToLower(c.EnvLocale)
	return strings.Contains(locale, "utf-8") || strings.Contains(locale, "utf8")
}

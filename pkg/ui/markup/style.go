package markup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidStyle is returned when an inline style spec cannot be parsed.
	ErrInvalidStyle = errors.New("invalid markup style")

	// ansiColors maps color names to ANSI palette indexes.
	ansiColors = map[string]string{
		"black":   "0",
		"red":     "1",
		"green":   "2",
		"yellow":  "3",
		"blue":    "4",
		"magenta": "5",
		"cyan":    "6",
		"white":   "7",
	}

	lightColors = map[string]string{
		"black":   "8",
		"red":     "9",
		"green":   "10",
		"yellow":  "11",
		"blue":    "12",
		"magenta": "13",
		"cyan":    "14",
		"white":   "15",
	}

	knownOptions = map[string]bool{
		"bold":       true,
		"dark":       true,
		"italic":     true,
		"underscore": true,
		"blink":      true,
		"reverse":    true,
		"conceal":    true,
	}
)

// Style is a named text decoration. Colors are ANSI names (`red`, `light_red`),
// hex values (`#ff8800`) or `default`.
type Style struct {
	Foreground string   `yaml:"fg,omitempty" json:"fg,omitempty" mapstructure:"fg"`
	Background string   `yaml:"bg,omitempty" json:"bg,omitempty" mapstructure:"bg"`
	Options    []string `yaml:"options,omitempty" json:"options,omitempty" mapstructure:"options"`
}

// ParseStyle parses an inline style such as `fg=red;bg=white;options=bold,underscore`.
func ParseStyle(spec string) (Style, error) {
	var style Style
	if strings.TrimSpace(spec) == "" {
		return style, errors.Wrap(ErrInvalidStyle, "empty style")
	}

	for _, part := range strings.Split(spec, ";") {
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok || value == "" {
			return Style{}, errors.Wrapf(ErrInvalidStyle, "%q", spec)
		}

		switch strings.ToLower(key) {
		case "fg":
			if !validColor(value) {
				return Style{}, errors.Wrapf(ErrInvalidStyle, "unknown color %q", value)
			}
			style.Foreground = value
		case "bg":
			if !validColor(value) {
				return Style{}, errors.Wrapf(ErrInvalidStyle, "unknown color %q", value)
			}
			style.Background = value
		case "options":
			for _, opt := range strings.Split(value, ",") {
				opt = strings.TrimSpace(opt)
				if !knownOptions[opt] {
					return Style{}, errors.Wrapf(ErrInvalidStyle, "unknown option %q", opt)
				}
				style.Options = append(style.Options, opt)
			}
		default:
			return Style{}, errors.Wrapf(ErrInvalidStyle, "unknown key %q", key)
		}
	}

	return style, nil
}

// Tag returns the inline markup opening tag for the style, e.g. `<fg=red;options=bold>`.
func (s Style) Tag() string {
	var parts []string
	if s.Foreground != "" {
		parts = append(parts, "fg="+s.Foreground)
	}
	if s.Background != "" {
		parts = append(parts, "bg="+s.Background)
	}
	if len(s.Options) > 0 {
		parts = append(parts, "options="+strings.Join(s.Options, ","))
	}
	if len(parts) == 0 {
		return ""
	}
	return "<" + strings.Join(parts, ";") + ">"
}

// lipgloss converts the style for the given renderer.
func (s Style) lipgloss(r *lipgloss.Renderer) lipgloss.Style {
	ls := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	if c, ok := toColor(s.Foreground); ok {
		ls = ls.Foreground(c)
	}
	if c, ok := toColor(s.Background); ok {
		ls = ls.Background(c)
	}

	for _, opt := range s.Options {
		switch opt {
		case "bold":
			ls = ls.Bold(true)
		case "dark":
			ls = ls.Faint(true)
		case "italic":
			ls = ls.Italic(true)
		case "underscore":
			ls = ls.Underline(true)
		case "blink":
			ls = ls.Blink(true)
		case "reverse":
			ls = ls.Reverse(true)
		}
	}

	return ls
}

func validColor(name string) bool {
	if name == "default" {
		return true
	}
	_, ok := toColor(name)
	return ok
}

func toColor(name string) (lipgloss.TerminalColor, bool) {
	name = strings.ToLower(name)
	if name == "" || name == "default" {
		return nil, false
	}
	if strings.HasPrefix(name, "#") && (len(name) == 4 || len(name) == 7) {
		return lipgloss.Color(name), true
	}
	if code, ok := ansiColors[name]; ok {
		return lipgloss.Color(code), true
	}
	if base, ok := strings.CutPrefix(name, "light_"); ok {
		if code, ok := lightColors[base]; ok {
			return lipgloss.Color(code), true
		}
	}
	return nil, false
}

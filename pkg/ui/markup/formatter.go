// Package markup implements the inline tag language used in table cells and
// titles: `<info>text</info>`, `<fg=red;options=bold>text</>`, and `\<` to
// write a literal `<`.
package markup

import (
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/cloudposse/gridtable/pkg/perf"
)

const (
	closeTag = "</>"

	// escapedBackslash stands in for a trailing backslash so it cannot escape
	// a tag that follows it. It is restored on output.
	escapedBackslash = "\x00"
)

var tagRegex = regexp.MustCompile(`(?i)<(([a-z][^<>]*)|/([a-z][^<>]*)?)>`)

// DefaultStyles returns the named styles every formatter starts with.
func DefaultStyles() map[string]Style {
	return map[string]Style{
		"error":    {Foreground: "red", Options: []string{"bold"}},
		"warning":  {Foreground: "yellow", Options: []string{"bold"}},
		"info":     {Foreground: "blue"},
		"debug":    {Foreground: "default", Options: []string{"dark"}},
		"comment":  {Foreground: "green"},
		"question": {Foreground: "cyan"},
		"c1":       {Foreground: "cyan"},
		"c2":       {Foreground: "default", Options: []string{"bold"}},
		"b":        {Foreground: "default", Options: []string{"bold"}},
	}
}

// Formatter turns markup into terminal output.
type Formatter struct {
	mu        sync.RWMutex
	styles    map[string]Style
	decorated bool
	renderer  *lipgloss.Renderer
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithDecorated enables or disables ANSI output.
func WithDecorated(decorated bool) Option {
	return func(f *Formatter) {
		f.decorated = decorated
	}
}

// WithProfile sets the color profile used when decorating.
func WithProfile(profile termenv.Profile) Option {
	return func(f *Formatter) {
		f.renderer.SetColorProfile(profile)
	}
}

// New creates a Formatter. Output is undecorated unless WithDecorated(true) is given.
func New(opts ...Option) *Formatter {
	defer perf.Track(nil, "markup.New")()

	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(termenv.ANSI)
	renderer.SetHasDarkBackground(true)

	f := &Formatter{
		styles:   DefaultStyles(),
		renderer: renderer,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// AddStyle registers a named style usable as `<name>...</name>`.
func (f *Formatter) AddStyle(name string, style Style) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.styles[strings.ToLower(name)] = style
}

// Decorated reports whether Format emits ANSI sequences.
func (f *Formatter) Decorated() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.decorated
}

// Format renders markup. Known tags become ANSI styles when decorated and are
// removed otherwise. Unknown tags are kept as literal text.
func (f *Formatter) Format(text string) string {
	defer perf.Track(nil, "markup.Formatter.Format")()

	return f.format(text, f.Decorated())
}

// RemoveFormat returns the visible text: markup removed and ANSI sequences stripped.
func (f *Formatter) RemoveFormat(text string) string {
	return ansi.Strip(f.format(text, false))
}

// EscapeTrailingBackslash protects trailing backslashes so they do not escape
// a closing tag appended after the text.
func (f *Formatter) EscapeTrailingBackslash(text string) string {
	return escapeTrailingBackslash(text)
}

func escapeTrailingBackslash(text string) string {
	if !strings.HasSuffix(text, `\`) {
		return text
	}

	length := len(text)
	text = strings.TrimRight(text, `\`)
	text = strings.ReplaceAll(text, escapedBackslash, "")
	return text + strings.Repeat(escapedBackslash, length-len(text))
}

func (f *Formatter) format(text string, decorated bool) string {
	var (
		out   strings.Builder
		stack []Style
	)

	for _, tok := range f.tokenize(text) {
		switch tok.kind {
		case openToken:
			stack = append(stack, tok.style)
		case closeToken:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			s := unescape(tok.raw)
			if decorated && len(stack) > 0 {
				s = f.apply(stack[len(stack)-1], s)
			}
			out.WriteString(s)
		}
	}

	return out.String()
}

// apply styles each line separately so line breaks stay outside escape sequences.
func (f *Formatter) apply(style Style, text string) string {
	f.mu.RLock()
	ls := style.lipgloss(f.renderer)
	f.mu.RUnlock()

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = ls.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

type tokenKind int

const (
	textToken tokenKind = iota
	openToken
	closeToken
)

type token struct {
	kind  tokenKind
	raw   string
	style Style
}

func (f *Formatter) tokenize(text string) []token {
	var (
		tokens []token
		offset int
	)

	for _, m := range tagRegex.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		if start > 0 && text[start-1] == '\\' {
			continue
		}
		if start > offset {
			tokens = append(tokens, token{kind: textToken, raw: text[offset:start]})
		}
		offset = end

		raw := text[start:end]
		closing := raw[1] == '/'

		var name string
		switch {
		case closing && m[6] >= 0:
			name = text[m[6]:m[7]]
		case !closing:
			name = text[m[4]:m[5]]
		}

		if closing && name == "" {
			tokens = append(tokens, token{kind: closeToken, raw: raw})
			continue
		}

		style, ok := f.lookup(name)
		switch {
		case !ok:
			tokens = append(tokens, token{kind: textToken, raw: raw})
		case closing:
			tokens = append(tokens, token{kind: closeToken, raw: raw})
		default:
			tokens = append(tokens, token{kind: openToken, raw: raw, style: style})
		}
	}

	if offset < len(text) {
		tokens = append(tokens, token{kind: textToken, raw: text[offset:]})
	}

	return tokens
}

func (f *Formatter) lookup(name string) (Style, bool) {
	f.mu.RLock()
	style, ok := f.styles[strings.ToLower(name)]
	f.mu.RUnlock()
	if ok {
		return style, true
	}

	if !strings.Contains(name, "=") {
		return Style{}, false
	}
	style, err := ParseStyle(name)
	return style, err == nil
}

func unescape(text string) string {
	text = strings.ReplaceAll(text, `\<`, "<")
	return strings.ReplaceAll(text, escapedBackslash, `\`)
}

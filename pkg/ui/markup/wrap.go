package markup

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/cloudposse/gridtable/pkg/perf"
)

// FormatAndWrap hard-wraps markup so no line is wider than width display
// columns. Open tags are closed at each line break and reopened on the next
// line, so every line can be formatted on its own. Spaces at the start of a
// wrapped line are dropped. A width <= 0 returns text unchanged.
func (f *Formatter) FormatAndWrap(text string, width int) string {
	defer perf.Track(nil, "markup.Formatter.FormatAndWrap")()

	if width <= 0 {
		return text
	}

	w := &wrapper{width: width}
	for _, tok := range f.tokenize(text) {
		switch tok.kind {
		case openToken:
			w.line.WriteString(tok.raw)
			w.open = append(w.open, tok.raw)
		case closeToken:
			w.line.WriteString(tok.raw)
			if len(w.open) > 0 {
				w.open = w.open[:len(w.open)-1]
			}
		default:
			w.writeText(tok.raw)
		}
	}

	w.out.WriteString(w.line.String())
	return w.out.String()
}

type wrapper struct {
	width     int
	out       strings.Builder
	line      strings.Builder
	lineWidth int
	open      []string
	wrapped   bool
}

func (w *wrapper) writeText(raw string) {
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\n' {
			w.breakLine()
			w.wrapped = false
			continue
		}

		chunk := string(r)
		if r == '\\' && i+1 < len(runes) && runes[i+1] == '<' {
			chunk = `\<`
			r = '<'
			i++
		}

		rw := runewidth.RuneWidth(r)
		if w.lineWidth > 0 && w.lineWidth+rw > w.width {
			w.breakLine()
			w.wrapped = true
		}
		if w.wrapped && r == ' ' {
			continue
		}

		w.wrapped = false
		w.line.WriteString(chunk)
		w.lineWidth += rw
	}
}

func (w *wrapper) breakLine() {
	content := w.line.String()
	if len(w.open) > 0 {
		content = escapeTrailingBackslash(content) + strings.Repeat(closeTag, len(w.open))
	}

	w.out.WriteString(content)
	w.out.WriteString("\n")

	w.line.Reset()
	w.lineWidth = 0
	for _, tag := range w.open {
		w.line.WriteString(tag)
	}
}

package table

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Entry is one position in a Row: Text, Cell or Separator.
type Entry interface {
	isEntry()
}

// Text is a plain cell.
type Text string

// Cell is a cell that may span several columns or rows, or carry its own style.
type Cell struct {
	Text    string
	Colspan int
	Rowspan int
	Style   *CellStyle
}

// Separator draws a horizontal rule across its column instead of content.
type Separator struct{}

func (Text) isEntry()      {}
func (Cell) isEntry()      {}
func (Separator) isEntry() {}

// Row is an ordered list of entries.
type Row []Entry

// CellOption configures a Cell.
type CellOption func(*Cell)

// WithColspan sets how many columns the cell covers.
func WithColspan(n int) CellOption {
	return func(c *Cell) {
		c.Colspan = n
	}
}

// WithRowspan sets how many rows the cell covers.
func WithRowspan(n int) CellOption {
	return func(c *Cell) {
		c.Rowspan = n
	}
}

// WithCellStyle overrides alignment and format for this cell only.
func WithCellStyle(style *CellStyle) CellOption {
	return func(c *Cell) {
		c.Style = style
	}
}

// NewCell creates a Cell. Spans below 1 are raised to 1.
func NewCell(text string, opts ...CellOption) Cell {
	c := Cell{Text: text, Colspan: 1, Rowspan: 1}
	for _, opt := range opts {
		opt(&c)
	}
	c.Colspan = max(c.Colspan, 1)
	c.Rowspan = max(c.Rowspan, 1)
	return c
}

// Strings converts plain values into a Row of Text entries.
func Strings(values ...string) Row {
	row := make(Row, len(values))
	for i, v := range values {
		row[i] = Text(v)
	}
	return row
}

// Align selects how a styled cell is padded.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// ErrInvalidAlign is returned by ParseAlign for unknown values.
var ErrInvalidAlign = errors.New("invalid cell alignment")

// ParseAlign parses `left`, `right` or `center`.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center":
		return AlignCenter, nil
	default:
		return AlignLeft, errors.Wrapf(ErrInvalidAlign, "%q", s)
	}
}

func (a Align) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "left"
	}
}

// padType maps the alignment to the padding function that produces it.
func (a Align) padType() PadType {
	switch a {
	case AlignRight:
		return PadLeft
	case AlignCenter:
		return PadBoth
	default:
		return PadRight
	}
}

// CellStyle overrides the column style for one cell.
type CellStyle struct {
	Foreground string
	Background string
	Options    []string
	Align      Align
	// CellFormat replaces the row format, e.g. `<comment>{}</>`. When empty the
	// format is built from the colors and options.
	CellFormat string
}

// Tag returns the inline markup spec, e.g. `fg=red;bg=default;options=bold`.
func (s *CellStyle) Tag() string {
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
	return strings.Join(parts, ";")
}

// Pad aligns text within width according to Align.
func (s *CellStyle) Pad(text string, width int, padChar string) string {
	return s.Align.padType().Pad(text, width, padChar)
}

// format returns the format template for the cell, or fallback when the style
// neither sets a format nor any decoration.
func (s *CellStyle) format(fallback string) string {
	if s.CellFormat != "" {
		return s.CellFormat
	}
	if tag := s.Tag(); tag != "" {
		return "<" + tag + ">{}</>"
	}
	return fallback
}

func textOf(e Entry) string {
	switch v := e.(type) {
	case Text:
		return string(v)
	case Cell:
		return v.Text
	default:
		return ""
	}
}

func colspanOf(e Entry) int {
	if c, ok := e.(Cell); ok && c.Colspan > 1 {
		return c.Colspan
	}
	return 1
}

// withText returns an entry of the same kind carrying text. Cells keep their
// colspan and style but no longer span rows.
func withText(e Entry, text string) Entry {
	if c, ok := e.(Cell); ok {
		return Cell{Text: text, Colspan: max(c.Colspan, 1), Rowspan: 1, Style: c.Style}
	}
	return Text(text)
}

// columnCount is the number of columns a row covers, spans included.
func columnCount(cells []Entry) int {
	n := len(cells)
	for _, e := range cells {
		n += colspanOf(e) - 1
	}
	return n
}

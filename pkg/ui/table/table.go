// Package table lays out and draws bordered text tables.
//
// A Table collects header rows, body rows and per-column overrides, then
// Render normalizes the rows (spans, line breaks, wrapping), resolves column
// widths and writes the bordered lines to an Output.
package table

import (
	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/gridtable/errors"
	log "github.com/cloudposse/gridtable/pkg/logger"
	"github.com/cloudposse/gridtable/pkg/perf"
)

// Formatter wraps and escapes markup.
type Formatter interface {
	// FormatAndWrap hard-wraps text at width visible columns.
	FormatAndWrap(text string, width int) string
	// EscapeTrailingBackslash keeps a trailing backslash from escaping a following tag.
	EscapeTrailingBackslash(text string) string
}

// Output receives the rendered lines.
type Output interface {
	WriteLine(line string) error
	// RemoveFormat returns the visible text of markup.
	RemoveFormat(text string) string
	Formatter() Formatter
}

type rowKind int

const (
	contentRow rowKind = iota
	separatorRow
	// dividerRow marks the end of the header block.
	dividerRow
)

type row struct {
	kind  rowKind
	cells []Entry
}

// Table is a configurable table bound to an Output.
type Table struct {
	out   Output
	style *Style

	columnStyles    map[int]*Style
	columnWidths    map[int]int
	columnMaxWidths map[int]int

	headers []Row
	rows    []row

	headerTitle string
	footerTitle string
	horizontal  bool

	err error
}

// New creates a table drawn with the named style. An empty name selects `default`.
func New(out Output, styleName string) (*Table, error) {
	defer perf.Track(nil, "table.New")()

	if styleName == "" {
		styleName = StyleDefault
	}

	style, err := GetStyle(styleName)
	if err != nil {
		return nil, err
	}

	return &Table{
		out:             out,
		style:           style,
		columnStyles:    map[int]*Style{},
		columnWidths:    map[int]int{},
		columnMaxWidths: map[int]int{},
	}, nil
}

// Err returns the first configuration error recorded by a builder method.
func (t *Table) Err() error {
	return t.err
}

func (t *Table) record(err error) {
	if t.err == nil {
		t.err = err
	}
}

// Style returns the table style.
func (t *Table) Style() *Style {
	return t.style
}

// SetStyle switches to a copy of the named style.
func (t *Table) SetStyle(name string) *Table {
	style, err := GetStyle(name)
	if err != nil {
		t.record(err)
		return t
	}
	t.style = style
	return t
}

// SetCustomStyle uses style as is. The caller keeps ownership.
func (t *Table) SetCustomStyle(style *Style) *Table {
	if style != nil {
		t.style = style
	}
	return t
}

// ColumnStyle returns the style of a column, falling back to the table style.
func (t *Table) ColumnStyle(column int) *Style {
	if style, ok := t.columnStyles[column]; ok {
		return style
	}
	return t.style
}

// SetColumnStyle draws a column with a copy of the named style.
func (t *Table) SetColumnStyle(column int, name string) *Table {
	style, err := GetStyle(name)
	if err != nil {
		t.record(err)
		return t
	}
	t.columnStyles[column] = style
	return t
}

// SetColumnCustomStyle draws a column with style as is.
func (t *Table) SetColumnCustomStyle(column int, style *Style) *Table {
	if style != nil {
		t.columnStyles[column] = style
	}
	return t
}

// SetColumnWidth sets the minimum content width of a column.
func (t *Table) SetColumnWidth(column, width int) *Table {
	t.columnWidths[column] = width
	return t
}

// SetColumnWidths sets minimum widths for columns 0..len(widths)-1, replacing previous ones.
func (t *Table) SetColumnWidths(widths []int) *Table {
	t.columnWidths = make(map[int]int, len(widths))
	for column, width := range widths {
		t.columnWidths[column] = width
	}
	return t
}

// SetColumnMaxWidth caps the content width of a column. Longer content is wrapped.
// A width of 0 or less removes the cap.
func (t *Table) SetColumnMaxWidth(column, width int) *Table {
	if width <= 0 {
		delete(t.columnMaxWidths, column)
		return t
	}
	t.columnMaxWidths[column] = width
	return t
}

// SetHeaders replaces the header rows with a single row.
func (t *Table) SetHeaders(headers Row) *Table {
	t.headers = []Row{headers}
	return t
}

// SetHeaderRows replaces the header rows.
func (t *Table) SetHeaderRows(headers ...Row) *Table {
	t.headers = append([]Row(nil), headers...)
	return t
}

// SetRows replaces the body rows.
func (t *Table) SetRows(rows ...Row) *Table {
	t.rows = nil
	return t.AddRows(rows...)
}

// AddRows appends body rows.
func (t *Table) AddRows(rows ...Row) *Table {
	for _, r := range rows {
		t.AddRow(r)
	}
	return t
}

// AddRow appends a body row.
func (t *Table) AddRow(r Row) *Table {
	t.rows = append(t.rows, row{kind: contentRow, cells: copyEntries(r)})
	return t
}

// AddSeparator appends a horizontal rule between body rows.
func (t *Table) AddSeparator() *Table {
	t.rows = append(t.rows, row{kind: separatorRow})
	return t
}

// SetHeaderTitle sets the title centered in the top border.
func (t *Table) SetHeaderTitle(title string) *Table {
	t.headerTitle = title
	return t
}

// SetFooterTitle sets the title centered in the bottom border.
func (t *Table) SetFooterTitle(title string) *Table {
	t.footerTitle = title
	return t
}

// SetHorizontal transposes the table: headers become the first column.
func (t *Table) SetHorizontal(horizontal bool) *Table {
	t.horizontal = horizontal
	return t
}

// Lines lays out the table and returns its lines, still carrying markup.
func (t *Table) Lines() ([]string, error) {
	defer perf.Track(nil, "table.Table.Lines")()

	if t.err != nil {
		return nil, t.err
	}

	rows := t.assembleRows()
	rc := newRenderContext(t, rows)

	log.Debug("Rendering table", "columns", rc.numberOfColumns, "rows", len(rows), "horizontal", t.horizontal)

	rows = rc.normalize(rows)
	rc.resolveWidths(rows)
	return rc.draw(rows), nil
}

// Render writes the table to the Output. Nothing is written when the table is misconfigured.
func (t *Table) Render() error {
	defer perf.Track(nil, "table.Table.Render")()

	lines, err := t.Lines()
	if err != nil {
		return err
	}

	for _, line := range lines {
		if err := t.out.WriteLine(line); err != nil {
			return errors.Mark(errors.Wrap(err, "write table line"), errUtils.ErrTableRenderFailed)
		}
	}
	return nil
}

// assembleRows builds the raw row list for one render from copies of the configured rows.
func (t *Table) assembleRows() []row {
	if !t.horizontal {
		rows := make([]row, 0, len(t.headers)+1+len(t.rows))
		for _, h := range t.headers {
			rows = append(rows, row{kind: contentRow, cells: copyEntries(h)})
		}
		rows = append(rows, row{kind: dividerRow})
		for _, r := range t.rows {
			rows = append(rows, row{kind: r.kind, cells: copyEntries(r.cells)})
		}
		return rows
	}

	var headers Row
	if len(t.headers) > 0 {
		headers = t.headers[0]
	}

	rows := make([]row, 0, len(headers))
	for i, header := range headers {
		cells := []Entry{header}
		for _, r := range t.rows {
			if r.kind != contentRow {
				continue
			}
			switch {
			case i < len(r.cells):
				cells = append(cells, r.cells[i])
			case colspanOf(header) >= 2:
				// A spanning first cell is a title row: nothing to append.
			default:
				cells = append(cells, Text(""))
			}
		}
		rows = append(rows, row{kind: contentRow, cells: cells})
	}
	return rows
}

func copyEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	return append([]Entry(nil), entries...)
}

func insertEntry(entries []Entry, index int, e Entry) []Entry {
	if index >= len(entries) {
		return append(entries, e)
	}
	entries = append(entries, nil)
	copy(entries[index+1:], entries[index:])
	entries[index] = e
	return entries
}

func insertRow(rows []row, index int, r row) []row {
	if index >= len(rows) {
		return append(rows, r)
	}
	rows = append(rows, row{})
	copy(rows[index+1:], rows[index:])
	rows[index] = r
	return rows
}

package table

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
)

// renderContext holds the state of one render pass.
type renderContext struct {
	table           *Table
	numberOfColumns int
	// widths are the effective column widths, padding overhead included.
	widths map[int]int
}

func newRenderContext(t *Table, rows []row) *renderContext {
	rc := &renderContext{
		table:  t,
		widths: map[int]int{},
	}
	for _, r := range rows {
		if r.kind == contentRow {
			rc.numberOfColumns = max(rc.numberOfColumns, columnCount(r.cells))
		}
	}
	return rc
}

// visibleWidth is the display width of text with markup removed.
func (rc *renderContext) visibleWidth(text string) int {
	return runewidth.StringWidth(rc.table.out.RemoveFormat(text))
}

// normalize expands rowspans, wraps cells wider than their column max width,
// splits multi-line cells into sibling rows and pads spanning cells with
// fillers. Every content row of the result covers numberOfColumns columns.
func (rc *renderContext) normalize(rows []row) []row {
	formatter := rc.table.out.Formatter()

	// siblings[k][i] holds line i+1 of the multi-line cells of rows[k].
	siblings := map[int][][]Entry{}

	for key := 0; key < len(rows); key++ {
		rows = rc.fillNextRows(rows, key)
		if rows[key].kind != contentRow {
			continue
		}

		cells := rows[key].cells
		for column, cell := range cells {
			if _, ok := cell.(Separator); ok {
				continue
			}

			text := textOf(cell)
			if maxWidth, ok := rc.table.columnMaxWidths[column]; ok && maxWidth < rc.visibleWidth(text) {
				text = formatter.FormatAndWrap(text, maxWidth*colspanOf(cell))
			}
			if !strings.Contains(text, "\n") {
				continue
			}

			for line, fragment := range strings.Split(text, "\n") {
				entry := withText(cell, formatter.EscapeTrailingBackslash(fragment))
				if line == 0 {
					cells[column] = entry
					continue
				}
				for len(siblings[key]) < line {
					siblings[key] = append(siblings[key], blankCopy(cells))
				}
				siblings[key][line-1][column] = entry
			}
		}
	}

	normalized := make([]row, 0, len(rows))
	for key, r := range rows {
		normalized = append(normalized, rc.fillCells(r))
		for _, sibling := range siblings[key] {
			normalized = append(normalized, rc.fillCells(row{kind: contentRow, cells: sibling}))
		}
	}
	return normalized
}

// fillNextRows moves the continuation of every rowspan cell in rows[line]
// into the rows beneath it, inserting rows when they have no room left.
func (rc *renderContext) fillNextRows(rows []row, line int) []row {
	if rows[line].kind != contentRow {
		return rows
	}

	// pending[k][column] is the cell synthesized for rows[k].
	pending := map[int]map[int]Entry{}

	for column, entry := range rows[line].cells {
		cell, ok := entry.(Cell)
		if !ok || cell.Rowspan <= 1 {
			continue
		}

		extra := cell.Rowspan - 1
		lines := []string{cell.Text}
		if strings.Contains(cell.Text, "\n") {
			lines = strings.Split(cell.Text, "\n")
			// More lines than rows extends the span.
			extra = max(extra, len(lines)-1)
			rows[line].cells[column] = withText(cell, lines[0])
		}

		for k := line + 1; k <= line+extra; k++ {
			value := ""
			if k-line < len(lines) {
				value = lines[k-line]
			}
			if pending[k] == nil {
				pending[k] = map[int]Entry{}
			}
			pending[k][column] = withText(cell, value)
		}
	}

	keys := lo.Keys(pending)
	sort.Ints(keys)

	for _, key := range keys {
		columns := lo.Keys(pending[key])
		sort.Ints(columns)
		synthesized := lo.Map(columns, func(column int, _ int) Entry {
			return pending[key][column]
		})

		if key < len(rows) && rows[key].kind == contentRow &&
			columnCount(rows[key].cells)+columnCount(synthesized) <= rc.numberOfColumns {
			for _, column := range columns {
				rows[key].cells = insertEntry(rows[key].cells, column, pending[key][column])
			}
			continue
		}

		inserted := blankCopy(rows[key-1].cells)
		for _, column := range columns {
			cell := pending[key][column]
			if textOf(cell) == "" {
				continue
			}
			for len(inserted) <= column {
				inserted = append(inserted, Text(""))
			}
			inserted[column] = cell
		}
		rows = insertRow(rows, key, row{kind: contentRow, cells: inserted})
	}

	return rows
}

// blankCopy returns a row shaped like cells with every text emptied.
func blankCopy(cells []Entry) []Entry {
	return lo.Map(cells, func(e Entry, _ int) Entry {
		if c, ok := e.(Cell); ok {
			return Cell{Colspan: max(c.Colspan, 1), Rowspan: 1}
		}
		return Text("")
	})
}

// fillCells appends an empty filler after a spanning cell for every extra
// column it covers, then pads short rows up to numberOfColumns.
func (rc *renderContext) fillCells(r row) row {
	if r.kind != contentRow || len(r.cells) == 0 {
		return r
	}

	filled := make([]Entry, 0, max(columnCount(r.cells), rc.numberOfColumns))
	for _, e := range r.cells {
		filled = append(filled, e)
		for i := 1; i < colspanOf(e); i++ {
			filled = append(filled, Text(""))
		}
	}
	for len(filled) < rc.numberOfColumns {
		filled = append(filled, Text(""))
	}
	return row{kind: r.kind, cells: filled}
}

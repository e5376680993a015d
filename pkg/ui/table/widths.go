package table

import (
	"github.com/mattn/go-runewidth"
)

// resolveWidths computes the effective width of every column from the normalized rows.
func (rc *renderContext) resolveWidths(rows []row) {
	measured := make([]int, rc.numberOfColumns)

	for _, r := range rows {
		if r.kind != contentRow {
			continue
		}
		for column, text := range rc.visibleTexts(r.cells) {
			if column >= rc.numberOfColumns {
				break
			}
			measured[column] = max(measured[column], runewidth.StringWidth(text))
		}
	}

	overhead := rc.table.style.contentOverhead()
	for column := 0; column < rc.numberOfColumns; column++ {
		width := measured[column]
		if floor, ok := rc.table.columnWidths[column]; ok {
			width = max(width, floor)
		}
		if ceiling, ok := rc.table.columnMaxWidths[column]; ok {
			width = min(ceiling, width)
		}
		rc.widths[column] = width + overhead
	}
}

// visibleTexts returns the visible text at each column of a row. The text of
// a spanning cell is split into equal rune chunks spread over the columns it
// covers.
func (rc *renderContext) visibleTexts(cells []Entry) []string {
	texts := make([]string, len(cells))
	for i, e := range cells {
		texts[i] = rc.table.out.RemoveFormat(textOf(e))
	}

	for i, e := range cells {
		span := colspanOf(e)
		if span < 2 || texts[i] == "" {
			continue
		}

		runes := []rune(texts[i])
		size := (len(runes) + span - 1) / span
		for position, start := 0, 0; start < len(runes); position, start = position+1, start+size {
			chunk := string(runes[start:min(start+size, len(runes))])
			if i+position < len(texts) {
				texts[i+position] = chunk
			} else {
				texts = append(texts, chunk)
			}
		}
	}

	return texts
}

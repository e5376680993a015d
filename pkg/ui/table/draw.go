package table

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

type separatorKind int

const (
	separatorTop separatorKind = iota
	separatorTopBottom
	separatorMid
	separatorBottom
)

// styledByTag matches text that is wrapped in a single markup tag as a whole.
var styledByTag = regexp.MustCompile(`^<(\w+|(\w+=[\w,]+;?)*)>.+</(\w+|(\w+=\w+;?)*)?>$`)

// draw turns normalized rows into border and content lines.
func (rc *renderContext) draw(rows []row) []string {
	t := rc.table
	style := t.style

	var (
		lines      []string
		isHeader   = !t.horizontal
		isFirstRow = t.horizontal
		topDrawn   bool
	)

	for _, r := range rows {
		switch r.kind {
		case dividerRow:
			isHeader = false
			isFirstRow = true
			continue
		case separatorRow:
			lines = rc.appendSeparator(lines, separatorMid, "", "")
			continue
		}

		if len(r.cells) == 0 {
			continue
		}

		switch {
		case !topDrawn:
			lines = rc.appendSeparator(lines, separatorTop, t.headerTitle, style.headerTitleFormat)
			topDrawn = true
			isFirstRow = false
		case isFirstRow:
			lines = rc.appendSeparator(lines, separatorTopBottom, "", "")
			isFirstRow = false
		}

		switch {
		case t.horizontal:
			lines = append(lines, rc.drawRow(r.cells, style.cellRowFormat, style.cellHeaderFormat))
		case isHeader:
			lines = append(lines, rc.drawRow(r.cells, style.cellHeaderFormat, ""))
		default:
			lines = append(lines, rc.drawRow(r.cells, style.cellRowFormat, ""))
		}
	}

	return rc.appendSeparator(lines, separatorBottom, t.footerTitle, style.footerTitleFormat)
}

// appendSeparator draws a horizontal rule, optionally with a centered title.
func (rc *renderContext) appendSeparator(lines []string, kind separatorKind, title, titleFormat string) []string {
	style := rc.table.style
	if !style.drawsRules() {
		return lines
	}

	c := style.crossings
	var horizontal, left, mid, right string
	switch kind {
	case separatorMid:
		horizontal, left, mid, right = style.horizontalInside, c[crossingMidLeft], c[crossingCross], c[crossingMidRight]
	case separatorTop:
		horizontal, left, mid, right = style.horizontalOutside, c[crossingTopLeft], c[crossingTopMid], c[crossingTopRight]
	case separatorTopBottom:
		horizontal, left, mid, right = style.horizontalOutside, c[crossingTopLeftBottom], c[crossingTopMidBottom], c[crossingTopRightBottom]
	default:
		horizontal, left, mid, right = style.horizontalOutside, c[crossingBottomLeft], c[crossingBottomMid], c[crossingBottomRight]
	}

	var markup strings.Builder
	markup.WriteString(left)
	for column := 0; column < rc.numberOfColumns; column++ {
		markup.WriteString(strings.Repeat(horizontal, rc.widths[column]))
		if column < rc.numberOfColumns-1 {
			markup.WriteString(mid)
		}
	}
	markup.WriteString(right)

	line := markup.String()
	if title != "" {
		line = rc.insertTitle(line, title, titleFormat)
	}

	return append(lines, applyFormat(style.borderFormat, line))
}

// insertTitle centers the formatted title over the rule, truncating it with
// "..." when it is wider than the rule minus 4.
func (rc *renderContext) insertTitle(rule, title, titleFormat string) string {
	ruleRunes := []rune(rule)
	ruleWidth := len(ruleRunes)
	limit := ruleWidth - 4

	formatted := applyFormat(titleFormat, title)
	titleWidth := rc.visibleWidth(formatted)

	if titleWidth > limit {
		available := limit - rc.visibleWidth(applyFormat(titleFormat, ""))
		if available < runewidth.StringWidth("...") {
			return rule
		}
		plain := rc.table.out.RemoveFormat(title)
		formatted = applyFormat(titleFormat, runewidth.Truncate(plain, available, "..."))
		titleWidth = rc.visibleWidth(formatted)
	}

	start := (ruleWidth - titleWidth) / 2
	return string(ruleRunes[:start]) + formatted + string(ruleRunes[start+titleWidth:])
}

// drawRow draws one content line. firstCellFormat, when set, is used for the first cell.
func (rc *renderContext) drawRow(cells []Entry, cellFormat, firstCellFormat string) string {
	style := rc.table.style
	columns := rc.rowColumns(cells)

	var b strings.Builder
	b.WriteString(applyFormat(style.borderFormat, style.verticalOutside))
	for i, column := range columns {
		format := cellFormat
		if i == 0 && firstCellFormat != "" {
			format = firstCellFormat
		}
		b.WriteString(rc.drawCell(cells, column, format))

		border := style.verticalInside
		if i == len(columns)-1 {
			border = style.verticalOutside
		}
		b.WriteString(applyFormat(style.borderFormat, border))
	}
	return b.String()
}

// rowColumns lists the columns that start a cell: columns covered by a span are skipped.
func (rc *renderContext) rowColumns(cells []Entry) []int {
	covered := map[int]bool{}
	for key, e := range cells {
		for column := key + 1; column < key+colspanOf(e); column++ {
			covered[column] = true
		}
	}

	columns := make([]int, 0, rc.numberOfColumns)
	for column := 0; column < rc.numberOfColumns; column++ {
		if !covered[column] {
			columns = append(columns, column)
		}
	}
	return columns
}

func (rc *renderContext) separatorWidth() int {
	style := rc.table.style
	return rc.visibleWidth(applyFormat(style.borderFormat, style.verticalInside))
}

// drawCell pads one cell to the width of the columns it covers.
func (rc *renderContext) drawCell(cells []Entry, column int, cellFormat string) string {
	var cell Entry = Text("")
	if column < len(cells) {
		cell = cells[column]
	}

	width := rc.widths[column]
	for next := column + 1; next < column+colspanOf(cell); next++ {
		width += rc.separatorWidth() + rc.widths[next]
	}

	style := rc.table.ColumnStyle(column)
	if _, ok := cell.(Separator); ok {
		return applyFormat(style.borderFormat, strings.Repeat(style.horizontalInside, width))
	}

	text := textOf(cell)
	// Markup takes no room on screen but counts when padding the raw text.
	width += runewidth.StringWidth(text) - rc.visibleWidth(text)
	content := applyFormat(style.cellRowContentFormat, text)

	pad := style.padType.Pad
	if c, ok := cell.(Cell); ok && c.Style != nil {
		if !styledByTag.MatchString(text) {
			cellFormat = c.Style.format(cellFormat)
			if n := strings.Count(content, closeTag); n > 0 {
				content = strings.ReplaceAll(content, closeTag, "")
				width -= n * len(closeTag)
			}
		}
		pad = c.Style.Pad
	}

	return applyFormat(cellFormat, pad(content, width, style.paddingChar))
}

const closeTag = "</>"

package table

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-runewidth"

	errUtils "github.com/cloudposse/gridtable/errors"
)

// PadType selects how cell content is padded to the column width.
type PadType int

const (
	// PadRight pads on the right: content is left aligned.
	PadRight PadType = iota
	// PadLeft pads on the left: content is right aligned.
	PadLeft
	// PadBoth centers the content.
	PadBoth
)

// ParsePadType parses `right` (default), `left`, or `both`/`center`.
func ParsePadType(s string) (PadType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "right":
		return PadRight, nil
	case "left":
		return PadLeft, nil
	case "both", "center":
		return PadBoth, nil
	default:
		return PadRight, errors.Wrapf(errUtils.ErrInvalidStyleDefinition, "pad type %q", s)
	}
}

// Pad pads text to width display columns with padChar.
func (p PadType) Pad(text string, width int, padChar string) string {
	missing := width - runewidth.StringWidth(text)
	if missing <= 0 {
		return text
	}

	switch p {
	case PadLeft:
		return strings.Repeat(padChar, missing) + text
	case PadBoth:
		left := missing / 2
		return strings.Repeat(padChar, left) + text + strings.Repeat(padChar, missing-left)
	default:
		return text + strings.Repeat(padChar, missing)
	}
}

// Crossing glyph positions.
const (
	crossingCross = iota
	crossingTopLeft
	crossingTopMid
	crossingTopRight
	crossingMidRight
	crossingBottomRight
	crossingBottomMid
	crossingBottomLeft
	crossingMidLeft
	crossingTopLeftBottom
	crossingTopMidBottom
	crossingTopRightBottom

	crossingCount
)

// Style defines the glyphs and templates used to draw a table.
//
// Templates use `{}` as the placeholder for the content they wrap.
type Style struct {
	horizontalOutside string
	horizontalInside  string
	verticalOutside   string
	verticalInside    string
	crossings         [crossingCount]string

	headerTitleFormat    string
	footerTitleFormat    string
	cellHeaderFormat     string
	cellRowFormat        string
	cellRowContentFormat string
	borderFormat         string

	paddingChar string
	padType     PadType
}

// NewStyle returns the plain ASCII style.
func NewStyle() *Style {
	s := &Style{
		headerTitleFormat:    "<fg=black;bg=white;options=bold> {} </>",
		footerTitleFormat:    "<fg=black;bg=white;options=bold> {} </>",
		cellHeaderFormat:     "<info>{}</info>",
		cellRowFormat:        "{}",
		cellRowContentFormat: " {} ",
		borderFormat:         "{}",
		paddingChar:          " ",
		padType:              PadRight,
	}
	s.SetHorizontalBorderChars("-")
	s.SetVerticalBorderChars("|")
	s.SetDefaultCrossingChar("+")
	return s
}

// Clone returns an independent copy of the style.
func (s *Style) Clone() *Style {
	c := *s
	return &c
}

// SetHorizontalBorderChars sets the outside and, optionally, the inside horizontal glyph.
// The inside glyph defaults to the outside one.
func (s *Style) SetHorizontalBorderChars(outside string, inside ...string) *Style {
	s.horizontalOutside = outside
	s.horizontalInside = outside
	if len(inside) > 0 {
		s.horizontalInside = inside[0]
	}
	return s
}

// SetVerticalBorderChars sets the outside and, optionally, the inside vertical glyph.
func (s *Style) SetVerticalBorderChars(outside string, inside ...string) *Style {
	s.verticalOutside = outside
	s.verticalInside = outside
	if len(inside) > 0 {
		s.verticalInside = inside[0]
	}
	return s
}

// BorderChars returns the horizontal outside, vertical outside, horizontal
// inside and vertical inside glyphs.
func (s *Style) BorderChars() [4]string {
	return [4]string{s.horizontalOutside, s.verticalOutside, s.horizontalInside, s.verticalInside}
}

// SetCrossingChars sets the crossing glyphs in this order:
//
//	1═══════════2═══════════3
//	│ ISBN      │ Title     │
//	9═══════════0═══════════4    (10, 11, 12 for the header/body rule)
//	│ 9971-5-02 │ Tale of T │
//	8───────────0───────────4
//	7═══════════6═══════════5
//
// cross, top-left, top-mid, top-right, mid-right, bottom-right, bottom-mid,
// bottom-left, mid-left, then optionally top-left-bottom, top-mid-bottom and
// top-right-bottom (defaulting to mid-left, cross and mid-right).
func (s *Style) SetCrossingChars(chars ...string) error {
	if len(chars) != crossingCount-3 && len(chars) != crossingCount {
		return errUtils.Build(errors.Wrapf(errUtils.ErrInvalidCrossingChars, "got %d", len(chars))).
			WithHintf("Provide %d crossing chars, or %d to set the header/body rule separately", crossingCount-3, crossingCount).
			Err()
	}

	copy(s.crossings[:], chars)
	if len(chars) == crossingCount-3 {
		s.crossings[crossingTopLeftBottom] = s.crossings[crossingMidLeft]
		s.crossings[crossingTopMidBottom] = s.crossings[crossingCross]
		s.crossings[crossingTopRightBottom] = s.crossings[crossingMidRight]
	}
	return nil
}

// SetDefaultCrossingChar uses one glyph for every crossing.
func (s *Style) SetDefaultCrossingChar(char string) *Style {
	for i := range s.crossings {
		s.crossings[i] = char
	}
	return s
}

// CrossingChars returns the 12 crossing glyphs.
func (s *Style) CrossingChars() [12]string {
	return s.crossings
}

// SetPaddingChar sets the character used to pad cells.
func (s *Style) SetPaddingChar(char string) error {
	if char == "" {
		return errUtils.ErrEmptyPaddingChar
	}
	s.paddingChar = char
	return nil
}

func (s *Style) PaddingChar() string {
	return s.paddingChar
}

func (s *Style) SetPadType(padType PadType) *Style {
	s.padType = padType
	return s
}

func (s *Style) PadType() PadType {
	return s.padType
}

func (s *Style) SetHeaderTitleFormat(format string) *Style {
	s.headerTitleFormat = format
	return s
}

func (s *Style) HeaderTitleFormat() string {
	return s.headerTitleFormat
}

func (s *Style) SetFooterTitleFormat(format string) *Style {
	s.footerTitleFormat = format
	return s
}

func (s *Style) FooterTitleFormat() string {
	return s.footerTitleFormat
}

func (s *Style) SetCellHeaderFormat(format string) *Style {
	s.cellHeaderFormat = format
	return s
}

func (s *Style) CellHeaderFormat() string {
	return s.cellHeaderFormat
}

func (s *Style) SetCellRowFormat(format string) *Style {
	s.cellRowFormat = format
	return s
}

func (s *Style) CellRowFormat() string {
	return s.cellRowFormat
}

// SetCellRowContentFormat sets the template wrapping every cell's content,
// including its padding, e.g. ` {} `.
func (s *Style) SetCellRowContentFormat(format string) *Style {
	s.cellRowContentFormat = format
	return s
}

func (s *Style) CellRowContentFormat() string {
	return s.cellRowContentFormat
}

func (s *Style) SetBorderFormat(format string) *Style {
	s.borderFormat = format
	return s
}

func (s *Style) BorderFormat() string {
	return s.borderFormat
}

// drawsRules reports whether the style has any glyph to draw separator lines with.
func (s *Style) drawsRules() bool {
	return s.horizontalOutside != "" || s.horizontalInside != "" || s.crossings[crossingCross] != ""
}

// contentOverhead is the width the content template adds around a cell.
func (s *Style) contentOverhead() int {
	return runewidth.StringWidth(s.cellRowContentFormat) - 2
}

// applyFormat substitutes value for the first `{}` in format.
func applyFormat(format, value string) string {
	return strings.Replace(format, "{}", value, 1)
}

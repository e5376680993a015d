package table

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/gridtable/errors"
)

func TestPadType_Pad(t *testing.T) {
	tests := []struct {
		name     string
		padType  PadType
		text     string
		width    int
		padChar  string
		expected string
	}{
		{"right pad", PadRight, "ab", 5, " ", "ab   "},
		{"left pad", PadLeft, "ab", 5, " ", "   ab"},
		{"both even", PadBoth, "ab", 6, " ", "  ab  "},
		{"both odd puts extra on the right", PadBoth, "ab", 5, "*", "*ab**"},
		{"wider than width", PadRight, "abcdef", 3, " ", "abcdef"},
		{"wide runes", PadRight, "日本", 6, ".", "日本.."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.padType.Pad(tt.text, tt.width, tt.padChar))
		})
	}
}

func TestNewStyle_Defaults(t *testing.T) {
	s := NewStyle()

	assert.Equal(t, [4]string{"-", "|", "-", "|"}, s.BorderChars())
	for _, c := range s.CrossingChars() {
		assert.Equal(t, "+", c)
	}
	assert.Equal(t, "<info>{}</info>", s.CellHeaderFormat())
	assert.Equal(t, "{}", s.CellRowFormat())
	assert.Equal(t, " {} ", s.CellRowContentFormat())
	assert.Equal(t, "{}", s.BorderFormat())
	assert.Equal(t, " ", s.PaddingChar())
	assert.Equal(t, PadRight, s.PadType())
	assert.Equal(t, "<fg=black;bg=white;options=bold> {} </>", s.HeaderTitleFormat())
	assert.Equal(t, "<fg=black;bg=white;options=bold> {} </>", s.FooterTitleFormat())
}

func TestStyle_BorderCharsInsideDefaultsToOutside(t *testing.T) {
	s := NewStyle().
		SetHorizontalBorderChars("=").
		SetVerticalBorderChars("║", "│")

	assert.Equal(t, [4]string{"=", "║", "=", "│"}, s.BorderChars())
}

func TestStyle_SetCrossingChars(t *testing.T) {
	t.Run("nine chars derive the header rule", func(t *testing.T) {
		s := NewStyle()
		require.NoError(t, s.SetCrossingChars("0", "1", "2", "3", "4", "5", "6", "7", "8"))

		assert.Equal(t, [12]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "8", "0", "4"}, s.CrossingChars())
	})

	t.Run("twelve chars", func(t *testing.T) {
		s := NewStyle()
		chars := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}
		require.NoError(t, s.SetCrossingChars(chars...))

		assert.Equal(t, [12]string(chars), s.CrossingChars())
	})

	t.Run("wrong count", func(t *testing.T) {
		s := NewStyle()
		err := s.SetCrossingChars("a", "b", "c", "d", "e")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errUtils.ErrInvalidCrossingChars))
		assert.NotEmpty(t, errors.GetAllHints(err))
		// Unchanged on error.
		assert.Equal(t, "+", s.CrossingChars()[crossingTopLeft])
	})
}

func TestStyle_SetPaddingChar(t *testing.T) {
	s := NewStyle()

	err := s.SetPaddingChar("")
	assert.ErrorIs(t, err, errUtils.ErrEmptyPaddingChar)
	assert.Equal(t, " ", s.PaddingChar())

	require.NoError(t, s.SetPaddingChar("."))
	assert.Equal(t, ".", s.PaddingChar())
}

func TestStyle_CloneIsIndependent(t *testing.T) {
	s := NewStyle()
	c := s.Clone()

	c.SetHorizontalBorderChars("=").SetCellRowFormat("<comment>{}</>")
	c.SetDefaultCrossingChar("*")

	assert.Equal(t, "-", s.BorderChars()[0])
	assert.Equal(t, "{}", s.CellRowFormat())
	assert.Equal(t, "+", s.CrossingChars()[crossingCross])
}

func TestStyle_DrawsRules(t *testing.T) {
	assert.True(t, NewStyle().drawsRules())

	compact, err := GetStyle(StyleCompact)
	require.NoError(t, err)
	assert.False(t, compact.drawsRules())
}

func TestStyle_ContentOverhead(t *testing.T) {
	s := NewStyle()
	assert.Equal(t, 2, s.contentOverhead())

	s.SetCellRowContentFormat("{}")
	assert.Equal(t, 0, s.contentOverhead())

	s.SetCellRowContentFormat("[ {} ]")
	assert.Equal(t, 4, s.contentOverhead())
}

func TestApplyFormat(t *testing.T) {
	assert.Equal(t, "<info>x</info>", applyFormat("<info>{}</info>", "x"))
	assert.Equal(t, "x {}", applyFormat("{} {}", "x"))
	assert.Equal(t, "static", applyFormat("static", "x"))
}

func TestParsePadType(t *testing.T) {
	tests := []struct {
		input    string
		expected PadType
		wantErr  bool
	}{
		{"", PadRight, false},
		{"right", PadRight, false},
		{"LEFT", PadLeft, false},
		{"both", PadBoth, false},
		{"center", PadBoth, false},
		{"middle", PadRight, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			padType, err := ParsePadType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errUtils.ErrInvalidStyleDefinition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, padType)
		})
	}
}

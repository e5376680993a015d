package ui

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/gridtable/errors"
	iolib "github.com/cloudposse/gridtable/pkg/io"
	"github.com/cloudposse/gridtable/pkg/ui/markup"
	"github.com/cloudposse/gridtable/pkg/ui/table"
)

func TestOutput_WritesFormattedLinesToDataStream(t *testing.T) {
	ioCtx, stdout, stderr := newTestIO()
	out := NewOutput(ioCtx, newTestTerminal(false, ""))

	require.NoError(t, out.WriteLine("<info>ISBN</info> \\<b>"))

	assert.Equal(t, "ISBN <b>\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestOutput_DecoratedWhenColorSupported(t *testing.T) {
	ioCtx, stdout, _ := newTestIO()
	out := NewOutput(ioCtx, newTestTerminal(true, ""))

	require.NoError(t, out.WriteLine("<info>ISBN</info>"))

	assert.Contains(t, stdout.String(), "\x1b[")
	assert.Equal(t, "ISBN", out.RemoveFormat("<info>ISBN</info>"))
}

func TestOutput_WithStream(t *testing.T) {
	ioCtx, stdout, stderr := newTestIO()
	out := NewOutput(ioCtx, newTestTerminal(false, ""), WithStream(iolib.UIStream))

	require.NoError(t, out.WriteLine("x"))

	assert.Empty(t, stdout.String())
	assert.Equal(t, "x\n", stderr.String())
}

func TestOutput_WithMarkupStyles(t *testing.T) {
	ioCtx, stdout, _ := newTestIO()
	out := NewOutput(ioCtx, newTestTerminal(false, ""),
		WithMarkupStyles(map[string]markup.Style{"price": {Foreground: "green"}}))

	require.NoError(t, out.WriteLine("<price>9.99</price> <other>x</other>"))

	assert.Equal(t, "9.99 <other>x</other>\n", stdout.String())
}

func TestOutput_SupportsUTF8(t *testing.T) {
	ioCtx, _, _ := newTestIO()

	assert.True(t, NewOutput(ioCtx, newTestTerminal(false, "en_US.UTF-8")).SupportsUTF8())
	assert.False(t, NewOutput(ioCtx, newTestTerminal(false, "C")).SupportsUTF8())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestOutput_WriteError(t *testing.T) {
	ioCtx := iolib.NewContext(iolib.WithWriters(failingWriter{}, &bytes.Buffer{}))
	out := NewOutput(ioCtx, newTestTerminal(false, ""))

	err := out.WriteLine("x")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errUtils.ErrWriteOutput))
	assert.Contains(t, err.Error(), "data stream")
}

func TestOutput_RendersTable(t *testing.T) {
	ioCtx, stdout, _ := newTestIO()
	out := NewOutput(ioCtx, newTestTerminal(false, ""))

	tbl, err := table.New(out, table.StyleDefault)
	require.NoError(t, err)
	tbl.SetHeaders(table.Strings("ISBN", "Title")).
		AddRow(table.Strings("99921-58-10-7", "Tale of Two Cities"))

	require.NoError(t, tbl.Render())

	expected := "" +
		"+---------------+--------------------+\n" +
		"| ISBN          | Title              |\n" +
		"+---------------+--------------------+\n" +
		"| 99921-58-10-7 | Tale of Two Cities |\n" +
		"+---------------+--------------------+\n"
	assert.Equal(t, expected, stdout.String())
}

func TestOutput_RenderFailureIsMarked(t *testing.T) {
	ioCtx := iolib.NewContext(iolib.WithWriters(failingWriter{}, &bytes.Buffer{}))
	out := NewOutput(ioCtx, newTestTerminal(false, ""))

	tbl, err := table.New(out, table.StyleBox)
	require.NoError(t, err)
	tbl.AddRow(table.Strings("a"))

	err = tbl.Render()

	assert.True(t, errors.Is(err, errUtils.ErrTableRenderFailed))
	assert.True(t, errors.Is(err, errUtils.ErrWriteOutput))
}

func TestBufferedOutput(t *testing.T) {
	out := NewBufferedOutput(false)

	assert.Empty(t, out.String())

	require.NoError(t, out.WriteLine("<comment>a</comment>"))
	require.NoError(t, out.WriteLine("b"))

	assert.Equal(t, []string{"a", "b"}, out.Lines())
	assert.Equal(t, "a\nb\n", out.String())

	out.Reset()
	assert.Empty(t, out.Lines())
}

func TestRenderString(t *testing.T) {
	tbl, err := table.New(NewBufferedOutput(false), table.StyleBox)
	require.NoError(t, err)
	tbl.AddRow(table.Strings("a", "b"))

	s, err := RenderString(tbl, false)

	require.NoError(t, err)
	assert.Equal(t, "┌───┬───┐\n│ a │ b │\n└───┴───┘\n", s)
}

func TestRenderString_UnknownStyle(t *testing.T) {
	tbl, err := table.New(NewBufferedOutput(false), "")
	require.NoError(t, err)
	tbl.SetStyle("not-a-style")

	s, err := RenderString(tbl, false)

	assert.Empty(t, s)
	assert.ErrorIs(t, err, errUtils.ErrTableStyleNotDefined)
}

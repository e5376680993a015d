package ui

import (
	"strings"

	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/gridtable/errors"
	"github.com/cloudposse/gridtable/pkg/io"
	"github.com/cloudposse/gridtable/pkg/perf"
	"github.com/cloudposse/gridtable/pkg/terminal"
	"github.com/cloudposse/gridtable/pkg/ui/markup"
	"github.com/cloudposse/gridtable/pkg/ui/table"
)

// Output writes rendered table lines to an I/O stream, formatting markup for
// the capabilities of the terminal.
type Output struct {
	ioCtx  io.Context
	term   terminal.Terminal
	stream io.Stream
	markup *markup.Formatter
}

// OutputOption configures an Output.
type OutputOption func(*Output)

// WithStream selects the stream lines are written to. Defaults to the data stream.
func WithStream(stream io.Stream) OutputOption {
	return func(o *Output) {
		o.stream = stream
	}
}

// WithMarkupStyles registers extra named markup tags, e.g. from the `markup` configuration section.
func WithMarkupStyles(styles map[string]markup.Style) OutputOption {
	return func(o *Output) {
		for name, style := range styles {
			o.markup.AddStyle(name, style)
		}
	}
}

// NewOutput creates an Output. Markup is decorated when the terminal supports color.
func NewOutput(ioCtx io.Context, term terminal.Terminal, opts ...OutputOption) *Output {
	defer perf.Track(nil, "ui.NewOutput")()

	profile := term.ColorProfile()
	o := &Output{
		ioCtx:  ioCtx,
		term:   term,
		stream: io.DataStream,
		markup: markup.New(
			markup.WithDecorated(profile != terminal.ColorNone),
			markup.WithProfile(profile.TermenvProfile()),
		),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WriteLine formats line and writes it followed by a newline.
func (o *Output) WriteLine(line string) error {
	if err := o.ioCtx.Write(o.stream, o.markup.Format(line)+newline); err != nil {
		return errors.Mark(errors.Wrapf(err, "write to %s stream", o.stream), errUtils.ErrWriteOutput)
	}
	return nil
}

func (o *Output) RemoveFormat(text string) string {
	return o.markup.RemoveFormat(text)
}

func (o *Output) Formatter() table.Formatter {
	return o.markup
}

// SupportsUTF8 reports whether box-drawing styles can be used.
func (o *Output) SupportsUTF8() bool {
	return o.term.SupportsUTF8()
}

// BufferedOutput collects formatted lines in memory.
type BufferedOutput struct {
	markup *markup.Formatter
	lines  []string
}

// NewBufferedOutput creates an in-memory Output.
func NewBufferedOutput(decorated bool) *BufferedOutput {
	return &BufferedOutput{markup: markup.New(markup.WithDecorated(decorated))}
}

func (b *BufferedOutput) WriteLine(line string) error {
	b.lines = append(b.lines, b.markup.Format(line))
	return nil
}

func (b *BufferedOutput) RemoveFormat(text string) string {
	return b.markup.RemoveFormat(text)
}

func (b *BufferedOutput) Formatter() table.Formatter {
	return b.markup
}

// Lines returns the lines written so far.
func (b *BufferedOutput) Lines() []string {
	return append([]string(nil), b.lines...)
}

// String returns the written lines joined with newlines, with a trailing newline.
func (b *BufferedOutput) String() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, newline) + newline
}

// Reset drops the written lines.
func (b *BufferedOutput) Reset() {
	b.lines = nil
}

// RenderString renders t and returns the formatted text.
func RenderString(t *table.Table, decorated bool) (string, error) {
	defer perf.Track(nil, "ui.RenderString")()

	lines, err := t.Lines()
	if err != nil {
		return "", err
	}

	out := NewBufferedOutput(decorated)
	for _, line := range lines {
		if err := out.WriteLine(line); err != nil {
			return "", err
		}
	}
	return out.String(), nil
}

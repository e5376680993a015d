package io

import (
	"fmt"
	stdio "io"
	"os"

	errUtils "github.com/cloudposse/gridtable/errors"
	"github.com/cloudposse/gridtable/pkg/perf"
)

// context implements the Context interface.
type context struct {
	data  stdio.Writer
	ui    stdio.Writer
	input stdio.Reader
}

// ContextOption configures Context behavior.
type ContextOption func(*context)

// NewContext creates a new I/O context bound to the process streams.
func NewContext(opts ...ContextOption) Context {
	defer perf.Track(nil, "io.NewContext")()

	ctx := &context{
		data:  stdoutWriter(),
		ui:    stderrWriter(),
		input: os.Stdin,
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

// WithWriters replaces the data and UI writers (for testing and embedding).
// A nil writer keeps the default.
func WithWriters(data, ui stdio.Writer) ContextOption {
	return func(c *context) {
		if data != nil {
			c.data = data
		}
		if ui != nil {
			c.ui = ui
		}
	}
}

// WithInput replaces the input reader.
func WithInput(r stdio.Reader) ContextOption {
	return func(c *context) {
		if r != nil {
			c.input = r
		}
	}
}

func (c *context) Write(stream Stream, content string) error {
	defer perf.Track(nil, "io.context.Write")()

	var w stdio.Writer
	switch stream {
	case DataStream:
		w = c.data
	case UIStream:
		w = c.ui
	default:
		return fmt.Errorf("%w: unknown stream %d", errUtils.ErrInvalidStream, int(stream))
	}

	_, err := stdio.WriteString(w, content)
	return err
}

func (c *context) Data() stdio.Writer {
	return c.data
}

func (c *context) UI() stdio.Writer {
	return c.ui
}

func (c *context) Input() stdio.Reader {
	return c.input
}

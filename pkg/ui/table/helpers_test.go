package table

import (
	"github.com/cockroachdb/errors"

	"github.com/cloudposse/gridtable/pkg/ui/markup"
)

// testOutput records formatted lines in memory.
type testOutput struct {
	formatter *markup.Formatter
	lines     []string
	failAt    int
}

func newTestOutput() *testOutput {
	return &testOutput{formatter: markup.New(), failAt: -1}
}

var errWriteFailed = errors.New("sink closed")

func (o *testOutput) WriteLine(line string) error {
	if o.failAt >= 0 && len(o.lines) == o.failAt {
		return errWriteFailed
	}
	o.lines = append(o.lines, o.formatter.Format(line))
	return nil
}

func (o *testOutput) RemoveFormat(text string) string {
	return o.formatter.RemoveFormat(text)
}

func (o *testOutput) Formatter() Formatter {
	return o.formatter
}

func newTestTable(style string) (*Table, *testOutput) {
	out := newTestOutput()
	t, err := New(out, style)
	if err != nil {
		panic(err)
	}
	return t, out
}

func isbnTable(style string) (*Table, *testOutput) {
	t, out := newTestTable(style)
	t.SetHeaders(Strings("ISBN", "Title")).
		AddRow(Strings("99921-58-10-7", "Tale of Two Cities"))
	return t, out
}

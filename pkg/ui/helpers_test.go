package ui

import (
	"bytes"
	"testing"

	iolib "github.com/cloudposse/gridtable/pkg/io"
	"github.com/cloudposse/gridtable/pkg/terminal"
)

func newTestTerminal(color bool, locale string) terminal.Terminal {
	cfg := &terminal.Config{
		Color:     color,
		NoColor:   !color,
		EnvLocale: locale,
		EnvTerm:   "xterm-256color",
	}
	return terminal.New(
		terminal.WithConfig(cfg),
		terminal.WithTTYDetector(func(uintptr) bool { return false }),
	)
}

func newTestIO() (iolib.Context, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return iolib.NewContext(iolib.WithWriters(stdout, stderr)), stdout, stderr
}

// setupTestUI initializes the global formatter against in-memory streams and
// restores the previous one on cleanup.
func setupTestUI(t *testing.T, color bool) (stdout, stderr *bytes.Buffer) {
	t.Helper()

	formatterMu.Lock()
	oldFormatter := globalFormatter
	formatterMu.Unlock()

	ioCtx, stdout, stderr := newTestIO()
	InitFormatter(ioCtx,
		terminal.WithConfig(&terminal.Config{Color: color, NoColor: !color}),
		terminal.WithTTYDetector(func(uintptr) bool { return false }),
	)

	t.Cleanup(func() {
		formatterMu.Lock()
		globalFormatter = oldFormatter
		formatterMu.Unlock()
	})

	return stdout, stderr
}

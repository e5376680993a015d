package io

import (
	stdio "io"
	"os"
)

// dynamicWriter resolves its target at write time, so tests that swap
// os.Stdout/os.Stderr still capture output.
type dynamicWriter struct {
	getWriter func() stdio.Writer
}

// Write implements stdio.Writer by delegating to the current writer.
func (dw *dynamicWriter) Write(p []byte) (n int, err error) {
	return dw.getWriter().Write(p)
}

func stdoutWriter() stdio.Writer {
	return &dynamicWriter{getWriter: func() stdio.Writer { return os.Stdout }}
}

func stderrWriter() stdio.Writer {
	return &dynamicWriter{getWriter: func() stdio.Writer { return os.Stderr }}
}

package io

import (
	stdio "io"

	"github.com/cloudposse/gridtable/pkg/perf"
)

// Context provides access to the I/O channels of the process.
//
// The I/O layer decides where output goes. Formatting belongs to pkg/ui and
// terminal detection to pkg/terminal.
type Context interface {
	// Write outputs content to the given stream.
	Write(stream Stream, content string) error

	Data() stdio.Writer  // stdout - rendered tables and other pipeable data
	UI() stdio.Writer    // stderr - human messages (status, errors, perf stats)
	Input() stdio.Reader // stdin - table sources read from "-"
}

// Stream identifies an I/O stream for writing output.
type Stream int

const (
	DataStream Stream = iota // stdout
	UIStream                 // stderr
)

// String returns the string representation of the stream.
func (s Stream) String() string {
	defer perf.Track(nil, "io.Stream.String")()

	switch s {
	case DataStream:
		return "data"
	case UIStream:
		return "ui"
	default:
		return "unknown"
	}
}

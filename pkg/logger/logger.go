package logger

import (
	"io"
	"os"
	"strings"

	charm "github.com/charmbracelet/log"

	errUtils "github.com/cloudposse/gridtable/errors"
	"github.com/cloudposse/gridtable/pkg/schema"
)

// Level is a logging level.
type Level = charm.Level

// Log levels. TraceLevel sits one step below charm's DebugLevel; OffLevel is above every level
// charm emits so nothing passes it.
const (
	TraceLevel Level = charm.DebugLevel - 1
	DebugLevel Level = charm.DebugLevel
	InfoLevel  Level = charm.InfoLevel
	WarnLevel  Level = charm.WarnLevel
	ErrorLevel Level = charm.ErrorLevel
	OffLevel   Level = charm.FatalLevel + 1
)

// LogLevel is the level name as written in config files and flags.
type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

// Sentinel re-exported for callers that only import the logger.
var ErrInvalidLogLevel = errUtils.ErrInvalidLogLevel

// ParseLogLevel parses a level name. The empty string means Info.
func ParseLogLevel(logLevel string) (LogLevel, error) {
	if logLevel == "" {
		return LogLevelInfo, nil
	}

	switch LogLevel(logLevel) {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelOff:
		return LogLevel(logLevel), nil
	default:
		return "", errUtils.Build(ErrInvalidLogLevel).
			WithHint("Supported log levels are Trace, Debug, Info, Warning, Off").
			WithContext("level", logLevel).
			Err()
	}
}

// ToLevel converts a level name to a charm level.
func (l LogLevel) ToLevel() Level {
	switch l {
	case LogLevelTrace:
		return TraceLevel
	case LogLevelDebug:
		return DebugLevel
	case LogLevelWarning:
		return WarnLevel
	case LogLevelOff:
		return OffLevel
	default:
		return InfoLevel
	}
}

// Logger wraps charm's logger and adds the Trace level.
type Logger struct {
	*charm.Logger
}

// NewLogger wraps an existing charm logger.
func NewLogger(l *charm.Logger) *Logger {
	return &Logger{Logger: l}
}

// New creates a logger writing to stderr.
func New() *Logger {
	return NewLogger(charm.New(os.Stderr))
}

// NewLoggerFromConfig creates a logger honoring `logs.level` and `logs.file`.
func NewLoggerFromConfig(cfg *schema.Configuration) (*Logger, error) {
	level, err := ParseLogLevel(cfg.Logs.Level)
	if err != nil {
		return nil, err
	}

	w, err := openLogWriter(cfg.Logs.File)
	if err != nil {
		return nil, err
	}

	l := charm.NewWithOptions(w, charm.Options{
		ReportTimestamp: false,
		Level:           level.ToLevel(),
	})
	return NewLogger(l), nil
}

func openLogWriter(file string) (io.Writer, error) {
	switch file {
	case "", "/dev/stderr":
		return os.Stderr, nil
	case "/dev/stdout":
		return os.Stdout, nil
	case "/dev/null":
		return io.Discard, nil
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrOpenLogFile).
			WithExplanation(err.Error()).
			WithContext("file", file).
			Err()
	}
	return f, nil
}

// Trace logs a message below debug level.
func (l *Logger) Trace(msg interface{}, keyvals ...interface{}) {
	l.Log(TraceLevel, msg, keyvals...)
}

// GetLevelString returns the lower-case name of the current level.
func (l *Logger) GetLevelString() string {
	switch level := l.GetLevel(); level {
	case TraceLevel:
		return "trace"
	case OffLevel:
		return "off"
	default:
		return strings.ToLower(level.String())
	}
}

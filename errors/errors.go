package errors

import (
	"os"

	"github.com/cockroachdb/errors"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// Table engine errors.
var (
	ErrTableStyleNotDefined   = errors.New("table style is not defined")
	ErrTableRenderFailed      = errors.New("failed to render table")
	ErrEmptyPaddingChar       = errors.New("padding char must not be empty")
	ErrInvalidCrossingChars   = errors.New("invalid number of crossing chars")
	ErrInvalidStyleDefinition = errors.New("invalid table style definition")
	ErrStyleCycle             = errors.New("table style extends itself")
	ErrInvalidStylePattern    = errors.New("invalid style name pattern")
)

// Input and CLI errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrInvalidColumnSpec = errors.New("invalid column specification")
	ErrReadInput         = errors.New("failed to read input")
	ErrDecodeInput       = errors.New("failed to decode input")
	ErrInvalidRow        = errors.New("invalid table row")
)

// Configuration errors.
var (
	ErrLoadConfig      = errors.New("failed to load configuration")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrOpenLogFile     = errors.New("failed to open log file")
)

// I/O errors.
var (
	ErrInvalidStream = errors.New("invalid output stream")
	ErrWriteOutput   = errors.New("failed to write output")

	ErrUIFormatterNotInitialized = errors.New("ui formatter not initialized")
)

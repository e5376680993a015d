package errors

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder decorates an error for the terminal: hints, an explanation,
// key/value context and an exit code.
//
//	return errUtils.Build(errors.Wrapf(errUtils.ErrReadInput, "open %s", path)).
//		WithHint("Check the path").
//		WithContext("path", path).
//		Err()
type ErrorBuilder struct {
	err      error
	sentinel error
	hints    []string
	context  []contextEntry
	exitCode *int
}

type contextEntry struct {
	key   string
	value interface{}
}

// Build starts decorating err. A leaf error stays matchable with errors.Is
// once decorated.
func Build(err error) *ErrorBuilder {
	b := &ErrorBuilder{err: err}
	if err != nil && errors.UnwrapOnce(err) == nil {
		b.sentinel = err
	}
	return b
}

// WithHint adds a hint shown below the error message.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.hints = append(b.hints, hint)
	return b
}

// WithHintf is WithHint with formatting.
func (b *ErrorBuilder) WithHintf(format string, args ...interface{}) *ErrorBuilder {
	return b.WithHint(fmt.Sprintf(format, args...))
}

// WithExplanation attaches a longer description, shown in verbose mode.
func (b *ErrorBuilder) WithExplanation(explanation string) *ErrorBuilder {
	if b.err != nil {
		b.err = errors.WithDetail(b.err, explanation)
	}
	return b
}

// WithContext records a key/value pair for the verbose context table.
// Setting a key twice keeps the last value.
func (b *ErrorBuilder) WithContext(key string, value interface{}) *ErrorBuilder {
	for i := range b.context {
		if b.context[i].key == key {
			b.context[i].value = value
			return b
		}
	}
	b.context = append(b.context, contextEntry{key: key, value: value})
	return b
}

// WithExitCode sets the process exit code for the error.
func (b *ErrorBuilder) WithExitCode(code int) *ErrorBuilder {
	b.exitCode = &code
	return b
}

// Err returns the decorated error, or nil when Build was given nil.
func (b *ErrorBuilder) Err() error {
	if b.err == nil {
		return nil
	}

	err := b.err
	for _, hint := range b.hints {
		err = errors.WithHint(err, hint)
	}

	if len(b.context) > 0 {
		pairs := make([]string, len(b.context))
		values := make([]interface{}, len(b.context))
		for i, entry := range b.context {
			pairs[i] = entry.key + "=%s"
			values[i] = errors.Safe(entry.value)
		}
		err = errors.WithSafeDetails(err, strings.Join(pairs, " "), values...)
	}

	if b.sentinel != nil {
		err = errors.Mark(err, b.sentinel)
	}
	if b.exitCode != nil {
		err = WithExitCode(err, *b.exitCode)
	}
	return err
}

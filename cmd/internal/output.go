package internal

import (
	"strings"

	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/gridtable/errors"
	"github.com/cloudposse/gridtable/pkg/filetype"
	"github.com/cloudposse/gridtable/pkg/io"
)

// Output formats of the informational commands.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// ParseOutputFormat validates a --format value. The empty string means table.
func ParseOutputFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "", OutputTable:
		return OutputTable, nil
	case OutputJSON:
		return OutputJSON, nil
	case OutputYAML, "yml":
		return OutputYAML, nil
	default:
		return "", errUtils.Build(errors.Wrapf(errUtils.ErrUnsupportedFormat, "output format %q", s)).
			WithHint("Supported output formats: table, json, yaml").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
}

// WriteStructured encodes v as JSON or YAML on the data stream.
func WriteStructured(format string, v any) error {
	ext := filetype.ExtYAML
	if format == OutputJSON {
		ext = filetype.ExtJSON
	}

	data, err := filetype.MarshalByExtension(v, ext)
	if err != nil {
		return err
	}
	if err := IO().Write(io.DataStream, string(data)); err != nil {
		return errors.Mark(err, errUtils.ErrWriteOutput)
	}
	return nil
}

// Package datasource decodes table documents from CSV, TSV, JSON and YAML.
package datasource

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gabriel-vasile/mimetype"

	errUtils "github.com/cloudposse/gridtable/errors"
	"github.com/cloudposse/gridtable/pkg/filetype"
	log "github.com/cloudposse/gridtable/pkg/logger"
	"github.com/cloudposse/gridtable/pkg/perf"
	"github.com/cloudposse/gridtable/pkg/ui/table"
)

// Format identifies the encoding of a table source.
type Format string

const (
	FormatAuto Format = ""
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// SeparatorMarker is the row value that stands for a separator row.
const SeparatorMarker = "---"

// Formats lists the accepted --format values.
var Formats = []Format{FormatCSV, FormatTSV, FormatJSON, FormatYAML}

// ParseFormat parses a --format value. An empty value means auto-detect.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatCSV, FormatTSV, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, errUtils.Build(errors.Wrapf(errUtils.ErrUnsupportedFormat, "format %q", s)).
			WithHint("Supported formats: csv, tsv, json, yaml").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
}

// DetectFormat derives the format from the file extension of path.
func DetectFormat(path string) (Format, error) {
	ext := filetype.GetFileExtension(filetype.ExtractFilenameFromPath(path))
	switch ext {
	case filetype.ExtCSV:
		return FormatCSV, nil
	case filetype.ExtTSV:
		return FormatTSV, nil
	case filetype.ExtJSON:
		return FormatJSON, nil
	case filetype.ExtYAML, filetype.ExtYML:
		return FormatYAML, nil
	default:
		return FormatAuto, errUtils.Build(errors.Wrapf(errUtils.ErrUnsupportedFormat, "cannot detect format of %q", path)).
			WithHint("Use --format to choose one of: csv, tsv, json, yaml").
			WithContext("path", path).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
}

// Row is a body row of a document. Separator rows carry no cells.
type Row struct {
	Cells     table.Row
	Separator bool
}

// Document is a decoded table source.
type Document struct {
	Headers     []table.Row
	Rows        []Row
	HeaderTitle string
	FooterTitle string
}

// Apply configures t with the document headers, rows and titles.
// Titles only replace the table titles when set.
func (d *Document) Apply(t *table.Table) *table.Table {
	defer perf.Track(nil, "datasource.Document.Apply")()

	if len(d.Headers) > 0 {
		t.SetHeaderRows(d.Headers...)
	}
	for _, r := range d.Rows {
		if r.Separator {
			t.AddSeparator()
			continue
		}
		t.AddRow(r.Cells)
	}
	if d.HeaderTitle != "" {
		t.SetHeaderTitle(d.HeaderTitle)
	}
	if d.FooterTitle != "" {
		t.SetFooterTitle(d.FooterTitle)
	}
	return t
}

type options struct {
	noHeader bool
}

// Option configures decoding.
type Option func(*options)

// WithNoHeader treats the first record of a CSV file or a list document as a body row.
func WithNoHeader(noHeader bool) Option {
	return func(o *options) {
		o.noHeader = noHeader
	}
}

// LoadFile reads and decodes the file at path. FormatAuto detects the format
// from the extension.
func LoadFile(path string, format Format, opts ...Option) (*Document, error) {
	defer perf.Track(nil, "datasource.LoadFile")()

	if format == FormatAuto {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errUtils.Build(errors.Wrapf(errUtils.ErrReadInput, "open %s: %v", path, err)).
			WithContext("path", path).
			Err()
	}
	defer f.Close()

	return Load(f, format, opts...)
}

// Load decodes a document from r. FormatAuto sniffs the content: JSON and TSV
// are recognized, anything else is read as CSV.
func Load(r io.Reader, format Format, opts ...Option) (*Document, error) {
	defer perf.Track(nil, "datasource.Load")()

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(errUtils.ErrReadInput, "read: %v", err)
	}

	if format == FormatAuto {
		format = SniffFormat(data)
	}
	log.Debug("Decoding table source", "format", format, "bytes", len(data))

	switch format {
	case FormatCSV:
		return decodeDelimited(data, ',', o)
	case FormatTSV:
		return decodeDelimited(data, '\t', o)
	case FormatJSON:
		return decodeStructured(data, filetype.ExtJSON, o)
	case FormatYAML:
		return decodeStructured(data, filetype.ExtYAML, o)
	default:
		return nil, errors.Wrapf(errUtils.ErrUnsupportedFormat, "format %q", format)
	}
}

// SniffFormat guesses the format of data from its content.
// YAML cannot be told apart from plain text and falls back to CSV.
func SniffFormat(data []byte) Format {
	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is("application/json"):
		return FormatJSON
	case mtype.Is("text/tab-separated-values"):
		return FormatTSV
	default:
		return FormatCSV
	}
}

// decodeDelimited reads CSV/TSV records. Records may have different lengths.
func decodeDelimited(data []byte, comma rune, o *options) (*Document, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errUtils.Build(errors.Wrap(errUtils.ErrDecodeInput, err.Error())).
			WithHint("Check the quoting of the input, or pick another --format").
			Err()
	}

	doc := &Document{}
	for i, record := range records {
		if i == 0 && !o.noHeader {
			doc.Headers = []table.Row{table.Strings(record...)}
			continue
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == SeparatorMarker {
			doc.Rows = append(doc.Rows, Row{Separator: true})
			continue
		}
		doc.Rows = append(doc.Rows, Row{Cells: table.Strings(record...)})
	}
	return doc, nil
}

package datasource

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"

	errUtils "github.com/cloudposse/gridtable/errors"
	"github.com/cloudposse/gridtable/pkg/filetype"
	"github.com/cloudposse/gridtable/pkg/ui/table"
)

// document is the object form of a JSON/YAML source.
type document struct {
	Headers     []any  `mapstructure:"headers"`
	Rows        []any  `mapstructure:"rows"`
	HeaderTitle string `mapstructure:"header_title"`
	FooterTitle string `mapstructure:"footer_title"`
}

// entry is the object form of a single cell.
type entry struct {
	Text      string      `mapstructure:"text"`
	Colspan   int         `mapstructure:"colspan"`
	Rowspan   int         `mapstructure:"rowspan"`
	Separator bool        `mapstructure:"separator"`
	Style     *entryStyle `mapstructure:"style"`
}

type entryStyle struct {
	Foreground string   `mapstructure:"fg"`
	Background string   `mapstructure:"bg"`
	Options    []string `mapstructure:"options"`
	Align      string   `mapstructure:"align"`
	Format     string   `mapstructure:"format"`
}

func decodeStructured(data []byte, ext string, o *options) (*Document, error) {
	value, err := filetype.ParseByExtension(data, ext)
	if err != nil {
		return nil, errUtils.Build(errors.Wrap(errUtils.ErrDecodeInput, err.Error())).Err()
	}

	switch v := value.(type) {
	case nil:
		return &Document{}, nil
	case []any:
		return decodeList(v, o)
	default:
		m, err := cast.ToStringMapE(v)
		if err != nil {
			return nil, errUtils.Build(errors.Wrapf(errUtils.ErrDecodeInput, "unexpected document of type %T", v)).
				WithHint("A table document is a list of rows, or an object with `headers` and `rows`").
				Err()
		}
		return decodeObject(m)
	}
}

// decodeList decodes a list of rows. The first row is the header unless noHeader is set.
func decodeList(rows []any, o *options) (*Document, error) {
	doc := &Document{}
	for i, raw := range rows {
		if i == 0 && !o.noHeader {
			header, err := decodeRow(raw, i)
			if err != nil {
				return nil, err
			}
			doc.Headers = []table.Row{header}
			continue
		}
		r, err := decodeBodyRow(raw, i)
		if err != nil {
			return nil, err
		}
		doc.Rows = append(doc.Rows, r)
	}
	return doc, nil
}

func decodeObject(m map[string]any) (*Document, error) {
	var raw document
	if err := decodeInto(m, &raw); err != nil {
		return nil, errUtils.Build(errors.Wrap(errUtils.ErrDecodeInput, err.Error())).
			WithHint("Known keys: headers, rows, header_title, footer_title").
			Err()
	}

	doc := &Document{HeaderTitle: raw.HeaderTitle, FooterTitle: raw.FooterTitle}

	headers, err := decodeHeaders(raw.Headers)
	if err != nil {
		return nil, err
	}
	doc.Headers = headers

	for i, r := range raw.Rows {
		row, err := decodeBodyRow(r, i)
		if err != nil {
			return nil, err
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc, nil
}

// decodeHeaders accepts a single header row or a list of header rows.
func decodeHeaders(headers []any) ([]table.Row, error) {
	if len(headers) == 0 {
		return nil, nil
	}

	nested := true
	for _, h := range headers {
		if _, ok := h.([]any); !ok {
			nested = false
			break
		}
	}

	if !nested {
		header, err := decodeRow(headers, 0)
		if err != nil {
			return nil, err
		}
		return []table.Row{header}, nil
	}

	rows := make([]table.Row, 0, len(headers))
	for i, h := range headers {
		header, err := decodeRow(h, i)
		if err != nil {
			return nil, err
		}
		rows = append(rows, header)
	}
	return rows, nil
}

func decodeBodyRow(raw any, index int) (Row, error) {
	if s, ok := raw.(string); ok && s == SeparatorMarker {
		return Row{Separator: true}, nil
	}
	cells, err := decodeRow(raw, index)
	if err != nil {
		return Row{}, err
	}
	return Row{Cells: cells}, nil
}

func decodeRow(raw any, index int) (table.Row, error) {
	values, ok := raw.([]any)
	if !ok {
		return nil, invalidRow(index, fmt.Sprintf("expected a list of cells, got %T", raw))
	}

	row := make(table.Row, 0, len(values))
	for column, value := range values {
		e, err := decodeEntry(value)
		if err != nil {
			return nil, invalidRow(index, fmt.Sprintf("column %d: %v", column, err))
		}
		row = append(row, e)
	}
	return row, nil
}

func decodeEntry(value any) (table.Entry, error) {
	switch v := value.(type) {
	case nil:
		return table.Text(""), nil
	case []any:
		return nil, errors.New("a cell cannot be a list")
	case map[string]any, map[any]any:
		m, err := cast.ToStringMapE(v)
		if err != nil {
			return nil, err
		}
		return decodeCell(m)
	default:
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, err
		}
		return table.Text(s), nil
	}
}

func decodeCell(m map[string]any) (table.Entry, error) {
	var e entry
	if err := decodeInto(m, &e); err != nil {
		return nil, err
	}

	if e.Separator {
		return table.Separator{}, nil
	}

	opts := []table.CellOption{table.WithColspan(e.Colspan), table.WithRowspan(e.Rowspan)}
	if e.Style != nil {
		align, err := table.ParseAlign(e.Style.Align)
		if err != nil {
			return nil, err
		}
		opts = append(opts, table.WithCellStyle(&table.CellStyle{
			Foreground: e.Style.Foreground,
			Background: e.Style.Background,
			Options:    e.Style.Options,
			Align:      align,
			CellFormat: e.Style.Format,
		}))
	}
	return table.NewCell(e.Text, opts...), nil
}

// decodeInto decodes m into out, accepting comma separated strings for lists
// and numbers for text.
func decodeInto(m map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(m)
}

func invalidRow(index int, reason string) error {
	return errUtils.Build(errors.Wrapf(errUtils.ErrInvalidRow, "row %d: %s", index, reason)).
		WithContext("row", index).
		Err()
}

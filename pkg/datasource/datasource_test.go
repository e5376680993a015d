package datasource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/gridtable/errors"
	"github.com/cloudposse/gridtable/pkg/ui/markup"
	"github.com/cloudposse/gridtable/pkg/ui/table"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"", FormatAuto, false},
		{"csv", FormatCSV, false},
		{"TSV", FormatTSV, false},
		{" json ", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errUtils.ErrUnsupportedFormat))
				assert.Equal(t, errUtils.ExitCodeUsage, errUtils.GetExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{"books.csv", FormatCSV, false},
		{"/data/books.TSV", FormatTSV, false},
		{"books.json", FormatJSON, false},
		{"books.yaml", FormatYAML, false},
		{"books.yml", FormatYAML, false},
		{"books.txt", FormatAuto, true},
		{"books", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := DetectFormat(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, errUtils.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestLoad_CSV(t *testing.T) {
	input := "ISBN,Title\n99921-58-10-7,Divine Comedy\n---\n9971-5-0210-0\n"

	doc, err := Load(strings.NewReader(input), FormatCSV)

	require.NoError(t, err)
	assert.Equal(t, []table.Row{table.Strings("ISBN", "Title")}, doc.Headers)
	assert.Equal(t, []Row{
		{Cells: table.Strings("99921-58-10-7", "Divine Comedy")},
		{Separator: true},
		{Cells: table.Strings("9971-5-0210-0")},
	}, doc.Rows)
}

func TestLoad_CSVNoHeader(t *testing.T) {
	doc, err := Load(strings.NewReader("a,b\nc,d\n"), FormatAuto, WithNoHeader(true))

	require.NoError(t, err)
	assert.Empty(t, doc.Headers)
	assert.Len(t, doc.Rows, 2)
}

func TestLoad_TSV(t *testing.T) {
	doc, err := Load(strings.NewReader("a\tb, c\n1\t2\n"), FormatTSV)

	require.NoError(t, err)
	assert.Equal(t, []table.Row{table.Strings("a", "b, c")}, doc.Headers)
	assert.Equal(t, []Row{{Cells: table.Strings("1", "2")}}, doc.Rows)
}

func TestLoad_CSVQuotedLineBreak(t *testing.T) {
	doc, err := Load(strings.NewReader("h\n\"two\nlines\"\n"), FormatCSV)

	require.NoError(t, err)
	assert.Equal(t, []Row{{Cells: table.Strings("two\nlines")}}, doc.Rows)
}

func TestLoad_JSONList(t *testing.T) {
	input := `[["ISBN","Title"],["99921-58-10-7",42],"---",[null,true]]`

	doc, err := Load(strings.NewReader(input), FormatJSON)

	require.NoError(t, err)
	assert.Equal(t, []table.Row{table.Strings("ISBN", "Title")}, doc.Headers)
	assert.Equal(t, []Row{
		{Cells: table.Strings("99921-58-10-7", "42")},
		{Separator: true},
		{Cells: table.Strings("", "true")},
	}, doc.Rows)
}

func TestLoad_JSONObject(t *testing.T) {
	input := `{
		"header_title": "Books",
		"footer_title": "Page 1/2",
		"headers": [[{"text": "Main title", "colspan": 3}], ["ISBN", "Title", "Author"]],
		"rows": [
			[{"text": "99921-58-10-7", "rowspan": 2}, "Divine Comedy", "Dante Alighieri"],
			["A Tale of Two Cities", {"separator": true}],
			"---",
			[{"text": "5", "style": {"fg": "red", "options": "bold,underscore", "align": "right"}}]
		]
	}`

	doc, err := Load(strings.NewReader(input), FormatJSON)

	require.NoError(t, err)
	assert.Equal(t, "Books", doc.HeaderTitle)
	assert.Equal(t, "Page 1/2", doc.FooterTitle)
	assert.Equal(t, []table.Row{
		{table.NewCell("Main title", table.WithColspan(3))},
		table.Strings("ISBN", "Title", "Author"),
	}, doc.Headers)
	require.Len(t, doc.Rows, 4)
	assert.Equal(t, table.NewCell("99921-58-10-7", table.WithRowspan(2)), doc.Rows[0].Cells[0])
	assert.Equal(t, table.Separator{}, doc.Rows[1].Cells[1])
	assert.True(t, doc.Rows[2].Separator)

	styled, ok := doc.Rows[3].Cells[0].(table.Cell)
	require.True(t, ok)
	require.NotNil(t, styled.Style)
	assert.Equal(t, "red", styled.Style.Foreground)
	assert.Equal(t, []string{"bold", "underscore"}, styled.Style.Options)
	assert.Equal(t, table.AlignRight, styled.Style.Align)
}

func TestLoad_YAMLObject(t *testing.T) {
	input := `
header_title: Books
headers: [ISBN, Title]
rows:
  - [99921-58-10-7, Divine Comedy]
  - "---"
  - [{text: "9971-5-0210-0", colspan: 2}]
`

	doc, err := Load(strings.NewReader(input), FormatYAML)

	require.NoError(t, err)
	assert.Equal(t, "Books", doc.HeaderTitle)
	assert.Equal(t, []table.Row{table.Strings("ISBN", "Title")}, doc.Headers)
	assert.Equal(t, []Row{
		{Cells: table.Strings("99921-58-10-7", "Divine Comedy")},
		{Separator: true},
		{Cells: table.Row{table.NewCell("9971-5-0210-0", table.WithColspan(2))}},
	}, doc.Rows)
}

func TestLoad_YAMLEmpty(t *testing.T) {
	doc, err := Load(strings.NewReader(""), FormatYAML)

	require.NoError(t, err)
	assert.Empty(t, doc.Headers)
	assert.Empty(t, doc.Rows)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		format   Format
		sentinel error
	}{
		{"malformed json", `[["a"`, FormatJSON, errUtils.ErrDecodeInput},
		{"scalar document", `42`, FormatJSON, errUtils.ErrDecodeInput},
		{"unknown key", `{"colums": []}`, FormatJSON, errUtils.ErrDecodeInput},
		{"row is not a list", `[["a"], "oops"]`, FormatJSON, errUtils.ErrInvalidRow},
		{"nested list cell", `[["a"], [["b"]]]`, FormatJSON, errUtils.ErrInvalidRow},
		{"bad align", `[["a"], [{"text": "b", "style": {"align": "justify"}}]]`, FormatJSON, errUtils.ErrInvalidRow},
		{"unknown cell key", `[["a"], [{"txt": "b"}]]`, FormatJSON, errUtils.ErrInvalidRow},
		{"unknown format", `a`, Format("xml"), errUtils.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input), tt.format)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
		})
	}
}

func TestSniffFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Format
	}{
		{"json list", `[["ISBN", "Title"], ["1", "Go"]]`, FormatJSON},
		{"json object", `{"headers": [["a"]], "rows": [["b"]]}`, FormatJSON},
		{"tsv", "a\tb\n1\t2\n3\t4\n", FormatTSV},
		{"csv", "a,b\n1,2\n3,4\n", FormatCSV},
		{"plain text", "hello", FormatCSV},
		{"empty", "", FormatCSV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SniffFormat([]byte(tt.input)))
		})
	}
}

func TestLoad_AutoJSON(t *testing.T) {
	doc, err := Load(strings.NewReader(`[["a", "b"], ["1", "2"]]`), FormatAuto)

	require.NoError(t, err)
	assert.Equal(t, []table.Row{table.Strings("a", "b")}, doc.Headers)
	assert.Equal(t, []Row{{Cells: table.Strings("1", "2")}}, doc.Rows)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "books.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- [ISBN]\n- [\"1\"]\n"), 0o600))

	doc, err := LoadFile(path, FormatAuto)

	require.NoError(t, err)
	assert.Equal(t, []table.Row{table.Strings("ISBN")}, doc.Headers)
	assert.Equal(t, []Row{{Cells: table.Strings("1")}}, doc.Rows)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv"), FormatAuto)

	assert.True(t, errors.Is(err, errUtils.ErrReadInput))
}

func TestLoadFile_UnknownExtension(t *testing.T) {
	_, err := LoadFile("books.txt", FormatAuto)

	assert.True(t, errors.Is(err, errUtils.ErrUnsupportedFormat))
}

// recordingOutput keeps rendered lines without decoration.
type recordingOutput struct {
	formatter *markup.Formatter
	lines     []string
}

func (o *recordingOutput) WriteLine(line string) error {
	o.lines = append(o.lines, o.formatter.Format(line))
	return nil
}

func (o *recordingOutput) RemoveFormat(text string) string {
	return o.formatter.RemoveFormat(text)
}

func (o *recordingOutput) Formatter() table.Formatter {
	return o.formatter
}

func TestDocument_Apply(t *testing.T) {
	doc := &Document{
		Headers:     []table.Row{table.Strings("ISBN", "Title")},
		Rows:        []Row{{Cells: table.Strings("1", "a")}, {Separator: true}, {Cells: table.Strings("2", "b")}},
		HeaderTitle: "Books",
	}

	out := &recordingOutput{formatter: markup.New()}
	tbl, err := table.New(out, table.StyleDefault)
	require.NoError(t, err)
	tbl.SetFooterTitle("kept")
	doc.Apply(tbl)

	require.NoError(t, tbl.Render())

	assert.Equal(t, []string{
		"+--- Books ----+",
		"| ISBN | Title |",
		"+------+-------+",
		"| 1    | a     |",
		"+------+-------+",
		"| 2    | b     |",
		"+---- kept ----+",
	}, out.lines)
}

package render

import (
	"github.com/spf13/cobra"

	"github.com/cloudposse/gridtable/cmd/internal"
	"github.com/cloudposse/gridtable/pkg/config"
	"github.com/cloudposse/gridtable/pkg/datasource"
	"github.com/cloudposse/gridtable/pkg/flags"
	log "github.com/cloudposse/gridtable/pkg/logger"
	"github.com/cloudposse/gridtable/pkg/perf"
	"github.com/cloudposse/gridtable/pkg/schema"
	"github.com/cloudposse/gridtable/pkg/ui"
	"github.com/cloudposse/gridtable/pkg/ui/table"
)

// stdinPath selects standard input as the source.
const stdinPath = "-"

var renderParser = flags.NewStandardParser(
	flags.WithStringFlag("format", "f", "", "Input format: csv, tsv, json or yaml (default: from the file extension, csv for stdin)"),
	flags.WithStringFlag("style", "s", "", "Table style (default: box on UTF-8 terminals, otherwise default)"),
	flags.WithBoolFlag("horizontal", "", false, "Lay out headers as the first column"),
	flags.WithStringFlag("header-title", "", "", "Title embedded in the top border"),
	flags.WithStringFlag("footer-title", "", "", "Title embedded in the bottom border"),
	flags.WithStringSliceFlag("width", "", nil, "Minimum column width as <column>=<width> (repeatable)"),
	flags.WithStringSliceFlag("max-width", "", nil, "Maximum column width as <column>=<width>; longer content wraps (repeatable)"),
	flags.WithStringSliceFlag("column-style", "", nil, "Style of one column as <column>=<style> (repeatable)"),
	flags.WithBoolFlag("no-header", "", false, "Treat the first record as data"),
	flags.WithViperKey("style", "table.style"),
	flags.WithViperKey("horizontal", "table.horizontal"),
	flags.WithViperKey("header-title", "table.header_title"),
	flags.WithViperKey("footer-title", "table.footer_title"),
)

// Options holds the parsed flags of the render command.
type Options struct {
	Path      string
	Format    datasource.Format
	NoHeader  bool
	Widths    map[int]int
	MaxWidths map[int]int
	Styles    map[int]string

	// Set when the title flags were given explicitly.
	HeaderTitleSet bool
	FooterTitleSet bool
}

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a CSV, TSV, JSON or YAML file as a table",
	Long: `Render reads rows from a file, or from standard input when the file is
omitted or "-", and draws them as a table on standard output.

Structured documents (JSON, YAML) may describe spanning and styled cells:

  headers: [ISBN, Title]
  rows:
    - ["99921-58-10-7", "Divine Comedy"]
    - "---"
    - [{text: "Out of print", colspan: 2, style: {fg: red, align: center}}]`,
	Example: `  gridtable render books.csv
  gridtable render books.yaml --style box-double --header-title Books
  cat books.csv | gridtable render --width 0=15 --max-width 1=20`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := internal.Config()
		defer perf.Track(cfg, "render.RunE")()

		opts, err := parseOptions(cmd, args)
		if err != nil {
			return err
		}
		return run(cfg, opts)
	},
}

func init() {
	renderParser.RegisterFlags(renderCmd)
	internal.Register(&RenderCommandProvider{})
}

func parseOptions(cmd *cobra.Command, args []string) (*Options, error) {
	opts := &Options{Path: stdinPath}
	if len(args) > 0 {
		opts.Path = args[0]
	}

	f := cmd.Flags()
	format, _ := f.GetString("format")
	parsed, err := datasource.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	opts.Format = parsed
	opts.NoHeader, _ = f.GetBool("no-header")
	opts.HeaderTitleSet = f.Changed("header-title")
	opts.FooterTitleSet = f.Changed("footer-title")

	widths, _ := f.GetStringSlice("width")
	if opts.Widths, err = config.ParseColumnWidths("width", widths); err != nil {
		return nil, err
	}
	maxWidths, _ := f.GetStringSlice("max-width")
	if opts.MaxWidths, err = config.ParseColumnWidths("max-width", maxWidths); err != nil {
		return nil, err
	}
	styles, _ := f.GetStringSlice("column-style")
	if opts.Styles, err = config.ParseColumnSpecs("column-style", styles); err != nil {
		return nil, err
	}
	return opts, nil
}

func run(cfg *schema.Configuration, opts *Options) error {
	doc, err := load(opts)
	if err != nil {
		return err
	}

	markupStyles, err := config.MarkupStyles(cfg)
	if err != nil {
		return err
	}

	out := ui.NewOutput(internal.IO(), ui.Terminal(), ui.WithMarkupStyles(markupStyles))
	t, err := table.New(out, table.StyleDefault)
	if err != nil {
		return err
	}
	doc.Apply(t)
	if len(doc.Rows) == 0 {
		if err := ui.Infof("%s has no rows", sourceName(opts.Path)); err != nil {
			return err
		}
	}

	settings := tableSettings(cfg, opts, doc, out.SupportsUTF8())
	if err := config.ApplyTableSettings(cfg, t, settings); err != nil {
		return err
	}

	log.Debug("Rendering table", "source", opts.Path, "rows", len(doc.Rows), "style", settings.Style)
	return t.Render()
}

func sourceName(path string) string {
	if path == stdinPath {
		return "stdin"
	}
	return path
}

func load(opts *Options) (*datasource.Document, error) {
	if opts.Path == stdinPath {
		return datasource.Load(internal.IO().Input(), opts.Format, datasource.WithNoHeader(opts.NoHeader))
	}
	return datasource.LoadFile(opts.Path, opts.Format, datasource.WithNoHeader(opts.NoHeader))
}

// tableSettings merges the configured table settings with the document and
// the flags. Titles set by flags win over titles in the document, which win
// over configured titles.
func tableSettings(cfg *schema.Configuration, opts *Options, doc *datasource.Document, utf8 bool) schema.TableSettings {
	settings := cfg.Table
	if settings.Style == "" {
		settings.Style = table.StyleDefault
		if utf8 {
			settings.Style = table.StyleBox
		}
	}
	if doc.HeaderTitle != "" && !opts.HeaderTitleSet {
		settings.HeaderTitle = ""
	}
	if doc.FooterTitle != "" && !opts.FooterTitleSet {
		settings.FooterTitle = ""
	}
	settings.Columns = config.MergeColumns(settings.Columns, opts.Widths, opts.MaxWidths, opts.Styles)
	return settings
}

// RenderCommandProvider implements the CommandProvider interface.
type RenderCommandProvider struct{}

// GetCommand returns the render command.
func (r *RenderCommandProvider) GetCommand() *cobra.Command {
	return renderCmd
}

// GetName returns the command name.
func (r *RenderCommandProvider) GetName() string {
	return "render"
}

// GetGroup returns the command group for help organization.
func (r *RenderCommandProvider) GetGroup() string {
	return "Table Commands"
}

package styles

import (
	"github.com/cockroachdb/errors"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/cloudposse/gridtable/cmd/internal"
	errUtils "github.com/cloudposse/gridtable/errors"
	"github.com/cloudposse/gridtable/pkg/config"
	"github.com/cloudposse/gridtable/pkg/flags"
	"github.com/cloudposse/gridtable/pkg/perf"
	"github.com/cloudposse/gridtable/pkg/schema"
	"github.com/cloudposse/gridtable/pkg/ui"
	"github.com/cloudposse/gridtable/pkg/ui/table"
)

const (
	sourceBuiltin = "built-in"
	sourceCustom  = "custom"
)

// StyleInfo describes one available style.
type StyleInfo struct {
	Name    string `json:"name" yaml:"name"`
	Source  string `json:"source" yaml:"source"`
	Extends string `json:"extends,omitempty" yaml:"extends,omitempty"`
}

var listParser = flags.NewStandardParser(
	flags.WithStringFlag("format", "f", "", "Output format: table, json or yaml"),
)

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List the available table styles",
	Long: `List the built-in and custom table styles.

An optional glob pattern filters the style names, for example 'box*'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := internal.Config()
		defer perf.Track(cfg, "styles.list.RunE")()

		format, _ := cmd.Flags().GetString("format")
		format, err := internal.ParseOutputFormat(format)
		if err != nil {
			return err
		}

		infos := listStyles(cfg)
		if len(args) == 1 {
			if infos, err = filterStyles(infos, args[0]); err != nil {
				return err
			}
			if len(infos) == 0 {
				if err := ui.Warningf("no styles match %q", args[0]); err != nil {
					return err
				}
			}
		}
		if format != internal.OutputTable {
			return internal.WriteStructured(format, infos)
		}
		return renderStyleList(infos)
	},
}

func init() {
	listParser.RegisterFlags(listCmd)
}

// listStyles returns built-in and custom styles sorted by name. A custom style
// named like a built-in one replaces it.
func listStyles(cfg *schema.Configuration) []StyleInfo {
	names := config.StyleNames(cfg)
	infos := make([]StyleInfo, 0, len(names))
	for _, name := range names {
		info := StyleInfo{Name: name, Source: sourceBuiltin}
		if def, ok := cfg.Styles[name]; ok {
			info.Source = sourceCustom
			info.Extends = def.Extends
			if info.Extends == "" {
				info.Extends = table.StyleDefault
			}
		}
		infos = append(infos, info)
	}
	return infos
}

// filterStyles keeps the styles whose name matches the glob pattern.
func filterStyles(infos []StyleInfo, pattern string) ([]StyleInfo, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errUtils.Build(errors.Wrapf(errUtils.ErrInvalidStylePattern, "%q: %v", pattern, err)).
			WithHint("Use a glob pattern such as 'box*'").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	matched := make([]StyleInfo, 0, len(infos))
	for _, info := range infos {
		if g.Match(info.Name) {
			matched = append(matched, info)
		}
	}
	return matched, nil
}

func renderStyleList(infos []StyleInfo) error {
	out := ui.NewOutput(internal.IO(), ui.Terminal())
	t, err := table.New(out, table.StyleCompact)
	if err != nil {
		return err
	}

	t.SetHeaders(table.Strings("Name", "Source", "Extends"))
	for _, info := range infos {
		t.AddRow(table.Strings(info.Name, info.Source, info.Extends))
	}
	return t.Render()
}

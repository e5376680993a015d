package styles

import (
	"github.com/spf13/cobra"

	"github.com/cloudposse/gridtable/cmd/internal"
	"github.com/cloudposse/gridtable/pkg/config"
	"github.com/cloudposse/gridtable/pkg/perf"
	"github.com/cloudposse/gridtable/pkg/ui"
	"github.com/cloudposse/gridtable/pkg/ui/table"
)

var showCmd = &cobra.Command{
	Use:     "show <name>",
	Short:   "Preview a table style with sample data",
	Example: "  gridtable styles show box-double",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := internal.Config()
		defer perf.Track(cfg, "styles.show.RunE")()

		style, err := config.ResolveStyle(cfg, args[0])
		if err != nil {
			return err
		}

		out := ui.NewOutput(internal.IO(), ui.Terminal())
		t, err := table.New(out, table.StyleDefault)
		if err != nil {
			return err
		}
		t.SetCustomStyle(style)
		sampleTable(t, args[0])
		return t.Render()
	},
}

// sampleTable fills t with a small catalog exercising a header title, a
// separator and a spanning cell.
func sampleTable(t *table.Table, title string) {
	t.SetHeaderTitle(title).
		SetFooterTitle("Page 1/1").
		SetHeaders(table.Strings("ISBN", "Title", "Author")).
		SetRows(
			table.Strings("99921-58-10-7", "Divine Comedy", "Dante Alighieri"),
			table.Strings("9971-5-0210-0", "A Tale of Two Cities", "Charles Dickens"),
		).
		AddSeparator().
		AddRow(table.Row{table.NewCell("This value spans 3 columns.", table.WithColspan(3))})
}

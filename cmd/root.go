package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cloudposse/gridtable/cmd/internal"
	// Subcommands register themselves with the internal registry on import.
	_ "github.com/cloudposse/gridtable/cmd/render"
	_ "github.com/cloudposse/gridtable/cmd/styles"
	_ "github.com/cloudposse/gridtable/cmd/version"
	"github.com/cloudposse/gridtable/pkg/config"
	"github.com/cloudposse/gridtable/pkg/flags"
	"github.com/cloudposse/gridtable/pkg/io"
	log "github.com/cloudposse/gridtable/pkg/logger"
	"github.com/cloudposse/gridtable/pkg/perf"
	"github.com/cloudposse/gridtable/pkg/terminal"
	"github.com/cloudposse/gridtable/pkg/ui"
	"github.com/cloudposse/gridtable/pkg/ui/heatmap"
	"github.com/cloudposse/gridtable/pkg/ui/table"
)

var (
	// Overridden in tests to capture output.
	ioOptions       []io.ContextOption
	terminalOptions []terminal.Option

	globalParser = flags.NewStandardParser(
		flags.WithStringFlag("config", "", "", "Path to a gridtable.yaml configuration file"),
		flags.WithStringFlag("logs-level", "", config.DefaultLogsLevel, "Log level: Trace, Debug, Info, Warning, Off"),
		flags.WithStringFlag("logs-file", "", config.DefaultLogsFile, "File to write logs to"),
		flags.WithBoolFlag("color", "", false, "Force colored output"),
		flags.WithBoolFlag("no-color", "", false, "Disable colored output"),
		flags.WithBoolFlag("perf", "", false, "Print timing statistics after the command finishes"),
		flags.WithViperKey("logs-level", "logs.level"),
		flags.WithViperKey("logs-file", "logs.file"),
		flags.WithViperKey("color", "color"),
		flags.WithViperKey("no-color", "no-color"),
		flags.WithViperKey("perf", "settings.perf"),
		flags.WithEnvVars("no-color", "GRIDTABLE_NO_COLOR"),
	)
)

// RootCmd is the `gridtable` command.
var RootCmd = &cobra.Command{
	Use:   "gridtable",
	Short: "Render data as bordered terminal tables",
	Long: `gridtable reads CSV, TSV, JSON or YAML and renders it as a table with
configurable borders, column widths, spans and titles.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	globalParser.RegisterPersistentFlags(RootCmd)

	for _, p := range internal.Providers() {
		cmd := p.GetCommand()
		cmd.GroupID = groupID(p.GetGroup())
		if !RootCmd.ContainsGroup(cmd.GroupID) {
			RootCmd.AddGroup(&cobra.Group{ID: cmd.GroupID, Title: p.GetGroup() + ":"})
		}
		RootCmd.AddCommand(cmd)
	}
}

func groupID(title string) string {
	if title == "" {
		return "other"
	}
	return title
}

// setup loads the configuration and initializes logging, perf tracking and
// the UI formatter. It runs before every subcommand.
func setup(cmd *cobra.Command) error {
	v := viper.GetViper()
	if err := flags.BindFlagsToViper(cmd, v); err != nil {
		return err
	}

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(v, configFile)
	if err != nil {
		return err
	}

	logger, err := log.NewLoggerFromConfig(&cfg)
	if err != nil {
		return err
	}
	log.SetDefault(logger)

	perf.Enable(cfg.Settings.Perf)

	ioCtx := io.NewContext(ioOptions...)
	ui.InitFormatter(ioCtx, terminalOptions...)
	internal.SetRuntime(&cfg, ioCtx)

	log.Debug("Loaded configuration", "file", cfg.ConfigFile, "command", cmd.CommandPath())
	return nil
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// Cleanup runs before the process exits. With perf tracking enabled it prints
// the recorded timings to the UI stream.
func Cleanup() {
	if !perf.Enabled() {
		return
	}
	if err := printPerfStats(); err != nil {
		log.Debug("Failed to print perf stats", "error", err)
	}
}

func printPerfStats() error {
	term := ui.Terminal()
	if term == nil {
		return nil
	}
	stats := perf.Snapshot()
	if len(stats) == 0 {
		return ui.Info("no performance samples recorded")
	}

	out := ui.NewOutput(internal.IO(), term, ui.WithStream(io.UIStream))
	t, err := table.New(out, table.StyleDefault)
	if err != nil {
		return err
	}

	right := t.Style().Clone().SetPadType(table.PadLeft)
	for column := 1; column <= 4; column++ {
		t.SetColumnCustomStyle(column, right)
	}

	bars := heatmap.PerfBars(stats, heatmap.DefaultBarWidth, out.SupportsUTF8())
	t.SetHeaders(table.Strings("Function", "Calls", "P50", "P95", "Max", ""))
	t.SetFooterTitle("perf")
	for i, s := range stats {
		t.AddRow(table.Strings(
			s.Name,
			strconv.FormatInt(s.Count, 10),
			s.P50.String(),
			s.P95.String(),
			s.Max.String(),
			bars[i],
		))
	}
	return t.Render()
}

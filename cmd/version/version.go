package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudposse/gridtable/cmd/internal"
	"github.com/cloudposse/gridtable/pkg/flags"
	"github.com/cloudposse/gridtable/pkg/io"
	"github.com/cloudposse/gridtable/pkg/perf"
	"github.com/cloudposse/gridtable/pkg/version"
)

var versionParser = flags.NewStandardParser(
	flags.WithStringFlag("format", "f", "", "Output format: table, json or yaml"),
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Display the version of gridtable you are running",
	Example: "gridtable version --format json",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer perf.Track(internal.Config(), "version.RunE")()

		format, _ := cmd.Flags().GetString("format")
		format, err := internal.ParseOutputFormat(format)
		if err != nil {
			return err
		}

		info := version.Get()
		if format != internal.OutputTable {
			return internal.WriteStructured(format, info)
		}
		return internal.IO().Write(io.DataStream, fmt.Sprintf("gridtable %s %s/%s (%s)\n", info.Version, info.OS, info.Arch, info.Go))
	},
}

func init() {
	versionParser.RegisterFlags(versionCmd)
	internal.Register(&VersionCommandProvider{})
}

// VersionCommandProvider implements the CommandProvider interface.
type VersionCommandProvider struct{}

// GetCommand returns the version command.
func (v *VersionCommandProvider) GetCommand() *cobra.Command {
	return versionCmd
}

// GetName returns the command name.
func (v *VersionCommandProvider) GetName() string {
	return "version"
}

// GetGroup returns the command group for help organization.
func (v *VersionCommandProvider) GetGroup() string {
	return "Other Commands"
}

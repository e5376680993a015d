package styles

import (
	"github.com/spf13/cobra"

	"github.com/cloudposse/gridtable/cmd/internal"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List and preview table styles",
	Long: `List the built-in table styles and the custom styles defined under
"styles" in gridtable.yaml, or preview one of them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	stylesCmd.AddCommand(listCmd, showCmd)
	internal.Register(&StylesCommandProvider{})
}

// StylesCommandProvider implements the CommandProvider interface.
type StylesCommandProvider struct{}

// GetCommand returns the styles command.
func (s *StylesCommandProvider) GetCommand() *cobra.Command {
	return stylesCmd
}

// GetName returns the command name.
func (s *StylesCommandProvider) GetName() string {
	return "styles"
}

// GetGroup returns the command group for help organization.
func (s *StylesCommandProvider) GetGroup() string {
	return "Table Commands"
}

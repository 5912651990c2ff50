package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [bazel flags...] [patterns...]",
		Short: "Generate the compilation database from the bazel action graph",
		Long: `Generate compile_commands.json at the workspace root.

Leading dash-prefixed arguments are forwarded to bazel aquery verbatim.
The remaining arguments are target patterns; a pattern prefixed with "-"
is excluded. Without patterns the whole workspace ("//...") is queried.`,
		// Flags belong to bazel, not to this command; cobra must not
		// consume them.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Generate(cmd.Context(), args)
			return err
		},
	}
}

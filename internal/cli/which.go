package cli

import (
	"github.com/spf13/cobra"
)

// whichCommand creates the "which" command, which prints the renderer a
// render run would use.
func (c *CLI) whichCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "which",
		Short: "Show the PlantUML renderer that would be used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			r, err := c.newLocator(logger).Locate(cmd.Context())
			if err != nil {
				return err
			}
			printKeyValue(c.Out, "command", r.String())
			printKeyValue(c.Out, "strategy", string(r.Strategy()))
			return nil
		},
	}
}

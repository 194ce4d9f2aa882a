package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pumlrender/pkg/errors"
	"github.com/matzehuels/pumlrender/pkg/themes"
)

// listCommand creates the "list" command, which shows discovered themes
// and how many examples each would render.
func (c *CLI) listCommand(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List theme directories and their examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			found, err := themes.Discover(g.root)
			if err != nil {
				return err
			}
			selected := themes.Filter(found, g.theme)
			logger.Debug("discovered themes", "total", len(found), "selected", len(selected))

			for _, t := range selected {
				rel := t.Path
				if r, err := filepath.Rel(g.root, t.Path); err == nil {
					rel = r
				}
				files, err := themes.Examples(t)
				if err != nil {
					printWarning(c.Out, "%s: %s", t.Name, errors.UserMessage(err))
					printDetail(c.Out, "%s", rel)
					continue
				}
				printInfo(c.Out, "%s: %s", t.Name, pluralize(len(files), "example"))
				printDetail(c.Out, "%s", rel)
			}
			return nil
		},
	}
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pumlrender/pkg/pipeline"
	"github.com/matzehuels/pumlrender/pkg/renderer"
	"github.com/matzehuels/pumlrender/pkg/themes"
)

// renderOpts holds the flags of the render (root) command.
type renderOpts struct {
	format string // png, svg, both, all
	report string // optional TOML report path
}

// renderCommand creates the command that renders all theme examples.
func (c *CLI) renderCommand(g *globalOpts) *cobra.Command {
	opts := renderOpts{format: pipeline.DefaultSelector}

	cmd := &cobra.Command{
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := renderer.ParseSelector(opts.format)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), g, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: png, svg, both (default), all")
	cmd.Flags().StringVar(&opts.report, "report", "", "write a TOML run report to this path")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return renderer.Selectors, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runRender executes a full render run. Only setup failures are returned.
func (c *CLI) runRender(ctx context.Context, g *globalOpts, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	res, err := c.newRunner(logger).Execute(ctx, pipeline.Options{
		Root:       g.root,
		Selector:   opts.format,
		Theme:      g.theme,
		ReportPath: opts.report,
	})
	if err != nil {
		return err
	}

	s := res.Summary
	prog.done(fmt.Sprintf("Rendered %d/%d outputs from %d themes (%s)",
		s.Succeeded, s.Attempted, len(res.Selected), humanize.Bytes(s.Bytes)))
	return nil
}

// completeThemes completes --theme with the names of discovered themes.
func completeThemes(g *globalOpts) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		found, err := themes.Discover(g.root)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		names := make([]string, 0, len(found))
		for _, t := range found {
			names = append(names, t.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

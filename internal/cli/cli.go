// Package cli implements the pumlrender command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pumlrender/pkg/buildinfo"
	"github.com/matzehuels/pumlrender/pkg/pipeline"
	"github.com/matzehuels/pumlrender/pkg/renderer"
	"github.com/matzehuels/pumlrender/pkg/report"
)

// appName is the application name used for display.
const appName = "pumlrender"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // progress and command output
	ErrOut io.Writer // failures, renderer diagnostics, logs

	// Getenv reads renderer configuration (PLANTUML, PLANTUML_JAR).
	Getenv func(string) string
}

// New creates a CLI writing to out and errOut. Logs go to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errOut, level),
		Out:    out,
		ErrOut: errOut,
		Getenv: os.Getenv,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// globalOpts holds flags shared by every command.
type globalOpts struct {
	root    string
	theme   string
	verbose bool
}

// RootCommand creates the root cobra command. Running it without a
// subcommand renders every theme's examples.
func (c *CLI) RootCommand() *cobra.Command {
	var g globalOpts

	root := c.renderCommand(&g)
	root.Use = appName
	root.Short = "Render PlantUML theme examples to PNG and SVG"
	root.Long = `pumlrender finds every directory holding a puml-theme-*.puml file (one or
two levels below --root) and renders the diagrams in its examples/ directory
with PlantUML, writing to examples/_out/<format>/.

The renderer is taken from $PLANTUML, else 'plantuml' on PATH, else
$PLANTUML_JAR run with java. Individual render failures are reported but do
not change the exit status.`
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if g.verbose {
			c.SetLogLevel(LogDebug)
		}
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.SetErr(c.ErrOut)

	root.PersistentFlags().StringVarP(&g.root, "root", "r", pipeline.DefaultRoot, "repository root to scan for themes")
	root.PersistentFlags().StringVarP(&g.theme, "theme", "t", "", "only process the theme with this exact name")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	_ = root.RegisterFlagCompletionFunc("theme", completeThemes(&g))

	root.AddCommand(c.listCommand(&g))
	root.AddCommand(c.whichCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Execute runs the command tree with args.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// newLocator creates a renderer locator reading the CLI's environment.
func (c *CLI) newLocator(logger *log.Logger) *renderer.Locator {
	l := renderer.NewLocator(logger)
	l.Getenv = c.Getenv
	return l
}

// newRunner creates a pipeline runner reporting to the CLI's writers.
func (c *CLI) newRunner(logger *log.Logger) *pipeline.Runner {
	return pipeline.NewRunner(c.newLocator(logger), report.New(c.Out, c.ErrOut), c.ErrOut, logger)
}

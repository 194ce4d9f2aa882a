package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/pumlrender/pkg/buildinfo"
	"github.com/matzehuels/pumlrender/pkg/errors"
	"github.com/matzehuels/pumlrender/pkg/observability"
	"github.com/matzehuels/pumlrender/pkg/renderer"
	"github.com/matzehuels/pumlrender/pkg/report"
	"github.com/matzehuels/pumlrender/pkg/themes"
)

// Runner executes render runs. It is not safe for concurrent use because
// the Reporter accumulates per-run state.
type Runner struct {
	Locator     *renderer.Locator
	Reporter    *report.Reporter
	Diagnostics io.Writer // receives renderer stderr of failed renders
	Logger      *log.Logger

	// NewID returns the identifier of a run.
	NewID func() string
}

// NewRunner creates a runner. Nil arguments fall back to a process-env
// locator, a discarding reporter, and the default logger.
func NewRunner(l *renderer.Locator, rep *report.Reporter, diag io.Writer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if l == nil {
		l = renderer.NewLocator(logger)
	}
	if rep == nil {
		rep = report.New(nil, nil)
	}
	if diag == nil {
		diag = io.Discard
	}
	return &Runner{
		Locator:     l,
		Reporter:    rep,
		Diagnostics: diag,
		Logger:      logger,
		NewID:       uuid.NewString,
	}
}

// Execute performs a full run. The returned error is non-nil only for
// invalid options, setup failures (no renderer, no themes), or context
// cancellation.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	res := &Result{RunID: r.NewID()}
	logger := r.Logger.With("run", shortID(res.RunID))

	rend, err := r.Locator.Locate(ctx)
	if err != nil {
		return nil, err
	}
	res.Renderer = rend
	logger.Debug("resolved renderer", "command", rend.String(), "strategy", rend.Strategy())

	discovered, err := themes.Discover(opts.Root)
	if err != nil {
		return nil, err
	}
	res.Discovered = discovered
	res.Selected = themes.Filter(discovered, opts.Theme)
	for _, t := range discovered {
		logger.Debug("discovered theme", "name", t.Name, "path", t.Path)
	}
	if opts.Theme != "" && len(res.Selected) == 0 {
		logger.Debug("no theme matches filter", "theme", opts.Theme)
	}

	r.Reporter.Begin(res.RunID, rend, opts.Formats)
	inv := renderer.NewInvoker(rend, r.Diagnostics, logger)

	for _, t := range res.Selected {
		if err := r.renderTheme(ctx, inv, t, opts.Formats); err != nil {
			return nil, err
		}
	}

	res.Summary = r.Reporter.Summary()
	res.Summary.Version = buildinfo.Short()
	res.Summary.Discovered = len(res.Discovered)
	if opts.ReportPath != "" {
		if err := report.WriteFile(opts.ReportPath, res.Summary); err != nil {
			logger.Error("failed to write report", "path", opts.ReportPath, "err", err)
		} else {
			logger.Debug("wrote report", "path", opts.ReportPath)
		}
	}
	return res, nil
}

// renderTheme renders every example of t in every format. It returns an
// error only when ctx is cancelled.
func (r *Runner) renderTheme(ctx context.Context, inv *renderer.Invoker, t themes.Theme, formats []renderer.Format) error {
	hooks := observability.Render()

	files, err := themes.Examples(t)
	if err != nil {
		reason := errors.UserMessage(err)
		hooks.OnThemeSkip(ctx, t.Name, reason)
		r.Reporter.SkipTheme(t.Name, t.Path, reason)
		return nil
	}

	hooks.OnThemeStart(ctx, t.Name, len(files))
	r.Reporter.StartTheme(t.Name, t.Path, len(files))
	defer r.Reporter.FinishTheme()

	dir := t.ExamplesDir()
	for _, f := range files {
		for _, format := range formats {
			if err := ctx.Err(); err != nil {
				return err
			}
			hooks.OnRenderStart(ctx, t.Name, f, string(format))
			start := time.Now()
			res := inv.Render(ctx, format, dir, f)
			hooks.OnRenderComplete(ctx, t.Name, f, string(format), res.ExitCode, time.Since(start))
			r.Reporter.Record(res)
		}
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

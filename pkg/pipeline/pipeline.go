// Package pipeline wires the renderer, theme discovery, and reporting into
// a single batch run.
//
// A run is strictly sequential:
//
//  1. Locate: resolve the renderer once (fatal if unavailable)
//  2. Discover: find theme directories under the root (fatal if none)
//  3. For each selected theme: list its examples, or skip it
//  4. For each example × format: invoke the renderer and record the result
//
// Only the setup stages can fail a run. Individual render failures are
// reported and counted but never returned as errors.
//
//	runner := pipeline.NewRunner(locator, report.New(os.Stdout, os.Stderr), os.Stderr, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Root: ".", Selector: "both"})
package pipeline

import (
	"os"

	"github.com/matzehuels/pumlrender/pkg/errors"
	"github.com/matzehuels/pumlrender/pkg/renderer"
	"github.com/matzehuels/pumlrender/pkg/report"
	"github.com/matzehuels/pumlrender/pkg/themes"
)

const (
	// DefaultRoot is the directory scanned for themes.
	DefaultRoot = "."

	// DefaultSelector is the default --format value.
	DefaultSelector = renderer.DefaultSelector
)

// ValidFormats is the set of formats a run may request.
var ValidFormats = map[renderer.Format]bool{
	renderer.FormatPNG: true,
	renderer.FormatSVG: true,
}

// Options configures a run.
type Options struct {
	Root       string            // repository root to scan
	Selector   string            // png, svg, both, all; ignored when Formats is set
	Formats    []renderer.Format // expanded formats
	Theme      string            // only render themes with exactly this name
	ReportPath string            // optional TOML report destination

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults fills defaults and validates the options.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Root == "" {
		o.Root = DefaultRoot
	}
	if len(o.Formats) == 0 {
		sel := o.Selector
		if sel == "" {
			sel = DefaultSelector
		}
		formats, err := renderer.ParseSelector(sel)
		if err != nil {
			return err
		}
		o.Formats = formats
	}
	for _, f := range o.Formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'png' or 'svg')", f)
		}
	}
	info, err := os.Stat(o.Root)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot read root %s", o.Root)
	}
	if !info.IsDir() {
		return errors.New(errors.ErrCodeInvalidPath, "root %s is not a directory", o.Root)
	}
	o.validated = true
	return nil
}

// Result is the outcome of a completed run.
type Result struct {
	RunID      string
	Renderer   *renderer.Renderer
	Discovered []themes.Theme // every theme found under the root
	Selected   []themes.Theme // themes left after the --theme filter
	Summary    report.Summary
}

// Package report tallies render outcomes and prints per-theme summaries.
//
// The Reporter is purely observational: nothing it records changes the
// control flow of a run or the process exit code. Progress and success
// lines go to the output writer; failures and renderer diagnostics go to
// the error writer.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/pumlrender/pkg/renderer"
)

var (
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // skipped
	colorRed    = lipgloss.Color("167") // failed
	colorCyan   = lipgloss.Color("36")  // summary
	colorGray   = lipgloss.Color("245") // info
)

var (
	styleOK   = lipgloss.NewStyle().Foreground(colorGreen)
	styleFail = lipgloss.NewStyle().Foreground(colorRed)
	styleSkip = lipgloss.NewStyle().Foreground(colorYellow)
	styleInfo = lipgloss.NewStyle().Foreground(colorGray)
	styleDone = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

// Outcome is the record of a single render.
type Outcome struct {
	Source   string `toml:"source"`
	Format   string `toml:"format"`
	ExitCode int    `toml:"exit_code"`
	Duration string `toml:"duration"`
	Bytes    uint64 `toml:"bytes,omitempty"`
	Error    string `toml:"error,omitempty"`
}

// ThemeSummary holds the totals of one theme.
type ThemeSummary struct {
	Name       string    `toml:"name"`
	Path       string    `toml:"path"`
	SkipReason string    `toml:"skip_reason,omitempty"`
	Files      int       `toml:"files"`
	Attempted  int       `toml:"attempted"`
	Succeeded  int       `toml:"succeeded"`
	Failed     int       `toml:"failed"`
	Outcomes   []Outcome `toml:"outcomes,omitempty"`
}

// Skipped reports whether the theme had nothing to render.
func (t ThemeSummary) Skipped() bool { return t.SkipReason != "" }

// Summary is the complete record of a run.
type Summary struct {
	RunID      string         `toml:"run_id"`
	Version    string         `toml:"version"`
	Started    time.Time      `toml:"started"`
	Renderer   string         `toml:"renderer"`
	Strategy   string         `toml:"strategy"`
	Formats    []string       `toml:"formats"`
	Discovered int            `toml:"discovered"` // themes found before the --theme filter
	Attempted  int            `toml:"attempted"`
	Succeeded  int            `toml:"succeeded"`
	Failed     int            `toml:"failed"`
	Bytes      uint64         `toml:"bytes_written"`
	Themes     []ThemeSummary `toml:"themes"`
}

// Reporter prints render progress and accumulates a Summary.
// It is not safe for concurrent use.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	sum    Summary
	cur    *ThemeSummary
}

// New creates a Reporter writing progress to out and failures to errOut.
func New(out, errOut io.Writer) *Reporter {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return &Reporter{out: out, errOut: errOut}
}

// Begin starts a new run, discarding any previous tallies.
func (r *Reporter) Begin(runID string, rend *renderer.Renderer, formats []renderer.Format) {
	r.cur = nil
	r.sum = Summary{
		RunID:   runID,
		Started: time.Now().UTC().Truncate(time.Second),
	}
	if rend != nil {
		r.sum.Renderer = rend.String()
		r.sum.Strategy = string(rend.Strategy())
	}
	for _, f := range formats {
		r.sum.Formats = append(r.sum.Formats, string(f))
	}
}

// SkipTheme records a theme with nothing to render.
func (r *Reporter) SkipTheme(name, path, reason string) {
	fmt.Fprintf(r.out, "%s %s: %s\n", styleSkip.Render("[skip]"), name, reason)
	r.sum.Themes = append(r.sum.Themes, ThemeSummary{Name: name, Path: path, SkipReason: reason})
}

// StartTheme opens the tally for a theme with the given number of sources.
func (r *Reporter) StartTheme(name, path string, files int) {
	r.FinishTheme()
	fmt.Fprintf(r.out, "%s Rendering theme '%s' examples (%d files) ...\n", styleInfo.Render("[info]"), name, files)
	r.cur = &ThemeSummary{Name: name, Path: path, Files: files}
}

// Record tallies one render result against the current theme.
func (r *Reporter) Record(res renderer.Result) {
	if r.cur == nil {
		return
	}
	name := filepath.Base(res.Source)
	o := Outcome{
		Source:   res.Source,
		Format:   string(res.Format),
		ExitCode: res.ExitCode,
		Duration: res.Duration.Round(time.Millisecond).String(),
	}

	r.cur.Attempted++
	if res.OK() {
		r.cur.Succeeded++
		if info, err := os.Stat(res.Output); err == nil {
			o.Bytes = uint64(info.Size())
		}
		fmt.Fprintf(r.out, "  %s %s -> %s\n", styleOK.Render("[ok]"), name, res.Format)
	} else {
		r.cur.Failed++
		if res.Err != nil {
			o.Error = res.Err.Error()
		}
		fmt.Fprintf(r.errOut, "  %s %s -> %s\n", styleFail.Render("[fail]"), name, res.Format)
	}
	r.cur.Outcomes = append(r.cur.Outcomes, o)
}

// FinishTheme prints the current theme's summary line and folds its
// totals into the run. It is a no-op when no theme is open.
func (r *Reporter) FinishTheme() {
	t := r.cur
	if t == nil {
		return
	}
	r.cur = nil

	fmt.Fprintf(r.out, "%s %s: %d/%d succeeded, %d failed\n",
		styleDone.Render("[done]"), t.Name, t.Succeeded, t.Attempted, t.Failed)

	r.sum.Attempted += t.Attempted
	r.sum.Succeeded += t.Succeeded
	r.sum.Failed += t.Failed
	for _, o := range t.Outcomes {
		r.sum.Bytes += o.Bytes
	}
	r.sum.Themes = append(r.sum.Themes, *t)
}

// Summary closes any open theme and returns a copy of the run summary.
func (r *Reporter) Summary() Summary {
	r.FinishTheme()
	s := r.sum
	s.Themes = append([]ThemeSummary(nil), r.sum.Themes...)
	return s
}

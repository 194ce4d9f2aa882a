package renderer

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/pumlrender/pkg/errors"
)

const (
	// OutputDir is the directory, relative to an examples directory, that
	// receives rendered files under one subdirectory per format.
	OutputDir = "_out"

	// Charset is passed to every render.
	Charset = "UTF-8"
)

// Result is the outcome of one render invocation.
type Result struct {
	Source   string        // diagram source path
	Format   Format        // requested output format
	ExitCode int           // 0 on success
	Stderr   string        // captured diagnostic output
	Output   string        // expected output file path
	Duration time.Duration // wall time of the invocation
	Err      error         // RENDER_FAILURE when ExitCode != 0
}

// OK reports whether the render succeeded.
func (r Result) OK() bool { return r.ExitCode == 0 }

// Invoker runs a Renderer for single (source, format) pairs.
type Invoker struct {
	Renderer *Renderer

	// Diagnostics receives captured stderr of failed renders and launch
	// errors.
	Diagnostics io.Writer
	Logger      *log.Logger
}

// NewInvoker creates an Invoker. A nil diag discards diagnostics.
func NewInvoker(r *Renderer, diag io.Writer, logger *log.Logger) *Invoker {
	if diag == nil {
		diag = io.Discard
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Invoker{Renderer: r, Diagnostics: diag, Logger: logger}
}

// Args returns the full argument vector for rendering source (a file name
// relative to the examples directory) to format.
func (inv *Invoker) Args(format Format, source string) []string {
	args := inv.Renderer.Command()
	return append(args,
		"-t"+string(format),
		"-charset", Charset,
		"-o", filepath.Join(OutputDir, string(format)),
		filepath.Base(source),
	)
}

// OutputPath returns where PlantUML writes source rendered as format.
func OutputPath(exampleDir, source string, format Format) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(exampleDir, OutputDir, string(format), stem+"."+string(format))
}

// Render renders source to format with exampleDir as working directory.
// It never returns an error: a failed or unlaunchable render is reported
// through Result, with ExitCode 1 when the process could not be started.
func (inv *Invoker) Render(ctx context.Context, format Format, exampleDir, source string) (res Result) {
	res = Result{
		Source: source,
		Format: format,
		Output: OutputPath(exampleDir, source, format),
	}
	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	argv := inv.Args(format, source)

	outDir := filepath.Join(exampleDir, OutputDir, string(format))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return inv.launchFailure(res, argv, err)
	}

	inv.Logger.Debug("rendering", "dir", exampleDir, "cmd", strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = exampleDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	res.Stderr = stderr.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.ExitCode = 0
		if info, statErr := os.Stat(res.Output); statErr == nil {
			inv.Logger.Debug("rendered", "output", res.Output, "size", humanize.Bytes(uint64(info.Size())))
		}
	case stderrors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		if res.ExitCode <= 0 {
			// killed by a signal
			res.ExitCode = 1
		}
		if res.Stderr != "" {
			_, _ = io.WriteString(inv.Diagnostics, res.Stderr)
		}
		res.Err = errors.Wrap(errors.ErrCodeRenderFailure, err,
			"%s -> %s exited with code %d", filepath.Base(source), format, res.ExitCode)
	default:
		return inv.launchFailure(res, argv, err)
	}
	return res
}

func (inv *Invoker) launchFailure(res Result, argv []string, err error) Result {
	cmdline := strings.Join(argv, " ")
	fmt.Fprintf(inv.Diagnostics, "error running %s: %v\n", cmdline, err)
	res.ExitCode = 1
	res.Err = errors.Wrap(errors.ErrCodeRenderFailure, err, "error running %s", cmdline)
	return res
}

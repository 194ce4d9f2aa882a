package renderer

import (
	"context"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pumlrender/pkg/errors"
)

// Environment variables consulted by the Locator.
const (
	EnvCommand = "PLANTUML"
	EnvJar     = "PLANTUML_JAR"
)

const (
	defaultBinary = "plantuml"
	javaBinary    = "java"
)

// Messages shown for fatal resolution failures.
const (
	msgUnavailable = "PlantUML not found. Install 'plantuml' or set PLANTUML or PLANTUML_JAR."
	msgNoJava      = "java not found; required with PLANTUML_JAR"
)

// Strategy records which resolution step produced a Renderer.
type Strategy string

const (
	StrategyOverride Strategy = "override"
	StrategyPath     Strategy = "path"
	StrategyJar      Strategy = "jar"
)

// Renderer is the resolved command prefix used for every render in a run.
// It is immutable once created.
type Renderer struct {
	command  []string
	strategy Strategy
}

// New returns a Renderer for the given command prefix.
func New(strategy Strategy, command ...string) *Renderer {
	return &Renderer{command: slices.Clone(command), strategy: strategy}
}

// Command returns a copy of the command prefix.
func (r *Renderer) Command() []string { return slices.Clone(r.command) }

// Strategy returns how the renderer was resolved.
func (r *Renderer) Strategy() Strategy { return r.strategy }

func (r *Renderer) String() string { return strings.Join(r.command, " ") }

// Locator resolves the Renderer for a run.
type Locator struct {
	Getenv func(string) string
	Probe  Prober
	Logger *log.Logger
}

// NewLocator creates a Locator reading the process environment and probing
// real executables.
func NewLocator(logger *log.Logger) *Locator {
	if logger == nil {
		logger = log.Default()
	}
	return &Locator{Getenv: os.Getenv, Probe: ExecProbe, Logger: logger}
}

// Locate resolves the renderer: PLANTUML override, then plantuml on PATH,
// then PLANTUML_JAR via java. A set PLANTUML_JAR without java is a
// configuration error; nothing resolvable is RENDERER_UNAVAILABLE.
func (l *Locator) Locate(ctx context.Context) (*Renderer, error) {
	if cmd := l.Getenv(EnvCommand); cmd != "" {
		l.Logger.Debug("using renderer override", "env", EnvCommand, "command", cmd)
		return New(StrategyOverride, cmd), nil
	}

	res := l.Probe(ctx, defaultBinary, "-version")
	l.Logger.Debug("probed renderer", "command", defaultBinary, "status", res.Status)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if res.Status == Found {
		return New(StrategyPath, defaultBinary), nil
	}

	if jar := l.Getenv(EnvJar); jar != "" {
		java := l.Probe(ctx, javaBinary, "-version")
		l.Logger.Debug("probed java runtime", "status", java.Status, "jar", jar)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if java.Status != Found {
			return nil, errors.New(errors.ErrCodeConfiguration, msgNoJava)
		}
		return New(StrategyJar, javaBinary, "-jar", jar), nil
	}

	return nil, errors.New(errors.ErrCodeRendererUnavailable, msgUnavailable)
}

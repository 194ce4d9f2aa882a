package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pumlrender/pkg/errors"
)

type testCLI struct {
	*CLI
	out, errOut *bytes.Buffer
	env         map[string]string
	root        string
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	tc := &testCLI{
		CLI:    New(out, errOut, LogInfo),
		out:    out,
		errOut: errOut,
		env:    map[string]string{},
		root:   t.TempDir(),
	}
	tc.Getenv = func(k string) string { return tc.env[k] }
	return tc
}

// withRenderer points PLANTUML at a shell script with the given body.
func (tc *testCLI) withRenderer(t *testing.T, body string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script renderers require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "plantuml")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	tc.env["PLANTUML"] = path
}

func (tc *testCLI) touch(t *testing.T, rel ...string) {
	t.Helper()
	path := filepath.Join(append([]string{tc.root}, rel...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("@startuml\n@enduml\n"), 0o644))
}

func (tc *testCLI) run(args ...string) error {
	return tc.Execute(context.Background(), append([]string{"--root", tc.root}, args...))
}

func TestRenderCommand(t *testing.T) {
	tc := newTestCLI(t)
	tc.withRenderer(t, "exit 0")
	tc.touch(t, "starlight", "puml-theme-starlight.puml")
	tc.touch(t, "starlight", "examples", "a.puml")

	require.NoError(t, tc.run("--format", "png"))

	assert.Contains(t, tc.out.String(), "Rendering theme 'starlight' examples (1 files) ...")
	assert.Contains(t, tc.out.String(), "a.puml -> png")
	assert.Contains(t, tc.out.String(), "starlight: 1/1 succeeded, 0 failed")
	assert.NotContains(t, tc.out.String(), "-> svg")
	assert.Contains(t, tc.errOut.String(), "Rendered 1/1 outputs from 1 themes")
}

func TestRenderCommandReportsBytesWritten(t *testing.T) {
	tc := newTestCLI(t)
	tc.withRenderer(t, `fmt="${1#-t}"; f="$6"; head -c 1500 /dev/zero > "$5/${f%.puml}.$fmt"`)
	tc.touch(t, "starlight", "puml-theme-starlight.puml")
	tc.touch(t, "starlight", "examples", "a.puml")

	require.NoError(t, tc.run("-f", "svg"))

	assert.Contains(t, tc.out.String(), "a.puml -> svg\n")
	assert.Contains(t, tc.errOut.String(), "Rendered 1/1 outputs from 1 themes (1.5 kB)")
	assert.FileExists(t, filepath.Join(tc.root, "starlight", "examples", "_out", "svg", "a.svg"))
}

func TestRenderCommandFailuresExitZero(t *testing.T) {
	tc := newTestCLI(t)
	tc.withRenderer(t, `echo "cannot render $6" >&2; exit 1`)
	tc.touch(t, "starlight", "puml-theme-starlight.puml")
	tc.touch(t, "starlight", "examples", "a.puml")

	require.NoError(t, tc.run("-f", "all"))

	assert.Contains(t, tc.out.String(), "starlight: 0/2 succeeded, 2 failed")
	assert.Contains(t, tc.errOut.String(), "cannot render a.puml")
}

func TestRenderCommandNoThemes(t *testing.T) {
	tc := newTestCLI(t)
	tc.withRenderer(t, "exit 0")

	err := tc.run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNoThemesFound))
	assert.Equal(t, "No themes found (no puml-theme-*.puml files).", errors.UserMessage(err))
}

func TestRenderCommandNoRenderer(t *testing.T) {
	tc := newTestCLI(t)
	t.Setenv("PATH", t.TempDir())
	tc.touch(t, "starlight", "puml-theme-starlight.puml")

	err := tc.run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeRendererUnavailable))
}

func TestRenderCommandUnknownTheme(t *testing.T) {
	tc := newTestCLI(t)
	tc.withRenderer(t, "exit 0")
	tc.touch(t, "starlight", "puml-theme-starlight.puml")
	tc.touch(t, "starlight", "examples", "a.puml")

	require.NoError(t, tc.run("--theme", "nope"))
	assert.Empty(t, tc.out.String())
}

func TestRenderCommandInvalidFormat(t *testing.T) {
	tc := newTestCLI(t)
	tc.withRenderer(t, "exit 0")

	err := tc.run("--format", "pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestRenderCommandReport(t *testing.T) {
	tc := newTestCLI(t)
	tc.withRenderer(t, "exit 0")
	tc.touch(t, "starlight", "puml-theme-starlight.puml")
	tc.touch(t, "starlight", "examples", "a.puml")
	path := filepath.Join(t.TempDir(), "run.toml")

	require.NoError(t, tc.run("--report", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `formats = ["png", "svg"]`)
}

func TestListCommand(t *testing.T) {
	tc := newTestCLI(t)
	tc.touch(t, "starlight", "puml-theme-starlight.puml")
	tc.touch(t, "starlight", "examples", "a.puml")
	tc.touch(t, "starlight", "examples", "b.puml")
	tc.touch(t, "themes", "bare", "puml-theme-bare.puml")

	require.NoError(t, tc.run("list"))

	out := tc.out.String()
	assert.Contains(t, out, "starlight: 2 examples")
	assert.Contains(t, out, "bare: no examples/ directory")
	assert.Contains(t, out, filepath.Join("themes", "bare"))
	assert.Less(t, strings.Index(out, "starlight"), strings.Index(out, "bare"))
}

func TestWhichCommand(t *testing.T) {
	tc := newTestCLI(t)
	tc.env["PLANTUML"] = "/opt/plantuml/bin/plantuml"

	require.NoError(t, tc.run("which"))
	assert.Contains(t, tc.out.String(), "/opt/plantuml/bin/plantuml")
	assert.Contains(t, tc.out.String(), "override")
}

func TestWhichCommandJarWithoutJava(t *testing.T) {
	tc := newTestCLI(t)
	t.Setenv("PATH", t.TempDir())
	tc.env["PLANTUML_JAR"] = "/opt/plantuml.jar"

	err := tc.run("which")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfiguration))
}

func TestCompletionCommand(t *testing.T) {
	tc := newTestCLI(t)

	require.NoError(t, tc.run("completion", "bash"))
	assert.Contains(t, tc.out.String(), "pumlrender")
}

func TestVerboseEnablesDebugLogs(t *testing.T) {
	tc := newTestCLI(t)
	tc.env["PLANTUML"] = "my-plantuml"

	require.NoError(t, tc.run("-v", "which"))
	assert.Contains(t, tc.errOut.String(), "using renderer override")
}

package renderer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
)

// ProbeStatus is the outcome of probing for an executable.
type ProbeStatus int

const (
	NotFound ProbeStatus = iota
	Found
)

func (s ProbeStatus) String() string {
	if s == Found {
		return "found"
	}
	return "not found"
}

// ProbeResult is the classified outcome of a probe.
type ProbeResult struct {
	Status  ProbeStatus
	Command string
}

// Prober checks whether name can be executed. Implementations must only
// report NotFound when the executable itself is missing.
type Prober func(ctx context.Context, name string, args ...string) ProbeResult

// ExecProbe runs name with args, discarding all output. Any outcome other
// than "executable not found" is Found, including a non-zero exit and a
// file on PATH that cannot be executed.
func ExecProbe(ctx context.Context, name string, args ...string) ProbeResult {
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Run(); err != nil && isNotFound(err) && !onPath(name) {
		return ProbeResult{Status: NotFound, Command: name}
	}
	return ProbeResult{Status: Found, Command: name}
}

// isNotFound reports whether err means the executable does not exist,
// either via PATH lookup or as an explicit path.
func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

// onPath reports whether a regular file called name exists in any PATH
// directory, whatever its permissions. exec.LookPath skips such files and
// reports them as missing.
func onPath(name string) bool {
	if filepath.Base(name) != name {
		return false
	}
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && info.Mode().IsRegular() {
			return true
		}
	}
	return false
}

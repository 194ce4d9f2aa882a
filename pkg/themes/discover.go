package themes

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/matzehuels/pumlrender/pkg/errors"
)

const (
	// DefinitionPattern matches theme-definition files.
	DefinitionPattern = "puml-theme-*.puml"

	// MaxDepth is the deepest directory level, relative to the root,
	// that can be a theme directory.
	MaxDepth = 2
)

const msgNoThemes = "No themes found (no puml-theme-*.puml files)."

// Theme is a directory holding at least one theme-definition file.
type Theme struct {
	Name string // last path segment
	Path string
}

// ExamplesDir returns the theme's examples directory.
func (t Theme) ExamplesDir() string {
	return filepath.Join(t.Path, ExamplesDirName)
}

// Discover returns all theme directories at depth 1 and 2 below root,
// sorted by path. It fails with NO_THEMES_FOUND if there are none and with
// INVALID_PATH if root is not a readable directory.
func Discover(root string) ([]Theme, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot read root %s", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "root %s is not a directory", root)
	}

	w := &walker{seen: make(map[string]bool)}
	if err := w.walk(root, 0); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot read root %s", root)
	}
	if len(w.themes) == 0 {
		return nil, errors.New(errors.ErrCodeNoThemesFound, msgNoThemes)
	}

	sort.Slice(w.themes, func(i, j int) bool { return w.themes[i].Path < w.themes[j].Path })
	return w.themes, nil
}

// Filter returns the themes whose name equals name exactly.
// An empty name selects every theme.
func Filter(themes []Theme, name string) []Theme {
	if name == "" {
		return themes
	}
	var out []Theme
	for _, t := range themes {
		if t.Name == name {
			out = append(out, t)
		}
	}
	return out
}

type walker struct {
	themes []Theme
	seen   map[string]bool // canonical paths
}

// walk visits the subdirectories of dir, which sits at the given depth.
// Only the root's own read error is returned; unreadable subdirectories
// are skipped.
func (w *walker) walk(dir string, depth int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if !isDir(path, e) {
			continue
		}
		if hasDefinition(path) {
			w.add(path)
		}
		if depth+1 < MaxDepth {
			_ = w.walk(path, depth+1)
		}
	}
	return nil
}

func (w *walker) add(path string) {
	canon, err := filepath.EvalSymlinks(path)
	if err != nil {
		canon = path
	}
	if abs, err := filepath.Abs(canon); err == nil {
		canon = abs
	}
	if w.seen[canon] {
		return
	}
	w.seen[canon] = true
	w.themes = append(w.themes, Theme{Name: filepath.Base(path), Path: path})
}

// isDir reports whether e is a directory, following symbolic links.
func isDir(path string, e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// hasDefinition reports whether dir directly contains a theme-definition file.
func hasDefinition(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(DefinitionPattern, e.Name()); ok {
			return true
		}
	}
	return false
}

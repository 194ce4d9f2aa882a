package themes

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matzehuels/pumlrender/pkg/errors"
)

const (
	// ExamplesDirName is the subdirectory of a theme holding its diagrams.
	ExamplesDirName = "examples"

	// SourceExt is the extension of renderable diagram sources.
	SourceExt = ".puml"
)

// Examples returns the sorted diagram sources directly inside the theme's
// examples directory. A missing directory or one without sources yields an
// EMPTY_EXAMPLE_SET error whose message is the skip reason.
func Examples(t Theme) ([]string, error) {
	dir := t.ExamplesDir()
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.New(errors.ErrCodeEmptyExampleSet, "no %s/ directory", ExamplesDirName)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEmptyExampleSet, err, "cannot read %s/", ExamplesDirName)
	}

	var files []string
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), SourceExt) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if isDir(path, e) {
			continue
		}
		files = append(files, path)
	}
	if len(files) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyExampleSet, "no %s under %s/", SourceExt, ExamplesDirName)
	}

	sort.Strings(files)
	return files, nil
}

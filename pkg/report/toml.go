package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EncodeTOML writes s to w as a TOML document.
func EncodeTOML(w io.Writer, s Summary) error {
	return toml.NewEncoder(w).Encode(s)
}

// WriteFile writes s as TOML to path, creating parent directories.
func WriteFile(path string, s Summary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := EncodeTOML(f, s); err != nil {
		f.Close()
		return fmt.Errorf("encode report: %w", err)
	}
	return f.Close()
}

// ReadFile decodes a report previously written by WriteFile.
func ReadFile(path string) (Summary, error) {
	var s Summary
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Summary{}, fmt.Errorf("decode report: %w", err)
	}
	return s, nil
}

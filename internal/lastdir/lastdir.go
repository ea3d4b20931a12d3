// Package lastdir persists the directory the browser was showing when it quit,
// so a shell wrapper can cd there afterwards.
package lastdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmpty is returned by Load when the file holds no path.
var ErrEmpty = errors.New("last directory file is empty")

// Save writes dir followed by a newline to file, replacing its contents.
func Save(file, dir string) error {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(file), err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(file), ".mfmdir-*")
	if err != nil {
		return fmt.Errorf("write last directory: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(dir + "\n"); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write last directory: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write last directory: %w", err)
	}
	if err := os.Rename(tmpName, file); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write last directory: %w", err)
	}
	return nil
}

// Load returns the first line of file.
func Load(file string) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(string(data), "\n")
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return "", ErrEmpty
	}
	return line, nil
}

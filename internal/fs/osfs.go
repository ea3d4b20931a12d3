package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/kk-code-lab/mfm/internal/logging"
	"golang.org/x/text/unicode/norm"
)

// OSOptions configures the filesystem-backed DirectoryService.
type OSOptions struct {
	// Ignore lists glob patterns matched against entry names. Matching entries
	// never appear in listings, hidden or not.
	Ignore []string
}

// OSService implements DirectoryService on top of the os package.
type OSService struct {
	ignore []glob.Glob
}

// NewOSService compiles the ignore patterns and returns a ready service.
func NewOSService(opts OSOptions) (*OSService, error) {
	svc := &OSService{}
	for _, pattern := range opts.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		svc.ignore = append(svc.ignore, g)
	}
	return svc, nil
}

func (s *OSService) ignored(name string) bool {
	for _, g := range s.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// List reads path and returns its entries sorted directories-first.
func (s *OSService) List(path string, includeHidden bool) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, ioError("list", path, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		rawName := e.Name()
		if !includeHidden && IsHidden(rawName) {
			continue
		}
		fullPath := filepath.Join(path, rawName)
		if s.ignored(rawName) || isProtectedEntry(fullPath) {
			continue
		}

		isDir := e.IsDir()
		// Symlinks pointing at directories are browsable like directories.
		if e.Type()&os.ModeSymlink != 0 {
			if target, err := os.Stat(fullPath); err == nil {
				isDir = target.IsDir()
			}
		}

		entry := Entry{
			Name:  norm.NFC.String(rawName),
			Path:  path,
			IsDir: isDir,
		}
		if entry.Name != rawName {
			entry.RawName = rawName
		}
		entries = append(entries, entry)
	}

	SortEntries(entries)
	return entries, nil
}

// ResolveAbsolute returns the cleaned absolute form of path, which must be a directory.
func (s *OSService) ResolveAbsolute(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ioError("resolve", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", ioError("resolve", abs, err)
	}
	if !info.IsDir() {
		return "", ioError("resolve", abs, errors.New("not a directory"))
	}
	return abs, nil
}

func (s *OSService) Rename(path, oldName, newName string) error {
	oldPath := filepath.Join(path, oldName)
	newPath := filepath.Join(path, newName)
	return ioError("rename", oldPath, os.Rename(oldPath, newPath))
}

func (s *OSService) Delete(path, name string) error {
	target := filepath.Join(path, name)
	if _, err := os.Lstat(target); err != nil {
		return ioError("delete", target, err)
	}
	return ioError("delete", target, os.RemoveAll(target))
}

// CreateFile creates an empty file, leaving an existing file untouched.
func (s *OSService) CreateFile(path, name string) error {
	target := filepath.Join(path, name)
	file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return ioError("create", target, err)
	}
	return ioError("create", target, file.Close())
}

func (s *OSService) CreateDirectory(path, name string) error {
	target := filepath.Join(path, name)
	return ioError("mkdir", target, os.Mkdir(target, 0o755))
}

// Move renames entry into destination, falling back to copy and remove when
// the rename crosses devices.
func (s *OSService) Move(entry Entry, destination string) error {
	src := entry.FullPath()
	dst := filepath.Join(destination, entry.DiskName())
	if src == dst {
		return nil
	}
	if err := os.Rename(src, dst); err != nil {
		logging.Debug("rename failed, copying instead",
			logging.String("src", src), logging.String("dst", dst), logging.Err(err))
		if err := copyPath(src, dst); err != nil {
			return ioError("move", src, err)
		}
		return ioError("move", src, os.RemoveAll(src))
	}
	return nil
}

// Copy copies entry (recursively for directories) into destination.
func (s *OSService) Copy(entry Entry, destination string) error {
	src := entry.FullPath()
	dst := filepath.Join(destination, entry.DiskName())
	if src == dst {
		return ioError("copy", src, errors.New("source and destination are the same"))
	}
	return ioError("copy", src, copyPath(src, dst))
}

func (s *OSService) IsExecutable(entry Entry) bool {
	if entry.IsDir {
		return false
	}
	return isExecutable(entry.FullPath())
}

func copyPath(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		if strings.HasPrefix(dst, src+string(filepath.Separator)) {
			return fmt.Errorf("cannot copy %s into itself", src)
		}
		return copyDir(src, dst, info.Mode().Perm())
	}
	return copyFile(src, dst, info.Mode().Perm())
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func copyDir(src, dst string, perm os.FileMode) error {
	if err := os.MkdirAll(dst, perm); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := copyPath(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

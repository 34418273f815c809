package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// OSFS implements FS on top of the operating system filesystem.
type OSFS struct{}

// NewOS returns an FS backed by the real filesystem.
func NewOS() *OSFS {
	return &OSFS{}
}

func (*OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (*OSFS) IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

func (*OSFS) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func (f *OSFS) IsGitRepository(path string) bool {
	// .git may be a file for worktrees and submodules, so any entry counts.
	return f.Exists(filepath.Join(path, ".git"))
}

func (*OSFS) CurrentDir() (string, error) {
	return os.Getwd()
}

func (*OSFS) HomeDir() (string, error) {
	return os.UserHomeDir()
}

func (*OSFS) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	children := make([]string, 0, len(entries))
	for _, entry := range entries {
		children = append(children, filepath.Join(path, entry.Name()))
	}
	return children, nil
}

func (*OSFS) CreateDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (*OSFS) CreateSymlink(target, link string) error {
	return os.Symlink(target, link)
}

func (f *OSFS) Copy(from, to string) error {
	info, err := os.Stat(from)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return f.copyDir(from, to)
	}
	return copyFile(from, to, info.Mode())
}

func (f *OSFS) copyDir(from, to string) error {
	if err := os.MkdirAll(to, 0o755); err != nil {
		return err
	}
	entries, err := os.ReadDir(from)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		src := filepath.Join(from, entry.Name())
		dst := filepath.Join(to, entry.Name())
		if err := f.Copy(src, dst); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(from, to string, mode os.FileMode) error {
	src, err := os.Open(from)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

func (*OSFS) Rename(from, to string) error {
	return os.Rename(from, to)
}

func (*OSFS) Remove(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}

func (f *OSFS) Normalize(path, base string) (string, error) {
	return normalize(f, path, base)
}

// normalize implements the shared path resolution rules so OSFS and MemFS
// behave identically.
func normalize(f FS, path, base string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("normalize: empty path")
	}

	switch {
	case path == "~":
		return f.HomeDir()
	case strings.HasPrefix(path, "~/"):
		home, err := f.HomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	case strings.HasPrefix(path, "~"):
		return "", fmt.Errorf("normalize: user-specific path %q is not supported", path)
	case filepath.IsAbs(path):
		return filepath.Clean(path), nil
	default:
		return filepath.Join(base, path), nil
	}
}

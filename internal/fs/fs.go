// Package fs abstracts the filesystem operations grm performs on the
// managed root. The share engine and scanner are written against the FS
// interface so they can be exercised with an in-memory filesystem in tests;
// OSFS is the adapter used by the CLI.
package fs

// FS is the filesystem capability consumed by the scanner and the shared
// resource manager. All paths are absolute unless stated otherwise.
type FS interface {
	// Exists reports whether any entry is present at path. Symlinks are
	// followed, so a dangling symlink reports false.
	Exists(path string) bool

	// IsSymlink reports whether path itself is a symbolic link,
	// regardless of whether its target exists.
	IsSymlink(path string) bool

	// IsDir reports whether path is a directory, following symlinks.
	IsDir(path string) bool

	// IsGitRepository reports whether path/.git exists. The .git entry may
	// be a directory (regular checkout) or a file (worktree, submodule).
	IsGitRepository(path string) bool

	// CurrentDir returns the process working directory.
	CurrentDir() (string, error)

	// HomeDir returns the user's home directory.
	HomeDir() (string, error)

	// ReadDir returns the immediate children of path as full paths,
	// in no particular order.
	ReadDir(path string) ([]string, error)

	// CreateDir creates path along with any missing ancestors.
	CreateDir(path string) error

	// CreateSymlink creates a symbolic link at link pointing to target.
	CreateSymlink(target, link string) error

	// Copy copies from to to: recursively for directories, byte-for-byte
	// for files. Symlinked sources are read through their target.
	Copy(from, to string) error

	// Rename moves from to to, atomically where the OS supports it.
	Rename(from, to string) error

	// Remove deletes path: recursively for directories, a single unlink
	// for files and symlinks.
	Remove(path string) error

	// Normalize resolves path to an absolute path: "~" and "~/..." expand
	// to the home directory, absolute paths are kept as-is and relative
	// paths are resolved against base.
	Normalize(path, base string) (string, error)
}

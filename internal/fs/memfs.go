package fs

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// MemFS is an in-memory FS implementation used by tests. It models files,
// directories and symbolic links and follows the same contract as OSFS,
// including symlink-following Exists and recursive Copy/Remove.
type MemFS struct {
	mu      sync.Mutex
	entries map[string]*memEntry
	cwd     string
	home    string
}

type memEntry struct {
	dir  bool
	link string // symlink target when non-empty
	data []byte
}

// NewMem returns an empty in-memory filesystem containing only "/".
func NewMem() *MemFS {
	return &MemFS{
		entries: map[string]*memEntry{"/": {dir: true}},
		cwd:     "/",
		home:    "/home/user",
	}
}

// SetCurrentDir sets the directory returned by CurrentDir.
func (m *MemFS) SetCurrentDir(path string) { m.cwd = filepath.Clean(path) }

// SetHomeDir sets the directory returned by HomeDir.
func (m *MemFS) SetHomeDir(path string) { m.home = filepath.Clean(path) }

// AddDir creates a directory and its ancestors.
func (m *MemFS) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mkdirAll(filepath.Clean(path))
}

// AddFile creates a file with the given content, creating parent directories.
func (m *MemFS) AddFile(path string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.mkdirAll(filepath.Dir(path))
	m.entries[path] = &memEntry{data: append([]byte(nil), content...)}
}

// AddSymlink creates a symlink at link pointing to target, creating parent
// directories of link.
func (m *MemFS) AddSymlink(target, link string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	link = filepath.Clean(link)
	m.mkdirAll(filepath.Dir(link))
	m.entries[link] = &memEntry{link: filepath.Clean(target)}
}

// AddGitRepo creates a directory containing a .git entry.
func (m *MemFS) AddGitRepo(path string) {
	m.AddDir(filepath.Join(path, ".git"))
}

// ReadFile returns the content of a file, following symlinks.
func (m *MemFS) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, _ := m.resolve(filepath.Clean(path))
	if entry == nil || entry.dir {
		return nil, fmt.Errorf("read %s: not a file", path)
	}
	return append([]byte(nil), entry.data...), nil
}

// mkdirAll creates path and any missing ancestors. An ancestor that exists
// as a file fails with ENOTDIR semantics, like os.MkdirAll, before anything
// is created.
func (m *MemFS) mkdirAll(path string) error {
	var missing []string
	for p := path; ; p = filepath.Dir(p) {
		if e, ok := m.entries[p]; ok {
			if !e.dir {
				return fmt.Errorf("mkdir %s: not a directory", p)
			}
			break
		}
		missing = append(missing, p)
		if p == filepath.Dir(p) {
			break
		}
	}
	for _, dir := range missing {
		m.entries[dir] = &memEntry{dir: true}
	}
	return nil
}

// resolve follows symlinks at the final path component and returns the
// terminal entry with its resolved path, or nil if the chain dangles.
func (m *MemFS) resolve(path string) (*memEntry, string) {
	for range 40 {
		entry, ok := m.entries[path]
		if !ok {
			return nil, ""
		}
		if entry.link == "" {
			return entry, path
		}
		path = entry.link
	}
	return nil, ""
}

func (m *MemFS) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, _ := m.resolve(filepath.Clean(path))
	return entry != nil
}

func (m *MemFS) IsSymlink(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[filepath.Clean(path)]
	return ok && entry.link != ""
}

func (m *MemFS) IsDir(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, _ := m.resolve(filepath.Clean(path))
	return entry != nil && entry.dir
}

func (m *MemFS) IsGitRepository(path string) bool {
	return m.Exists(filepath.Join(path, ".git"))
}

func (m *MemFS) CurrentDir() (string, error) { return m.cwd, nil }

func (m *MemFS) HomeDir() (string, error) { return m.home, nil }

func (m *MemFS) ReadDir(path string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	entry, resolved := m.resolve(path)
	if entry == nil || !entry.dir {
		return nil, fmt.Errorf("read dir %s: no such directory", path)
	}
	var children []string
	for p := range m.entries {
		if p != resolved && filepath.Dir(p) == resolved {
			children = append(children, p)
		}
	}
	// Sorted for reproducible tests; callers must not rely on order.
	sort.Strings(children)
	return children, nil
}

func (m *MemFS) CreateDir(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if entry, ok := m.entries[path]; ok && !entry.dir {
		return fmt.Errorf("mkdir %s: not a directory", path)
	}
	return m.mkdirAll(path)
}

func (m *MemFS) CreateSymlink(target, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	link = filepath.Clean(link)
	if _, ok := m.entries[link]; ok {
		return fmt.Errorf("symlink %s: file exists", link)
	}
	parent, ok := m.entries[filepath.Dir(link)]
	if !ok || !parent.dir {
		return fmt.Errorf("symlink %s: no such directory", filepath.Dir(link))
	}
	m.entries[link] = &memEntry{link: filepath.Clean(target)}
	return nil
}

func (m *MemFS) Copy(from, to string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	from = filepath.Clean(from)
	to = filepath.Clean(to)

	entry, resolved := m.resolve(from)
	if entry == nil {
		return fmt.Errorf("copy %s: no such file or directory", from)
	}
	if !entry.dir {
		if err := m.mkdirAll(filepath.Dir(to)); err != nil {
			return err
		}
		m.entries[to] = &memEntry{data: append([]byte(nil), entry.data...)}
		return nil
	}

	if err := m.mkdirAll(to); err != nil {
		return err
	}
	prefix := resolved + "/"
	// Snapshot keys first: copying into a subtree of itself is not supported.
	var subtree []string
	for p := range m.entries {
		if strings.HasPrefix(p, prefix) {
			subtree = append(subtree, p)
		}
	}
	for _, p := range subtree {
		src := m.entries[p]
		dst := filepath.Join(to, strings.TrimPrefix(p, prefix))
		m.entries[dst] = &memEntry{dir: src.dir, link: src.link, data: append([]byte(nil), src.data...)}
	}
	return nil
}

func (m *MemFS) Rename(from, to string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	from = filepath.Clean(from)
	to = filepath.Clean(to)

	entry, ok := m.entries[from]
	if !ok {
		return fmt.Errorf("rename %s: no such file or directory", from)
	}
	parent, ok := m.entries[filepath.Dir(to)]
	if !ok || !parent.dir {
		return fmt.Errorf("rename %s: no such directory", filepath.Dir(to))
	}

	m.entries[to] = entry
	delete(m.entries, from)

	prefix := from + "/"
	var subtree []string
	for p := range m.entries {
		if strings.HasPrefix(p, prefix) {
			subtree = append(subtree, p)
		}
	}
	for _, p := range subtree {
		m.entries[filepath.Join(to, strings.TrimPrefix(p, prefix))] = m.entries[p]
		delete(m.entries, p)
	}
	return nil
}

func (m *MemFS) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if _, ok := m.entries[path]; !ok {
		return fmt.Errorf("remove %s: no such file or directory", path)
	}
	delete(m.entries, path)
	prefix := path + "/"
	for p := range m.entries {
		if strings.HasPrefix(p, prefix) {
			delete(m.entries, p)
		}
	}
	return nil
}

func (m *MemFS) Normalize(path, base string) (string, error) {
	return normalize(m, path, base)
}

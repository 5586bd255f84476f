// Package fsutil abstracts the filesystem operations the dataset needs so
// tests can run against an in-memory tree instead of real downloads.
package fsutil

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// FileSystem is the read-mostly view the dataset uses to reach manifests,
// label files and rasters. Use OSFileSystem in production and
// MemoryFileSystem in tests.
type FileSystem interface {
	// Open opens the named file for reading.
	Open(name string) (fs.File, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// ReadDir lists the entries of the named directory.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Stat returns a FileInfo describing the named file.
	Stat(name string) (fs.FileInfo, error)

	// Exists reports whether a file or directory exists.
	Exists(name string) bool

	// MkdirAll creates a directory and all necessary parents.
	MkdirAll(path string, perm os.FileMode) error

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// OSFileSystem implements FileSystem using the os package.
type OSFileSystem struct{}

// Open opens the named file.
func (OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the named file.
func (OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// ReadDir lists the named directory.
func (OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Stat returns file info for the named file.
func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Exists checks if a file exists.
func (OSFileSystem) Exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// MkdirAll creates a directory path.
func (OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WriteFile writes data to the named file.
func (OSFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// MemoryFileSystem is an in-memory FileSystem for tests. Directories are
// implicit: writing "a/b/c.tif" makes "a" and "a/b" visible to Stat, Exists
// and ReadDir.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memFile
}

type memFile struct {
	data    []byte
	mode    os.FileMode
	modTime time.Time
}

// NewMemoryFileSystem creates an empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{files: make(map[string]*memFile)}
}

// Open opens a file for reading.
func (m *MemoryFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	f, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return &memFileHandle{
		info:   memFileInfo{name: filepath.Base(name), size: int64(len(f.data)), mode: f.mode, modTime: f.modTime},
		reader: strings.NewReader(string(f.data)),
	}, nil
}

// ReadFile returns a copy of the named file's contents.
func (m *MemoryFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	f, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(f.data))
	copy(out, f.data)
	return out, nil
}

// ReadDir lists the immediate children of the named directory, sorted by
// name the way os.ReadDir sorts.
func (m *MemoryFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	prefix := name + string(filepath.Separator)
	if name == "." {
		prefix = ""
	}

	seen := make(map[string]bool)
	var entries []fs.DirEntry
	for path, f := range m.files {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		rest := strings.TrimPrefix(path, prefix)
		parts := strings.SplitN(rest, string(filepath.Separator), 2)
		child := parts[0]
		if seen[child] {
			continue
		}
		seen[child] = true
		isDir := len(parts) > 1
		info := memFileInfo{name: child, mode: f.mode, modTime: f.modTime}
		if isDir {
			info.mode = fs.ModeDir | 0o755
		} else {
			info.size = int64(len(f.data))
		}
		entries = append(entries, memDirEntry{info: info})
	}
	if len(entries) == 0 && !m.dirExistsLocked(name) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// Stat returns info for a file or implicit directory.
func (m *MemoryFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	if f, ok := m.files[name]; ok {
		return memFileInfo{name: filepath.Base(name), size: int64(len(f.data)), mode: f.mode, modTime: f.modTime}, nil
	}
	if m.dirExistsLocked(name) {
		return memFileInfo{name: filepath.Base(name), mode: fs.ModeDir | 0o755}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

// Exists reports whether a file or implicit directory exists.
func (m *MemoryFileSystem) Exists(name string) bool {
	_, err := m.Stat(name)
	return err == nil
}

// MkdirAll records an otherwise-empty directory by dropping a marker file
// into it, since directories are implicit in the path map.
func (m *MemoryFileSystem) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	marker := filepath.Join(path, ".keep")
	if _, ok := m.files[marker]; !ok {
		m.files[marker] = &memFile{mode: 0o644, modTime: time.Now()}
	}
	return nil
}

// WriteFile stores data under the given name.
func (m *MemoryFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[name] = &memFile{data: stored, mode: perm, modTime: time.Now()}
	return nil
}

func (m *MemoryFileSystem) dirExistsLocked(name string) bool {
	prefix := filepath.Clean(name) + string(filepath.Separator)
	for path := range m.files {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// memFileHandle adapts a stored byte slice to fs.File.
type memFileHandle struct {
	info   memFileInfo
	reader *strings.Reader
	closed bool
}

func (h *memFileHandle) Stat() (fs.FileInfo, error) { return h.info, nil }

func (h *memFileHandle) Read(p []byte) (int, error) {
	if h.closed {
		return 0, fmt.Errorf("read %s: %w", h.info.name, fs.ErrClosed)
	}
	return h.reader.Read(p)
}

func (h *memFileHandle) Close() error {
	if h.closed {
		return fmt.Errorf("close %s: %w", h.info.name, fs.ErrClosed)
	}
	h.closed = true
	return nil
}

var _ io.Reader = (*memFileHandle)(nil)

type memFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (i memFileInfo) Name() string       { return i.name }
func (i memFileInfo) Size() int64        { return i.size }
func (i memFileInfo) Mode() fs.FileMode  { return i.mode }
func (i memFileInfo) ModTime() time.Time { return i.modTime }
func (i memFileInfo) IsDir() bool        { return i.mode.IsDir() }
func (i memFileInfo) Sys() any           { return nil }

type memDirEntry struct {
	info memFileInfo
}

func (e memDirEntry) Name() string               { return e.info.name }
func (e memDirEntry) IsDir() bool                { return e.info.IsDir() }
func (e memDirEntry) Type() fs.FileMode          { return e.info.Mode().Type() }
func (e memDirEntry) Info() (fs.FileInfo, error) { return e.info, nil }

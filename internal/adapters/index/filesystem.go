package index

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem abstracts the filesystem operations the parser needs.
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// Open opens the file at path for reading.
	Open(path string) (fs.File, error)
}

// OSFS implements FileSystem using the standard library.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given path.
func (o *OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Open opens the file at path for reading.
func (o *OSFS) Open(path string) (fs.File, error) {
	// #nosec G304 -- path is the configured mirror index
	return os.Open(path)
}

// MapFSAdapter adapts an fs.FS (typically fstest.MapFS) to FileSystem.
type MapFSAdapter struct {
	FS   fs.FS
	Root string // simulated root path
}

// NewMapFSAdapter creates a new MapFSAdapter with the given root path and filesystem.
func NewMapFSAdapter(root string, fsys fs.FS) *MapFSAdapter {
	return &MapFSAdapter{
		FS:   fsys,
		Root: root,
	}
}

// Stat returns file info for the given path.
func (m *MapFSAdapter) Stat(path string) (fs.FileInfo, error) {
	return fs.Stat(m.FS, m.toRelPath(path))
}

// Open opens the file at path for reading.
func (m *MapFSAdapter) Open(path string) (fs.File, error) {
	return m.FS.Open(m.toRelPath(path))
}

// toRelPath converts a path to the slash-separated form fs.FS expects.
// Paths outside Root are returned unchanged so that fs operations fail with "file does not exist".
func (m *MapFSAdapter) toRelPath(path string) string {
	path = filepath.Clean(path)
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}

	if m.Root != "/" && path != m.Root && !strings.HasPrefix(path, m.Root+string(filepath.Separator)) {
		return path
	}

	rel := strings.TrimPrefix(path, m.Root)
	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	if rel == "" {
		return "."
	}
	return filepath.ToSlash(rel)
}

package walk

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/karrick/godirwalk"
	"github.com/spf13/afero"
)

// Entry is one child of a listed directory.
type Entry struct {
	Path  string // Parent path joined with the entry name
	IsDir bool   // True for directories and symlinks resolving to directories
}

// Lister lists the immediate children of a directory.
type Lister interface {
	List(dir string) ([]Entry, error)
}

// DirentLister lists directories on the OS filesystem with godirwalk.
// Entries come back in the order the filesystem returns them unless
// Sorted is set.
type DirentLister struct {
	Sorted bool

	scratch []byte
}

// NewDirentLister returns a DirentLister with its scratch buffer allocated.
func NewDirentLister() *DirentLister {
	return &DirentLister{scratch: make([]byte, godirwalk.MinimumScratchBufferSize)}
}

// List implements Lister.
func (l *DirentLister) List(dir string) ([]Entry, error) {
	if l.scratch == nil {
		l.scratch = make([]byte, godirwalk.MinimumScratchBufferSize)
	}
	dirents, err := godirwalk.ReadDirents(dir, l.scratch)
	if err != nil {
		return nil, fmt.Errorf("cannot list %q: %w", dir, err)
	}
	if l.Sorted {
		sort.Sort(dirents)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		// A dangling symlink is reported as a file.
		isDir, _ := de.IsDirOrSymlinkToDir()
		entries = append(entries, Entry{
			Path:  filepath.Join(dir, de.Name()),
			IsDir: isDir,
		})
	}
	return entries, nil
}

// FsLister lists directories of an afero filesystem. Entries are sorted by name.
type FsLister struct {
	Fs afero.Fs
}

// NewFsLister returns a Lister backed by fsys.
func NewFsLister(fsys afero.Fs) *FsLister {
	return &FsLister{Fs: fsys}
}

// List implements Lister.
func (l *FsLister) List(dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(l.Fs, dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list %q: %w", dir, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		path := filepath.Join(dir, info.Name())
		isDir := info.IsDir()
		if info.Mode()&os.ModeSymlink != 0 {
			if target, err := l.Fs.Stat(path); err == nil {
				isDir = target.IsDir()
			}
		}
		entries = append(entries, Entry{Path: path, IsDir: isDir})
	}
	return entries, nil
}

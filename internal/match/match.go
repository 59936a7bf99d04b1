// Package match implements the path checks that predicate factories are
// built from: file name patterns, sniffed media types and ancestor
// directory names.
//
// Names are NFC-normalised before they are matched, so a pattern written
// in composed form matches names stored decomposed (as on HFS+).
package match

import (
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"
)

// SniffLen is the number of leading bytes read to detect a media type.
const SniffLen = 256

// Matcher runs path checks against a filesystem.
type Matcher struct {
	fs afero.Fs
}

// New returns a Matcher over fsys. A nil fsys means the OS filesystem.
func New(fsys afero.Fs) *Matcher {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Matcher{fs: fsys}
}

var osMatcher = New(nil)

// NameMatches reports whether path is a non-directory whose final name
// component matches pattern. It uses the OS filesystem.
func NameMatches(path string, pattern *regexp.Regexp) bool {
	return osMatcher.NameMatches(path, pattern)
}

// HasMediaType reports whether path is a non-directory whose sniffed
// media type is mediaType. It uses the OS filesystem.
func HasMediaType(path, mediaType string) bool {
	return osMatcher.HasMediaType(path, mediaType)
}

// AncestorMatches reports whether any component of path's parent
// directory matches pattern. It panics if path has no parent.
func AncestorMatches(path string, pattern *regexp.Regexp) bool {
	return osMatcher.AncestorMatches(path, pattern)
}

// IsDir reports whether path names a directory, following symlinks.
// Paths that cannot be stat'ed are not directories.
func (m *Matcher) IsDir(path string) bool {
	info, err := m.fs.Stat(path)
	return err == nil && info.IsDir()
}

// NameMatches reports whether path is a non-directory whose final name
// component matches pattern. Directories never match.
func (m *Matcher) NameMatches(path string, pattern *regexp.Regexp) bool {
	if m.IsDir(path) {
		return false
	}
	return pattern.MatchString(norm.NFC.String(filepath.Base(path)))
}

// HasMediaType reports whether path is a non-directory whose content,
// sniffed from at most SniffLen leading bytes, has media type mediaType.
// Parameters such as charset are ignored and aliases are accepted.
//
// A short read is not an error: detection runs on whatever was read,
// possibly nothing. A file that cannot be opened has no media type.
func (m *Matcher) HasMediaType(path, mediaType string) bool {
	if m.IsDir(path) {
		return false
	}
	head, ok := m.sniff(path)
	if !ok {
		return false
	}
	return mimetype.Detect(head).Is(mediaType)
}

// sniff reads up to SniffLen bytes from the start of path. The file is
// closed before sniff returns.
func (m *Matcher) sniff(path string) ([]byte, bool) {
	f, err := m.fs.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	// Short and failed reads keep whatever bytes arrived.
	buf := make([]byte, SniffLen)
	n, _ := io.ReadFull(f, buf)
	return buf[:n], true
}

// AncestorMatches reports whether any component of path's parent
// directory matches pattern. A bare name has an empty parent and never
// matches. It panics if path is a filesystem root or empty, since such a
// path has no parent at all.
func (m *Matcher) AncestorMatches(path string, pattern *regexp.Regexp) bool {
	for _, c := range parentComponents(path) {
		if pattern.MatchString(norm.NFC.String(c)) {
			return true
		}
	}
	return false
}

// parentComponents splits the parent of path into its components. An
// absolute parent starts with the separator as its own component.
func parentComponents(path string) []string {
	if path == "" {
		panic("match: empty path has no parent")
	}
	clean := filepath.Clean(path)
	vol := filepath.VolumeName(clean)
	if clean == vol+string(filepath.Separator) || clean == vol {
		panic("match: root path " + path + " has no parent")
	}
	if !strings.ContainsRune(clean[len(vol):], filepath.Separator) {
		return nil
	}

	parent := filepath.Dir(clean)
	rest := parent[len(vol):]

	var components []string
	if strings.HasPrefix(rest, string(filepath.Separator)) {
		components = append(components, vol+string(filepath.Separator))
		rest = rest[1:]
	} else if vol != "" {
		components = append(components, vol)
	}
	for _, part := range strings.Split(rest, string(filepath.Separator)) {
		if part != "" {
			components = append(components, part)
		}
	}
	return components
}

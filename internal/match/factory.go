package match

import (
	"fmt"
	"regexp"

	"github.com/TFMV/treewalk/internal/walk"
	"golang.org/x/text/unicode/norm"
)

// compile NFC-normalises and compiles pattern.
func compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(norm.NFC.String(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}

// ExcludeName returns a file rule rejecting files whose name matches pattern.
func (m *Matcher) ExcludeName(pattern string) (walk.Predicate, error) {
	re, err := compile(pattern)
	if err != nil {
		return walk.None, err
	}
	return walk.File(func(p string) bool {
		return m.IsDir(p) || !m.NameMatches(p, re)
	}), nil
}

// IncludeName returns a file rule admitting only files whose name matches pattern.
func (m *Matcher) IncludeName(pattern string) (walk.Predicate, error) {
	re, err := compile(pattern)
	if err != nil {
		return walk.None, err
	}
	return walk.File(func(p string) bool {
		return m.IsDir(p) || m.NameMatches(p, re)
	}), nil
}

// ExcludeFormat returns a file rule rejecting files sniffed as mediaType.
func (m *Matcher) ExcludeFormat(mediaType string) walk.Predicate {
	return walk.File(func(p string) bool {
		return m.IsDir(p) || !m.HasMediaType(p, mediaType)
	})
}

// IncludeFormat returns a file rule admitting only files sniffed as mediaType.
func (m *Matcher) IncludeFormat(mediaType string) walk.Predicate {
	return walk.File(func(p string) bool {
		return m.IsDir(p) || m.HasMediaType(p, mediaType)
	})
}

// ExcludeParent returns a hard directory rule that fails for any entry
// with an ancestor directory matching pattern. Because the rule is hard,
// the first failing entry ends the listing of its directory.
func (m *Matcher) ExcludeParent(pattern string) (walk.Predicate, error) {
	re, err := compile(pattern)
	if err != nil {
		return walk.None, err
	}
	return walk.DirHard(func(p string) bool {
		return !m.AncestorMatches(p, re)
	}), nil
}

// IncludeParent returns a soft directory rule admitting only files with
// an ancestor directory matching pattern.
func (m *Matcher) IncludeParent(pattern string) (walk.Predicate, error) {
	re, err := compile(pattern)
	if err != nil {
		return walk.None, err
	}
	return walk.DirSoft(func(p string) bool {
		return m.AncestorMatches(p, re)
	}), nil
}

// ExcludeName is Matcher.ExcludeName on the OS filesystem.
func ExcludeName(pattern string) (walk.Predicate, error) { return osMatcher.ExcludeName(pattern) }

// IncludeName is Matcher.IncludeName on the OS filesystem.
func IncludeName(pattern string) (walk.Predicate, error) { return osMatcher.IncludeName(pattern) }

// ExcludeFormat is Matcher.ExcludeFormat on the OS filesystem.
func ExcludeFormat(mediaType string) walk.Predicate { return osMatcher.ExcludeFormat(mediaType) }

// IncludeFormat is Matcher.IncludeFormat on the OS filesystem.
func IncludeFormat(mediaType string) walk.Predicate { return osMatcher.IncludeFormat(mediaType) }

// ExcludeParent is Matcher.ExcludeParent on the OS filesystem.
func ExcludeParent(pattern string) (walk.Predicate, error) { return osMatcher.ExcludeParent(pattern) }

// IncludeParent is Matcher.IncludeParent on the OS filesystem.
func IncludeParent(pattern string) (walk.Predicate, error) { return osMatcher.IncludeParent(pattern) }

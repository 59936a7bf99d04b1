package walk

import (
	"context"
	"io"
	"regexp"

	"github.com/TFMV/treewalk/internal/match"
	internal "github.com/TFMV/treewalk/internal/walk"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Re-export the engine types from the internal package
type (
	// Walker walks a directory tree and dispatches admitted files to callbacks.
	Walker = internal.Walker

	// Predicate is a role-tagged path check.
	Predicate = internal.Predicate

	// PredicateFunc is the function wrapped by a Predicate.
	PredicateFunc = internal.PredicateFunc

	// Role identifies when a Predicate applies.
	Role = internal.Role

	// Callback is invoked for every admitted file.
	Callback = internal.Callback

	// Entry is one child of a listed directory.
	Entry = internal.Entry

	// Lister lists the immediate children of a directory.
	Lister = internal.Lister

	// DirentLister lists OS directories with godirwalk.
	DirentLister = internal.DirentLister

	// FsLister lists directories of an afero filesystem.
	FsLister = internal.FsLister

	// LogLevel defines the verbosity of logging.
	LogLevel = internal.LogLevel

	// WatchOptions configures Watch.
	WatchOptions = internal.WatchOptions

	// Matcher runs name, media type and ancestor checks against a filesystem.
	Matcher = match.Matcher
)

// Re-export the constants
const (
	RoleNone    = internal.RoleNone
	RoleDirHard = internal.RoleDirHard
	RoleDirSoft = internal.RoleDirSoft
	RoleFile    = internal.RoleFile

	LogLevelError = internal.LogLevelError
	LogLevelWarn  = internal.LogLevelWarn
	LogLevelInfo  = internal.LogLevelInfo
	LogLevelDebug = internal.LogLevelDebug

	DefaultDebounce = internal.DefaultDebounce
	SniffLen        = match.SniffLen
)

var (
	// None is the unset predicate; evaluating it panics.
	None = internal.None

	// ErrNotDirectory is returned by CheckRoot for non-directory roots.
	ErrNotDirectory = internal.ErrNotDirectory
)

// New returns a Walker rooted at root.
func New(root string) *Walker {
	return internal.New(root)
}

// DirHard wraps fn as a hard directory rule.
func DirHard(fn PredicateFunc) Predicate { return internal.DirHard(fn) }

// DirSoft wraps fn as a soft directory rule.
func DirSoft(fn PredicateFunc) Predicate { return internal.DirSoft(fn) }

// File wraps fn as a file rule.
func File(fn PredicateFunc) Predicate { return internal.File(fn) }

// CheckRoot verifies that root exists and is a directory.
func CheckRoot(root string) error {
	return internal.CheckRoot(root)
}

// NewDirentLister returns a godirwalk-backed Lister.
func NewDirentLister() *DirentLister {
	return internal.NewDirentLister()
}

// NewFsLister returns a Lister backed by fsys.
func NewFsLister(fsys afero.Fs) *FsLister {
	return internal.NewFsLister(fsys)
}

// NewLogger creates a zap logger with the specified log level.
func NewLogger(level LogLevel) *zap.Logger {
	return internal.NewLogger(level)
}

// PrintAction returns a callback printing each path on its own line.
func PrintAction(w io.Writer) Callback {
	return internal.PrintAction(w)
}

// FormatAction returns a callback writing template expanded for each path.
func FormatAction(w io.Writer, template string) Callback {
	return internal.FormatAction(w, template)
}

// ExecAction returns a callback running a command template for each path.
func ExecAction(template string, logger *zap.Logger, stdout io.Writer) Callback {
	return internal.ExecAction(template, logger, stdout)
}

// ExpandTemplate replaces {}, {base}, {dir} and {ext} in template.
func ExpandTemplate(template, path string) string {
	return internal.ExpandTemplate(template, path)
}

// Watch walks w once and again whenever its tree changes.
func Watch(ctx context.Context, w *Walker, opts WatchOptions) error {
	return internal.Watch(ctx, w, opts)
}

// NewMatcher returns a Matcher over fsys; nil means the OS filesystem.
func NewMatcher(fsys afero.Fs) *Matcher {
	return match.New(fsys)
}

// NameMatches reports whether path is a non-directory whose name matches pattern.
func NameMatches(path string, pattern *regexp.Regexp) bool {
	return match.NameMatches(path, pattern)
}

// HasMediaType reports whether path is a non-directory sniffed as mediaType.
func HasMediaType(path, mediaType string) bool {
	return match.HasMediaType(path, mediaType)
}

// AncestorMatches reports whether a component of path's parent matches
// pattern. It panics for a root path.
func AncestorMatches(path string, pattern *regexp.Regexp) bool {
	return match.AncestorMatches(path, pattern)
}

// ExcludeName returns a file rule rejecting names matching pattern.
func ExcludeName(pattern string) (Predicate, error) { return match.ExcludeName(pattern) }

// IncludeName returns a file rule admitting only names matching pattern.
func IncludeName(pattern string) (Predicate, error) { return match.IncludeName(pattern) }

// ExcludeFormat returns a file rule rejecting files sniffed as mediaType.
func ExcludeFormat(mediaType string) Predicate { return match.ExcludeFormat(mediaType) }

// IncludeFormat returns a file rule admitting only files sniffed as mediaType.
func IncludeFormat(mediaType string) Predicate { return match.IncludeFormat(mediaType) }

// ExcludeParent returns a hard directory rule failing under ancestors matching pattern.
func ExcludeParent(pattern string) (Predicate, error) { return match.ExcludeParent(pattern) }

// IncludeParent returns a soft directory rule admitting only files under ancestors matching pattern.
func IncludeParent(pattern string) (Predicate, error) { return match.IncludeParent(pattern) }

package walk

import (
	"math"

	"go.uber.org/zap"
)

// Callback is invoked with the path of every admitted file.
type Callback func(path string)

// Walker walks a directory tree from a root location, admitting files
// through its predicates and handing admitted files to its callbacks.
//
// A Walker is configured with the With* methods before Walk is called
// and must not be reconfigured while a walk is running.
type Walker struct {
	root       string
	minDepth   *int
	maxDepth   *int
	callbacks  []Callback
	predicates []Predicate

	lister Lister
	logger *zap.Logger
}

// New returns a Walker rooted at root with no depth bounds, callbacks
// or predicates. Directories are listed from the OS filesystem.
func New(root string) *Walker {
	return &Walker{
		root:   root,
		lister: NewDirentLister(),
		logger: zap.NewNop(),
	}
}

// WithMinDepth sets the minimum depth at which files are dispatched to
// callbacks. Directories above it are still descended into. Negative
// values are treated as zero.
func (w *Walker) WithMinDepth(depth int) *Walker {
	if depth < 0 {
		depth = 0
	}
	w.minDepth = &depth
	return w
}

// WithMaxDepth sets the exclusive maximum depth. A directory at this
// depth is not listed. A negative depth removes the bound.
func (w *Walker) WithMaxDepth(depth int) *Walker {
	if depth < 0 {
		w.maxDepth = nil
		return w
	}
	w.maxDepth = &depth
	return w
}

// WithCallback appends cb to the callbacks fired for each admitted file.
func (w *Walker) WithCallback(cb Callback) *Walker {
	w.callbacks = append(w.callbacks, cb)
	return w
}

// WithPredicate appends p to the predicate pipeline.
func (w *Walker) WithPredicate(p Predicate) *Walker {
	w.predicates = append(w.predicates, p)
	return w
}

// WithLister replaces the directory listing backend.
func (w *Walker) WithLister(l Lister) *Walker {
	if l != nil {
		w.lister = l
	}
	return w
}

// WithLogger sets the logger used for debug tracing and listing failures.
func (w *Walker) WithLogger(logger *zap.Logger) *Walker {
	if logger != nil {
		w.logger = logger
	}
	return w
}

// Root returns the configured root location.
func (w *Walker) Root() string {
	return w.root
}

// MinDepth returns the effective minimum depth.
func (w *Walker) MinDepth() int {
	if w.minDepth == nil {
		return 0
	}
	return *w.minDepth
}

// MaxDepth returns the effective maximum depth; math.MaxInt when unbounded.
func (w *Walker) MaxDepth() int {
	if w.maxDepth == nil {
		return math.MaxInt
	}
	return *w.maxDepth
}

// Walk traverses the tree from the root at depth zero. The first
// directory listing failure aborts the walk and is returned; callbacks
// that already fired are not undone.
func (w *Walker) Walk() error {
	w.logger.Debug("starting walk",
		zap.String("root", w.root),
		zap.Int("min_depth", w.MinDepth()),
		zap.Int("max_depth", w.MaxDepth()),
		zap.Int("callbacks", len(w.callbacks)),
		zap.Int("predicates", len(w.predicates)),
	)

	err := w.walkAt(w.root, 0)
	if err != nil {
		w.logger.Error("walk aborted", zap.String("root", w.root), zap.Error(err))
	}
	return err
}

func (w *Walker) walkAt(location string, depth int) error {
	if depth >= w.MaxDepth() {
		return nil
	}

	entries, err := w.lister.List(location)
	if err != nil {
		return err
	}
	w.logger.Debug("listed directory",
		zap.String("path", location),
		zap.Int("depth", depth),
		zap.Int("entries", len(entries)),
	)

	for _, entry := range entries {
		if !w.holdDirHard(entry.Path) {
			// Hard rule failure ends this directory, not just this entry.
			w.logger.Debug("hard rule failed, leaving directory",
				zap.String("path", entry.Path),
				zap.String("dir", location),
			)
			break
		}
		if entry.IsDir {
			if err := w.walkAt(entry.Path, depth+1); err != nil {
				return err
			}
			continue
		}
		if depth < w.MinDepth() {
			continue
		}

		dirsValid := w.holdDirSoft(entry.Path)
		fileValid := w.holdFile(entry.Path)
		if !dirsValid || !fileValid {
			w.logger.Debug("file rejected",
				zap.String("path", entry.Path),
				zap.Bool("dir_soft", dirsValid),
				zap.Bool("file", fileValid),
			)
			continue
		}
		w.dispatch(entry.Path)
	}
	return nil
}

func (w *Walker) holdDirHard(path string) bool {
	return allHold(w.predicates, path, Predicate.IsDirHard)
}

func (w *Walker) holdDirSoft(path string) bool {
	return allHold(w.predicates, path, Predicate.IsDirSoft)
}

func (w *Walker) holdFile(path string) bool {
	return allHold(w.predicates, path, Predicate.IsFile)
}

func (w *Walker) dispatch(path string) {
	for _, cb := range w.callbacks {
		cb(path)
	}
}

package walk

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/karrick/godirwalk"
	"go.uber.org/zap"
)

// DefaultDebounce is how long Watch waits for the tree to go quiet
// before walking it again.
const DefaultDebounce = 250 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	// Quiet period after the last filesystem event before re-walking.
	// Zero means DefaultDebounce.
	Debounce time.Duration

	// Stop watching after this long. Zero means until ctx is done.
	Timeout time.Duration

	// Called after every walk with its 1-based run number and result.
	// A nil OnWalk ignores results; failed runs are logged either way.
	OnWalk func(run int, err error)

	Logger *zap.Logger
}

// Watch walks w once, then walks it again each time the tree under its
// root changes, until ctx is done or the timeout expires. Every run is a
// complete walk. An error from the first walk is returned immediately;
// errors from later runs are logged and reported through OnWalk.
func Watch(ctx context.Context, w *Walker, opts WatchOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	run := 0
	walkOnce := func() error {
		run++
		err := w.Walk()
		if opts.OnWalk != nil {
			opts.OnWalk(run, err)
		}
		return err
	}

	if err := walkOnce(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := addTree(watcher, w.Root()); err != nil {
		return fmt.Errorf("error watching directory %s: %w", w.Root(), err)
	}
	logger.Debug("watching", zap.String("root", w.Root()))

	timer := time.NewTimer(opts.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			logger.Debug("filesystem event", zap.String("path", event.Name), zap.String("op", event.Op.String()))

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(watcher, event.Name); err != nil {
						logger.Warn("cannot watch new directory", zap.String("path", event.Name), zap.Error(err))
					}
				}
			}
			timer.Reset(opts.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))

		case <-timer.C:
			if err := walkOnce(); err != nil {
				logger.Warn("walk failed", zap.Int("run", run), zap.Error(err))
			}

		case <-ctx.Done():
			return nil
		}
	}
}

// addTree registers dir and every directory below it with watcher.
func addTree(watcher *fsnotify.Watcher, dir string) error {
	return godirwalk.Walk(dir, &godirwalk.Options{
		Unsorted: true,
		Callback: func(path string, de *godirwalk.Dirent) error {
			if !de.IsDir() {
				return nil
			}
			return watcher.Add(path)
		},
		ErrorCallback: func(path string, err error) godirwalk.ErrorAction {
			return godirwalk.SkipNode
		},
	})
}

// Package walk is the importable face of treewalk: a depth-bounded
// directory walker that admits files through role-tagged predicates and
// hands admitted files to callbacks.
//
// Basic usage:
//
//	err := walk.New("/path/to/search").
//		WithMaxDepth(4).
//		WithCallback(func(path string) { fmt.Println(path) }).
//		Walk()
//
// Predicates:
//
//	noMain, _ := walk.ExcludeName("main.*")      // file rule
//	noScans, _ := walk.ExcludeParent("SCANS")    // hard directory rule
//	err := walk.New(root).
//		WithPredicate(noMain).
//		WithPredicate(noScans).
//		WithPredicate(walk.ExcludeFormat("image/png")).
//		WithCallback(walk.PrintAction(os.Stdout)).
//		Walk()
//
// A failing hard directory rule stops the listing of the directory that
// contains the failing entry: entries listed after it are never visited.
// Soft directory rules and file rules only skip the file being checked.
//
// Watching:
//
//	err := walk.Watch(ctx, w, walk.WatchOptions{Debounce: time.Second})
package walk

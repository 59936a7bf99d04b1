package walk

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotDirectory is returned by CheckRoot when the root exists but is
// not a directory.
var ErrNotDirectory = errors.New("not a directory")

// CheckRoot verifies that root exists and is a directory.
func CheckRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q: %w", root, ErrNotDirectory)
	}
	return nil
}

// Package scan enumerates the immediate subdirectories of a root folder.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/chmouel/repostatus/internal/log"
	"github.com/samber/lo"
)

// ErrRootNotFound is returned when the scan root does not exist.
var ErrRootNotFound = errors.New("root folder does not exist")

// Entry is one candidate subdirectory.
type Entry struct {
	Name string // Display name, root-relative
	Path string
}

// Subdirectories lists the directories directly under root, in the order
// os.ReadDir returns them. Symlinks to directories are included.
func Subdirectories(root string) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("stat root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read root %s: %w", root, err)
	}

	dirs := lo.Filter(dirEntries, func(e fs.DirEntry, _ int) bool {
		return e.Name() != "." && isDir(root, e)
	})
	log.Printf("scan: root=%s entries=%d dirs=%d", root, len(dirEntries), len(dirs))

	return lo.Map(dirs, func(e fs.DirEntry, _ int) Entry {
		return Entry{
			Name: DisplayName(root, e.Name()),
			Path: filepath.Join(root, e.Name()),
		}
	}), nil
}

func isDir(root string, e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(root, e.Name()))
	return err == nil && info.IsDir()
}

// DisplayName joins root and name. Join cleans the path, so a "." root
// yields the bare name.
func DisplayName(root, name string) string {
	return filepath.Join(root, name)
}

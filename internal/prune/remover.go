package prune

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/skelkit/skel/internal/output"
)

// PathRemover deletes a single path. Implementations never report failure.
type PathRemover interface {
	Remove(path string)
}

// Remover deletes paths relative to a project root. Removal is best-effort:
// missing paths are a no-op and failures are logged, never returned.
type Remover struct {
	// Root is the generated project directory all paths are relative to.
	Root string
}

// NewRemover creates a Remover rooted at dir.
func NewRemover(dir string) *Remover {
	return &Remover{Root: dir}
}

// Remove deletes rel under the root. Directories are removed recursively.
// Every lookup goes through an os.Root, so symlinked parents cannot lead
// the removal outside the project.
func (r *Remover) Remove(rel string) {
	if !filepath.IsLocal(filepath.FromSlash(rel)) {
		output.Warn("refusing to remove path outside project root", "path", rel)
		return
	}

	root, err := os.OpenRoot(r.Root)
	if err != nil {
		output.Warn("could not open project root", "root", r.Root, "error", err)
		return
	}
	defer root.Close()

	removeIn(root, filepath.FromSlash(rel))
}

// removeIn deletes path within root whether it is a file or a directory. A
// path that does not exist is left alone, and removal errors are swallowed.
func removeIn(root *os.Root, path string) {
	info, err := root.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		output.Warn("could not inspect path", "path", path, "error", err)
		return
	}

	if info.IsDir() {
		if err := root.RemoveAll(path); err != nil {
			output.Debug("partial directory removal", "path", path, "error", err)
			return
		}
		output.Debug("removed directory", "path", path)
		return
	}

	if err := root.Remove(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			output.Warn("could not remove file", "path", path, "error", err)
		}
		return
	}
	output.Debug("removed file", "path", path)
}

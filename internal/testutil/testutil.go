// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// MkTree creates a project tree under root. Entries ending in "/" become
// directories, everything else becomes a small file.
func MkTree(t *testing.T, root string, entries ...string) {
	t.Helper()
	for _, e := range entries {
		if strings.HasSuffix(e, "/") {
			if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(e)), 0o755); err != nil {
				t.Fatalf("failed to create dir %s: %v", e, err)
			}
			continue
		}
		WriteFile(t, root, e, "content of "+e+"\n")
	}
}

// Exists reports whether rel exists under root, without following symlinks.
func Exists(t *testing.T, root, rel string) bool {
	t.Helper()
	_, err := os.Lstat(filepath.Join(root, filepath.FromSlash(rel)))
	if err == nil {
		return true
	}
	if !os.IsNotExist(err) {
		t.Fatalf("failed to stat %s: %v", rel, err)
	}
	return false
}

// ListTree returns every file and directory under root as sorted
// slash-separated relative paths. Directories carry a trailing "/".
func ListTree(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk %s: %v", root, err)
	}
	sort.Strings(out)
	return out
}

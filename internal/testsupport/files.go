// Package testsupport builds filesystem fixtures for pipeline tests: trees
// of files with chosen contents and modification times, plus tree snapshots
// for mutation checks.
package testsupport

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

// WriteFile creates path (and its parent chain) with the given content.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteFileWithMtime creates path with the given content and modification
// time. Note that filesystems recording birth times keep the creation
// instant regardless; tests that depend on a specific year should pin the
// year resolver instead of relying on the mtime alone.
func WriteFileWithMtime(t testing.TB, path, content string, mtime time.Time) {
	t.Helper()

	WriteFile(t, path, content)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

// Snapshot captures every entry below root as a sorted list of
// root-relative paths, with directories suffixed by a separator. Two equal
// snapshots mean the tree structure did not change.
func Snapshot(t testing.TB, root string) []string {
	t.Helper()

	var entries []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}
		entries = append(entries, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot %s: %v", root, err)
	}
	sort.Strings(entries)
	return entries
}

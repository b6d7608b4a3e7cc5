package scan

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"yearsort/internal/logging"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func relPaths(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, filepath.ToSlash(e.Relative))
	}
	return out
}

func TestWalkEmitsDepthFirstInNameOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.txt"))
	writeFile(t, filepath.Join(root, "a", "y.txt"))
	writeFile(t, filepath.Join(root, "a", "x", "z.txt"))
	writeFile(t, filepath.Join(root, "c", "w.txt"))

	res := New(Options{}, logging.NewNop()).Walk(root)

	wantFiles := []string{"b.txt", "a/y.txt", "a/x/z.txt", "c/w.txt"}
	if got := relPaths(res.Candidates); !reflect.DeepEqual(got, wantFiles) {
		t.Errorf("candidates = %v, want %v", got, wantFiles)
	}

	wantDirs := []string{
		filepath.Join(root, "a"),
		filepath.Join(root, "a", "x"),
		filepath.Join(root, "c"),
	}
	if !reflect.DeepEqual(res.Dirs, wantDirs) {
		t.Errorf("dirs = %v, want %v", res.Dirs, wantDirs)
	}
}

func TestWalkPrunesYearDirsAtRootOnly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "2023", "old.txt"))
	writeFile(t, filepath.Join(root, "nested", "2023", "deep.txt"))

	res := New(Options{}, logging.NewNop()).Walk(root)

	if got := relPaths(res.Candidates); !reflect.DeepEqual(got, []string{"nested/2023/deep.txt"}) {
		t.Errorf("candidates = %v, want only the nested file", got)
	}
	if !reflect.DeepEqual(res.PrunedYearDirs, []string{"2023"}) {
		t.Errorf("pruned = %v, want [2023]", res.PrunedYearDirs)
	}
	for _, dir := range res.Dirs {
		if dir == filepath.Join(root, "2023") {
			t.Errorf("pruned year directory listed as visited: %s", dir)
		}
	}
}

func TestWalkSkipsHiddenByDefault(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".hidden.txt"))
	writeFile(t, filepath.Join(root, ".git", "config"))
	writeFile(t, filepath.Join(root, "seen.txt"))

	res := New(Options{}, logging.NewNop()).Walk(root)

	if got := relPaths(res.Candidates); !reflect.DeepEqual(got, []string{"seen.txt"}) {
		t.Errorf("candidates = %v, want only seen.txt", got)
	}
	if res.SkippedHidden != 2 {
		t.Errorf("SkippedHidden = %d, want 2", res.SkippedHidden)
	}
}

func TestWalkIncludeHidden(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".hidden.txt"))
	writeFile(t, filepath.Join(root, ".git", "config"))

	res := New(Options{IncludeHidden: true}, logging.NewNop()).Walk(root)

	want := []string{".git/config", ".hidden.txt"}
	if got := relPaths(res.Candidates); !reflect.DeepEqual(got, want) {
		t.Errorf("candidates = %v, want %v", got, want)
	}
	if res.SkippedHidden != 0 {
		t.Errorf("SkippedHidden = %d, want 0", res.SkippedHidden)
	}
}

func TestWalkSymlinkPolicy(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "target.txt"))
	if err := os.Symlink(filepath.Join(root, "target.txt"), filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	res := New(Options{}, logging.NewNop()).Walk(root)
	if got := relPaths(res.Candidates); !reflect.DeepEqual(got, []string{"target.txt"}) {
		t.Errorf("candidates = %v, want only target.txt", got)
	}
	if res.SkippedSymlinks != 1 {
		t.Errorf("SkippedSymlinks = %d, want 1", res.SkippedSymlinks)
	}

	res = New(Options{IncludeSymlinks: true}, logging.NewNop()).Walk(root)
	want := []string{"link", "target.txt"}
	if got := relPaths(res.Candidates); !reflect.DeepEqual(got, want) {
		t.Errorf("candidates = %v, want %v", got, want)
	}
	if !res.Candidates[0].Symlink {
		t.Error("link candidate not marked as symlink")
	}
	if res.Candidates[1].Symlink {
		t.Error("regular file wrongly marked as symlink")
	}
}

func TestWalkSymlinkedDirNotFollowed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "real", "inside.txt"))
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "alias")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	res := New(Options{IncludeSymlinks: true}, logging.NewNop()).Walk(root)

	want := []string{"alias", "real/inside.txt"}
	if got := relPaths(res.Candidates); !reflect.DeepEqual(got, want) {
		t.Errorf("candidates = %v, want %v", got, want)
	}
	for _, dir := range res.Dirs {
		if dir == filepath.Join(root, "alias") {
			t.Error("symlinked directory was entered")
		}
	}
}

func TestWalkContinuesPastUnreadableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	blocked := filepath.Join(root, "blocked")
	writeFile(t, filepath.Join(blocked, "invisible.txt"))
	writeFile(t, filepath.Join(root, "visible.txt"))
	if err := os.Chmod(blocked, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(blocked, 0o755) })

	res := New(Options{}, logging.NewNop()).Walk(root)

	if got := relPaths(res.Candidates); !reflect.DeepEqual(got, []string{"visible.txt"}) {
		t.Errorf("candidates = %v, want only visible.txt", got)
	}
	if len(res.Failures) != 1 || res.Failures[0].Path != blocked {
		t.Errorf("failures = %+v, want one for %s", res.Failures, blocked)
	}
}

func TestWalkEmptyRoot(t *testing.T) {
	res := New(Options{}, logging.NewNop()).Walk(t.TempDir())
	if len(res.Candidates) != 0 || len(res.Dirs) != 0 || len(res.Failures) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

package main

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"yearsort/internal/organizer"
	"yearsort/internal/testsupport"
)

func TestRunMovesFilesIntoYearFolders(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "photos", "photo.jpg"), "photo")
	testsupport.WriteFile(t, filepath.Join(root, "report.pdf"), "report")
	pinYears(t, map[string]int{"photo.jpg": 2022, "report.pdf": 2023})

	out, stderr, err := runCLI(t, []string{root})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	requireContains(t, out, "Moving: "+filepath.Join("photos", "photo.jpg")+" -> "+filepath.Join("2022", "photos", "photo.jpg"))
	requireContains(t, out, "Moving: report.pdf -> "+filepath.Join("2023", "report.pdf"))
	requireContains(t, out, "Removed empty directory: photos")
	requireContains(t, out, "Files moved: 2")
	requireContains(t, stderr, "scan completed")

	if _, err := os.Stat(filepath.Join(root, "2022", "photos", "photo.jpg")); err != nil {
		t.Fatalf("expected photo under 2022: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "photos")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected emptied photos directory to be removed, got %v", err)
	}
}

func TestDryRunReportsWithoutChanges(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "docs", "a.txt"), "a")
	pinYears(t, map[string]int{"a.txt": 2021})
	before := testsupport.Snapshot(t, root)

	out, _, err := runCLI(t, []string{"--dry-run", root})
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}

	requireContains(t, out, "Would move: "+filepath.Join("docs", "a.txt")+" -> "+filepath.Join("2021", "docs", "a.txt"))
	if after := testsupport.Snapshot(t, root); !reflect.DeepEqual(before, after) {
		t.Fatalf("dry run mutated the tree:\nbefore: %v\nafter:  %v", before, after)
	}
}

func TestCopyModeKeepsSources(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "docs", "a.txt"), "a")
	pinYears(t, map[string]int{"a.txt": 2021})

	out, _, err := runCLI(t, []string{"--copy", root})
	if err != nil {
		t.Fatalf("copy run: %v", err)
	}

	requireContains(t, out, "Copying: "+filepath.Join("docs", "a.txt"))
	requireContains(t, out, "Files copied: 1")
	if _, err := os.Stat(filepath.Join(root, "docs", "a.txt")); err != nil {
		t.Fatalf("expected source retained after copy: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "2021", "docs", "a.txt")); err != nil {
		t.Fatalf("expected copy under 2021: %v", err)
	}
}

func TestJSONFormat(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "docs", "a.txt"), "a")
	pinYears(t, map[string]int{"a.txt": 2021})

	out, _, err := runCLI(t, []string{"--format", "json", "--dry-run", root})
	if err != nil {
		t.Fatalf("json run: %v", err)
	}

	var rep report
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode report: %v\noutput: %s", err, out)
	}
	if !rep.DryRun {
		t.Fatal("expected dry_run true in report")
	}
	if rep.PlannedActions != 1 || len(rep.Actions) != 1 {
		t.Fatalf("expected one planned action, got %d (%d recorded)", rep.PlannedActions, len(rep.Actions))
	}
	if rep.Actions[0].Year != 2021 {
		t.Fatalf("expected year 2021, got %d", rep.Actions[0].Year)
	}
	if rep.Actions[0].Destination != filepath.Join(root, "2021", "docs", "a.txt") {
		t.Fatalf("unexpected destination %q", rep.Actions[0].Destination)
	}
}

func TestTableFormat(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "docs", "a.txt"), "a")
	pinYears(t, map[string]int{"a.txt": 2021})

	out, _, err := runCLI(t, []string{"--format", "table", "--dry-run", root})
	if err != nil {
		t.Fatalf("table run: %v", err)
	}

	requireContains(t, out, "YEAR")
	requireContains(t, out, "2021")
	requireContains(t, out, "planned")
	requireContains(t, out, "METRIC")
	requireContains(t, out, "Files scanned")
}

func TestTreeFormat(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "photos", "a.jpg"), "a")
	testsupport.WriteFile(t, filepath.Join(root, "photos", "b.jpg"), "b")
	pinYears(t, map[string]int{"a.jpg": 2022, "b.jpg": 2022})

	out, _, err := runCLI(t, []string{"--format", "tree", "--dry-run", root})
	if err != nil {
		t.Fatalf("tree run: %v", err)
	}

	requireContains(t, out, "2022")
	requireContains(t, out, "a.jpg")
	requireContains(t, out, "b.jpg")
}

func TestLogJSONEmitsStructuredDiagnostics(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "a.txt"), "a")
	pinYears(t, map[string]int{"a.txt": 2021})

	_, stderr, err := runCLI(t, []string{"--log-json", "--dry-run", root})
	if err != nil {
		t.Fatalf("log-json run: %v", err)
	}
	requireContains(t, stderr, `"msg":"scan completed"`)
}

func TestMissingDirectoryFails(t *testing.T) {
	_, _, err := runCLI(t, []string{filepath.Join(t.TempDir(), "absent")})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !errors.Is(err, organizer.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestUnknownFormatRejected(t *testing.T) {
	_, _, err := runCLI(t, []string{"--format", "yaml", t.TempDir()})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	requireContains(t, err.Error(), "unsupported")
}

func TestVersionFlag(t *testing.T) {
	out, _, err := runCLI(t, []string{"--version"})
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "yearsort version")
}

package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"yearsort/internal/organizer"
)

func runCLI(t *testing.T, args []string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// pinYears fixes year resolution by base name so tests do not depend on the
// filesystem's notion of creation time.
func pinYears(t *testing.T, years map[string]int) {
	t.Helper()
	restore := organizer.SetYearResolverForTests(func(path string) (int, error) {
		if year, ok := years[filepath.Base(path)]; ok {
			return year, nil
		}
		return 0, fmt.Errorf("no pinned year for %s", filepath.Base(path))
	})
	t.Cleanup(restore)
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

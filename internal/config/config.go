// Package config defines the explicit settings object a run operates on.
// There is no configuration file and no environment lookup; every value
// arrives through CLI flags and flows through Normalize and Validate before
// the pipeline sees it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Rendering formats accepted by Settings.Format.
const (
	FormatAuto  = "auto"
	FormatPlain = "plain"
	FormatTable = "table"
	FormatTree  = "tree"
	FormatJSON  = "json"
)

// Settings encapsulates all knobs for a single run.
type Settings struct {
	// Root is the directory to organize. Normalized to an absolute, cleaned
	// path; the organizer validates that it exists and is a directory.
	Root string

	// DryRun reports the plan without mutating anything.
	DryRun bool
	// Copy duplicates candidates into year directories instead of relocating
	// them. Sources stay in place and empty-directory cleanup is skipped.
	Copy bool

	// IncludeRootName inserts the root's base name beneath the year directory,
	// so files land at root/year/base(root)/relative instead of
	// root/year/relative.
	IncludeRootName bool
	// IncludeHidden emits dot-prefixed entries instead of skipping them.
	IncludeHidden bool
	// MoveSymlinks relocates symbolic links themselves. Targets are never
	// followed in either mode.
	MoveSymlinks bool

	// FullPath renders absolute paths in output instead of root-relative ones.
	FullPath bool
	// Format selects the plan/summary rendering: auto, plain, table, tree, or
	// json. Auto picks table on a terminal and plain otherwise.
	Format string

	LogLevel string
	LogJSON  bool
}

// Default returns the baseline settings before flag binding.
func Default() Settings {
	return Settings{
		Format:   FormatAuto,
		LogLevel: "info",
	}
}

// Normalize expands and cleans paths and canonicalizes enum-style fields.
func (s *Settings) Normalize() error {
	root, err := expandPath(s.Root)
	if err != nil {
		return fmt.Errorf("root: %w", err)
	}
	s.Root = root

	s.Format = strings.ToLower(strings.TrimSpace(s.Format))
	if s.Format == "" {
		s.Format = FormatAuto
	}

	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	return nil
}

// Validate ensures the settings are usable.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.Root) == "" {
		return fmt.Errorf("directory argument is required")
	}
	switch s.Format {
	case FormatAuto, FormatPlain, FormatTable, FormatTree, FormatJSON:
	default:
		return fmt.Errorf("format: unsupported value %q (expected auto, plain, table, tree, or json)", s.Format)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log-level: unsupported value %q (expected debug, info, warn, or error)", s.LogLevel)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// Package scan walks a root directory depth-first and collects the regular
// files eligible for relocation, recording everything the later pipeline
// stages need: candidate files, visited directories, and pruned year
// directories. The walk is iterative with an explicit stack so arbitrarily
// deep trees cannot exhaust the call stack, and it never follows symlinks.
package scan

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"yearsort/internal/logging"
	"yearsort/internal/plan"
)

// Options control which entries the scanner emits.
type Options struct {
	// IncludeHidden emits dot-prefixed files and descends into dot-prefixed
	// directories instead of skipping them.
	IncludeHidden bool
	// IncludeSymlinks emits symbolic links as candidates. The links themselves
	// are relocated later; their targets are never touched or resolved.
	IncludeSymlinks bool
}

// Entry is one relocation candidate.
type Entry struct {
	// Path is the candidate's absolute location.
	Path string
	// Relative is the path below the scanned root.
	Relative string
	// Symlink marks link candidates emitted under Options.IncludeSymlinks.
	Symlink bool
}

// Failure records a directory whose contents could not be listed.
type Failure struct {
	Path string
	Err  error
}

// Result is the read-only tree snapshot a run plans from. Nothing in it
// reflects filesystem state after the scan returns.
type Result struct {
	// Candidates in deterministic depth-first order: a directory's files
	// first, then its subdirectories, each level in name order.
	Candidates []Entry
	// Dirs lists every directory entered below the root, in visit order. The
	// root itself is excluded.
	Dirs []string
	// PrunedYearDirs lists the names of four-digit root children that were
	// skipped, which is what keeps repeated runs idempotent.
	PrunedYearDirs []string
	// Failures collects unreadable directories. The walk continues past them.
	Failures []Failure
	// SkippedHidden and SkippedSymlinks count entries excluded by options.
	// Hidden directories count once; their contents are never inspected.
	SkippedHidden   int
	SkippedSymlinks int
}

// Scanner walks roots according to its options. It performs no writes.
type Scanner struct {
	opts   Options
	logger *slog.Logger
}

// New constructs a scanner.
func New(opts Options, logger *slog.Logger) *Scanner {
	return &Scanner{opts: opts, logger: logging.NewComponentLogger(logger, "scanner")}
}

type frame struct {
	path string
	rel  string
}

// Walk scans root and returns the snapshot. It does not fail as a whole:
// unreadable directories are recorded in Result.Failures and skipped. Root
// existence and directory-ness are the caller's contract.
func (s *Scanner) Walk(root string) *Result {
	res := &Result{}
	stack := []frame{{path: root}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(cur.path)
		if err != nil {
			res.Failures = append(res.Failures, Failure{Path: cur.path, Err: err})
			s.logger.Warn("skipping unreadable directory", logging.Path(cur.path), logging.Error(err))
			continue
		}

		if cur.rel != "" {
			res.Dirs = append(res.Dirs, cur.path)
		}

		var subdirs []frame
		for _, entry := range entries {
			name := entry.Name()
			path := filepath.Join(cur.path, name)
			rel := filepath.Join(cur.rel, name)

			if !s.opts.IncludeHidden && strings.HasPrefix(name, ".") {
				res.SkippedHidden++
				s.logger.Debug("skipping hidden entry", logging.Path(path))
				continue
			}

			switch {
			case entry.IsDir():
				if cur.rel == "" && plan.IsYearDirName(name) {
					res.PrunedYearDirs = append(res.PrunedYearDirs, name)
					s.logger.Debug("skipping year directory", logging.Path(path))
					continue
				}
				subdirs = append(subdirs, frame{path: path, rel: rel})
			case entry.Type()&fs.ModeSymlink != 0:
				if !s.opts.IncludeSymlinks {
					res.SkippedSymlinks++
					s.logger.Debug("skipping symlink", logging.Path(path))
					continue
				}
				res.Candidates = append(res.Candidates, Entry{Path: path, Relative: rel, Symlink: true})
			case entry.Type().IsRegular():
				res.Candidates = append(res.Candidates, Entry{Path: path, Relative: rel})
			default:
				s.logger.Debug("skipping special file", logging.Path(path))
			}
		}

		// Reverse push so the stack pops subdirectories in name order.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return res
}

package organizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"yearsort/internal/birthtime"
	"yearsort/internal/config"
	"yearsort/internal/fileutil"
	"yearsort/internal/logging"
	"yearsort/internal/plan"
	"yearsort/internal/scan"
)

// resolveYear resolves a candidate's calendar year. Swapped by tests via
// SetYearResolverForTests so year assignment stays deterministic regardless
// of the filesystem's birth-time behavior.
var resolveYear = birthtime.Year

// Failure records one path the run could not process and why. Err carries a
// sentinel from this package for classification via errors.Is.
type Failure struct {
	Path string
	Err  error
}

// Result summarizes a completed run for rendering and inspection.
type Result struct {
	Root   string
	DryRun bool
	Copy   bool

	// Plan holds every action the run attempted (or, under dry-run, would
	// attempt), in execution order.
	Plan *plan.Plan

	FilesScanned    int
	FilesMoved      int
	FilesCopied     int
	YearDirsPruned  int
	SkippedHidden   int
	SkippedSymlinks int

	// RemovedDirs lists empty source directories deleted by cleanup, in
	// removal order.
	RemovedDirs []string

	Failures []Failure
}

// ActionFunc observes each attempted relocation as it happens; err is nil on
// success. Renderers use it for live per-action output.
type ActionFunc func(act plan.Action, err error)

// Organizer drives the scan, plan, execute, cleanup pipeline for one root.
type Organizer struct {
	cfg      config.Settings
	base     *slog.Logger
	logger   *slog.Logger
	onAction ActionFunc
}

// New constructs an organizer for the given settings. All diagnostics from
// the run, the scanner's included, carry a shared run_id attribute.
func New(cfg config.Settings, logger *slog.Logger) *Organizer {
	base := logger
	if base == nil {
		base = logging.NewNop()
	}
	base = base.With(logging.String(logging.FieldRunID, uuid.NewString()[:8]))
	return &Organizer{
		cfg:    cfg,
		base:   base,
		logger: logging.NewComponentLogger(base, "organizer"),
	}
}

// OnAction registers an observer invoked once per attempted action.
func (o *Organizer) OnAction(fn ActionFunc) {
	o.onAction = fn
}

// Run executes the pipeline. Per-path failures accumulate in the result; an
// error return means a fatal environment problem (bad root, busy lock) or
// cancellation, and in the fatal case nothing was scanned or mutated.
func (o *Organizer) Run(ctx context.Context) (*Result, error) {
	if err := o.validateRoot(); err != nil {
		return nil, err
	}

	if !o.cfg.DryRun {
		lock, err := acquireRunLock(o.cfg.Root)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				o.logger.Warn("failed to release run lock", logging.Error(err))
			}
		}()
	}

	res := &Result{Root: o.cfg.Root, DryRun: o.cfg.DryRun, Copy: o.cfg.Copy}

	scanner := scan.New(scan.Options{
		IncludeHidden:   o.cfg.IncludeHidden,
		IncludeSymlinks: o.cfg.MoveSymlinks,
	}, o.base)
	snapshot := scanner.Walk(o.cfg.Root)

	res.FilesScanned = len(snapshot.Candidates)
	res.YearDirsPruned = len(snapshot.PrunedYearDirs)
	res.SkippedHidden = snapshot.SkippedHidden
	res.SkippedSymlinks = snapshot.SkippedSymlinks
	for _, f := range snapshot.Failures {
		res.Failures = append(res.Failures, Failure{
			Path: f.Path,
			Err:  Wrap(ErrIO, "scan", "read directory", "Failed to list directory contents", f.Err),
		})
	}
	o.logger.Info(
		"scan completed",
		logging.Int("candidates", len(snapshot.Candidates)),
		logging.Int("directories", len(snapshot.Dirs)),
		logging.Int("pruned_year_dirs", len(snapshot.PrunedYearDirs)),
	)

	res.Plan = o.buildPlan(snapshot, res)

	if err := o.execute(ctx, res); err != nil {
		return res, err
	}

	if !o.cfg.DryRun && !o.cfg.Copy {
		o.cleanup(snapshot.Dirs, res)
	}

	o.logger.Info(
		"run completed",
		logging.Bool("dry_run", res.DryRun),
		logging.Int("planned", res.Plan.Len()),
		logging.Int("moved", res.FilesMoved),
		logging.Int("copied", res.FilesCopied),
		logging.Int("dirs_removed", len(res.RemovedDirs)),
		logging.Int("failures", len(res.Failures)),
	)
	return res, nil
}

func (o *Organizer) validateRoot() error {
	root := o.cfg.Root
	if strings.TrimSpace(root) == "" {
		return Wrap(ErrInvalidInput, "setup", "validate root", "Directory argument is required", nil)
	}
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return Wrap(ErrInvalidInput, "setup", "validate root", fmt.Sprintf("Directory does not exist: %s", root), nil)
	}
	if err != nil {
		return Wrap(ErrInvalidInput, "setup", "validate root", "Unable to inspect directory", err)
	}
	if !info.IsDir() {
		return Wrap(ErrInvalidInput, "setup", "validate root", fmt.Sprintf("Not a directory: %s", root), nil)
	}
	return nil
}

// buildPlan resolves each candidate's year and computes destinations. The
// plan is complete before any mutation: candidates without a usable
// timestamp become failures, never actions.
func (o *Organizer) buildPlan(snapshot *scan.Result, res *Result) *plan.Plan {
	p := &plan.Plan{Root: o.cfg.Root}
	for _, cand := range snapshot.Candidates {
		year, err := resolveYear(cand.Path)
		if err != nil {
			wrapped := Wrap(ErrTimestampUnavailable, "plan", "resolve year", "Unable to determine file timestamp", err)
			res.Failures = append(res.Failures, Failure{Path: cand.Path, Err: wrapped})
			o.logger.Warn("skipping candidate without usable timestamp", logging.Path(cand.Path), logging.Error(err))
			continue
		}
		p.Actions = append(p.Actions, plan.Action{
			Source:      cand.Path,
			Destination: plan.Destination(o.cfg.Root, year, cand.Relative, o.cfg.IncludeRootName),
			Relative:    cand.Relative,
			Year:        year,
			Symlink:     cand.Symlink,
		})
	}
	return p
}

// execute applies the plan in order. One action's failure never aborts the
// batch; cancellation does.
func (o *Organizer) execute(ctx context.Context, res *Result) error {
	for _, act := range res.Plan.Actions {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := o.applyAction(act)
		if o.onAction != nil {
			o.onAction(act, err)
		}
		if err != nil {
			res.Failures = append(res.Failures, Failure{Path: act.Source, Err: err})
			o.logger.Warn("action failed", logging.Path(act.Source), logging.Error(err))
			continue
		}
		if o.cfg.DryRun {
			continue
		}
		if o.cfg.Copy {
			res.FilesCopied++
		} else {
			res.FilesMoved++
		}
	}
	return nil
}

func (o *Organizer) applyAction(act plan.Action) error {
	if o.cfg.DryRun {
		return nil
	}

	if _, err := os.Lstat(act.Destination); err == nil {
		return Wrap(ErrDestinationExists, "execute", "check destination", fmt.Sprintf("Destination already occupied: %s", act.Destination), nil)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Wrap(ErrIO, "execute", "check destination", "Unable to inspect destination", err)
	}

	if err := os.MkdirAll(filepath.Dir(act.Destination), 0o755); err != nil {
		return Wrap(ErrIO, "execute", "create destination directory", "Failed to create year directory chain", err)
	}

	if o.cfg.Copy {
		if act.Symlink {
			if err := fileutil.CopySymlink(act.Source, act.Destination); err != nil {
				return Wrap(ErrIO, "execute", "copy symlink", "Failed to copy symlink into year directory", err)
			}
			return nil
		}
		if err := fileutil.Copy(act.Source, act.Destination); err != nil {
			return Wrap(ErrIO, "execute", "copy file", "Failed to copy file into year directory", err)
		}
		return nil
	}

	if err := fileutil.Move(act.Source, act.Destination); err != nil {
		return Wrap(ErrIO, "execute", "move file", "Failed to move file into year directory", err)
	}
	return nil
}

// cleanup removes source directories the moves emptied. Iterating the visit
// snapshot in reverse processes every directory after all of its
// descendants, so an emptied parent is caught in the same pass. Year
// directories are never in the snapshot and the root is never touched.
func (o *Organizer) cleanup(dirs []string, res *Result) {
	for i := len(dirs) - 1; i >= 0; i-- {
		dir := dirs[i]
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			res.Failures = append(res.Failures, Failure{
				Path: dir,
				Err:  Wrap(ErrIO, "cleanup", "list directory", "Failed to list directory during cleanup", err),
			})
			continue
		}
		if len(entries) != 0 {
			continue
		}
		if err := os.Remove(dir); err != nil {
			res.Failures = append(res.Failures, Failure{
				Path: dir,
				Err:  Wrap(ErrIO, "cleanup", "remove empty directory", "Failed to remove empty directory", err),
			})
			o.logger.Warn("failed to remove empty directory", logging.Path(dir), logging.Error(err))
			continue
		}
		res.RemovedDirs = append(res.RemovedDirs, dir)
		o.logger.Debug("removed empty directory", logging.Path(dir))
	}
}

package main

import (
	"encoding/json"
	"io"

	"yearsort/internal/organizer"
)

type reportAction struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Year        int    `json:"year"`
	Symlink     bool   `json:"symlink,omitempty"`
	Error       string `json:"error,omitempty"`
}

type reportFailure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

type report struct {
	Root            string          `json:"root"`
	DryRun          bool            `json:"dry_run"`
	Copy            bool            `json:"copy"`
	FilesScanned    int             `json:"files_scanned"`
	PlannedActions  int             `json:"planned_actions"`
	FilesMoved      int             `json:"files_moved"`
	FilesCopied     int             `json:"files_copied"`
	YearDirsPruned  int             `json:"year_dirs_pruned"`
	SkippedHidden   int             `json:"skipped_hidden"`
	SkippedSymlinks int             `json:"skipped_symlinks"`
	RemovedDirs     []string        `json:"removed_dirs,omitempty"`
	Actions         []reportAction  `json:"actions"`
	Failures        []reportFailure `json:"failures,omitempty"`
}

func buildReport(res *organizer.Result, records []actionRecord) report {
	rep := report{
		Root:            res.Root,
		DryRun:          res.DryRun,
		Copy:            res.Copy,
		FilesScanned:    res.FilesScanned,
		PlannedActions:  res.Plan.Len(),
		FilesMoved:      res.FilesMoved,
		FilesCopied:     res.FilesCopied,
		YearDirsPruned:  res.YearDirsPruned,
		SkippedHidden:   res.SkippedHidden,
		SkippedSymlinks: res.SkippedSymlinks,
		RemovedDirs:     res.RemovedDirs,
		Actions:         make([]reportAction, 0, len(records)),
	}
	for _, rec := range records {
		action := reportAction{
			Source:      rec.act.Source,
			Destination: rec.act.Destination,
			Year:        rec.act.Year,
			Symlink:     rec.act.Symlink,
		}
		if rec.err != nil {
			action.Error = rec.err.Error()
		}
		rep.Actions = append(rep.Actions, action)
	}
	for _, f := range res.Failures {
		rep.Failures = append(rep.Failures, reportFailure{Path: f.Path, Reason: f.Err.Error()})
	}
	return rep
}

// writeJSON encodes v as indented JSON to w.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

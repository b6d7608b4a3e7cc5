package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"yearsort/internal/config"
	"yearsort/internal/organizer"
	"yearsort/internal/plan"
)

type actionRecord struct {
	act plan.Action
	err error
}

// renderer owns all stdout output for a run. Plain format streams one line
// per action as it happens; the structured formats accumulate records and
// render once the run completes.
type renderer struct {
	out     io.Writer
	cfg     config.Settings
	format  string
	printer *message.Printer
	records []actionRecord
}

func newRenderer(out io.Writer, cfg config.Settings) *renderer {
	format := cfg.Format
	if format == config.FormatAuto {
		format = config.FormatPlain
		if isTerminal(out) {
			format = config.FormatTable
		}
	}
	return &renderer{
		out:     out,
		cfg:     cfg,
		format:  format,
		printer: message.NewPrinter(language.English),
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Action observes one attempted relocation.
func (r *renderer) Action(act plan.Action, err error) {
	if r.format != config.FormatPlain {
		r.records = append(r.records, actionRecord{act: act, err: err})
		return
	}
	if err != nil {
		fmt.Fprintf(r.out, "Failed: %s (%v)\n", r.sourceLabel(act), err)
		return
	}
	fmt.Fprintf(r.out, "%s: %s -> %s\n", r.verb(), r.sourceLabel(act), r.destLabel(act))
}

// Summary renders the end-of-run report in the selected format.
func (r *renderer) Summary(res *organizer.Result) error {
	switch r.format {
	case config.FormatJSON:
		return writeJSON(r.out, buildReport(res, r.records))
	case config.FormatTable:
		r.renderTables(res)
	case config.FormatTree:
		r.renderTree(res)
		r.renderPlainSummary(res)
	default:
		r.renderRemovals(res)
		r.renderPlainSummary(res)
	}
	return nil
}

func (r *renderer) verb() string {
	switch {
	case r.cfg.DryRun && r.cfg.Copy:
		return "Would copy"
	case r.cfg.DryRun:
		return "Would move"
	case r.cfg.Copy:
		return "Copying"
	default:
		return "Moving"
	}
}

func (r *renderer) sourceLabel(act plan.Action) string {
	if r.cfg.FullPath {
		return act.Source
	}
	return act.Relative
}

func (r *renderer) destLabel(act plan.Action) string {
	if r.cfg.FullPath {
		return act.Destination
	}
	return r.relDest(act)
}

func (r *renderer) relDest(act plan.Action) string {
	rel, err := filepath.Rel(r.cfg.Root, act.Destination)
	if err != nil {
		return act.Destination
	}
	return rel
}

func (r *renderer) relDir(root, dir string) string {
	if r.cfg.FullPath {
		return dir
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return dir
	}
	return rel
}

func (r *renderer) renderRemovals(res *organizer.Result) {
	for _, dir := range res.RemovedDirs {
		fmt.Fprintf(r.out, "Removed empty directory: %s\n", r.relDir(res.Root, dir))
	}
}

func (r *renderer) renderPlainSummary(res *organizer.Result) {
	if res.Plan.Len() == 0 && len(res.Failures) == 0 {
		fmt.Fprintln(r.out, "No files to organize.")
	}
	p := r.printer
	p.Fprintf(r.out, "Files scanned: %d\n", res.FilesScanned)
	p.Fprintf(r.out, "Planned actions: %d\n", res.Plan.Len())
	switch {
	case res.DryRun:
	case res.Copy:
		p.Fprintf(r.out, "Files copied: %d\n", res.FilesCopied)
	default:
		p.Fprintf(r.out, "Files moved: %d\n", res.FilesMoved)
		p.Fprintf(r.out, "Directories removed: %d\n", len(res.RemovedDirs))
	}
	if res.YearDirsPruned > 0 {
		p.Fprintf(r.out, "Year directories skipped: %d\n", res.YearDirsPruned)
	}
	if skipped := res.SkippedHidden + res.SkippedSymlinks; skipped > 0 {
		p.Fprintf(r.out, "Entries skipped: %d\n", skipped)
	}
	if len(res.Failures) > 0 {
		p.Fprintf(r.out, "Failures: %d\n", len(res.Failures))
		for _, f := range res.Failures {
			fmt.Fprintf(r.out, "  %s: %v\n", f.Path, f.Err)
		}
	}
}

func (r *renderer) renderTables(res *organizer.Result) {
	if len(r.records) > 0 {
		rows := make([][]string, 0, len(r.records))
		for _, rec := range r.records {
			rows = append(rows, []string{
				plan.YearLabel(rec.act.Year),
				r.sourceLabel(rec.act),
				r.destLabel(rec.act),
				r.statusLabel(rec),
			})
		}
		fmt.Fprintln(r.out, renderTable([]string{"Year", "Source", "Destination", "Status"}, rows, nil))
	}
	if len(res.Failures) > 0 {
		rows := make([][]string, 0, len(res.Failures))
		for _, f := range res.Failures {
			rows = append(rows, []string{f.Path, f.Err.Error()})
		}
		fmt.Fprintln(r.out, renderTable([]string{"Path", "Failure"}, rows, nil))
	}
	fmt.Fprintln(r.out, renderTable([]string{"Metric", "Count"}, r.summaryRows(res), []columnAlignment{alignLeft, alignRight}))
}

func (r *renderer) statusLabel(rec actionRecord) string {
	switch {
	case rec.err != nil:
		return "failed"
	case r.cfg.DryRun:
		return "planned"
	case r.cfg.Copy:
		return "copied"
	default:
		return "moved"
	}
}

func (r *renderer) summaryRows(res *organizer.Result) [][]string {
	p := r.printer
	rows := [][]string{
		{"Files scanned", p.Sprintf("%d", res.FilesScanned)},
		{"Planned actions", p.Sprintf("%d", res.Plan.Len())},
	}
	switch {
	case res.DryRun:
	case res.Copy:
		rows = append(rows, []string{"Files copied", p.Sprintf("%d", res.FilesCopied)})
	default:
		rows = append(rows,
			[]string{"Files moved", p.Sprintf("%d", res.FilesMoved)},
			[]string{"Directories removed", p.Sprintf("%d", len(res.RemovedDirs))},
		)
	}
	rows = append(rows,
		[]string{"Year directories skipped", p.Sprintf("%d", res.YearDirsPruned)},
		[]string{"Hidden entries skipped", p.Sprintf("%d", res.SkippedHidden)},
		[]string{"Symlinks skipped", p.Sprintf("%d", res.SkippedSymlinks)},
		[]string{"Failures", p.Sprintf("%d", len(res.Failures))},
	)
	return rows
}

func (r *renderer) renderTree(res *organizer.Result) {
	if len(r.records) == 0 {
		return
	}
	t := newFileTree(filepath.Base(res.Root))
	for _, rec := range r.records {
		prefix := ""
		if rec.err != nil {
			prefix = "! "
		}
		t.insert(r.relDest(rec.act), prefix)
	}
	fmt.Fprint(r.out, t.render())
}

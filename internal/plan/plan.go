package plan

import (
	"fmt"
	"path/filepath"
)

// Action relocates one candidate file beneath its resolved year directory.
type Action struct {
	// Source is the absolute path of the file as it exists today.
	Source string
	// Destination is the absolute path the file belongs at. Its parent chain
	// may not exist yet; the executor creates it on demand.
	Destination string
	// Relative is the candidate's path relative to the root being organized.
	Relative string
	// Year is the resolved calendar year, local time.
	Year int
	// Symlink marks actions that relocate a link itself rather than a regular
	// file. The link target is never touched.
	Symlink bool
}

// Plan is the ordered list of relocation actions for a single run. It is
// computed in full from a read-only snapshot of the tree before any mutation
// happens.
type Plan struct {
	Root    string
	Actions []Action
}

// Len reports the number of planned actions.
func (p *Plan) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Actions)
}

// YearLabel formats a year the way year directories are named: exactly four
// decimal digits. IsYearDirName recognizes the same form, which is what keeps
// repeated runs idempotent.
func YearLabel(year int) string {
	return fmt.Sprintf("%04d", year)
}

// IsYearDirName reports whether name is exactly four ASCII digits, the naming
// rule for year directories at the root.
func IsYearDirName(name string) bool {
	if len(name) != 4 {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}

// Destination computes where a candidate belongs: root/year/relative, or
// root/year/base(root)/relative when includeRootName is set. The relative
// subpath is preserved verbatim in both layouts.
func Destination(root string, year int, relative string, includeRootName bool) string {
	if includeRootName {
		return filepath.Join(root, YearLabel(year), filepath.Base(root), relative)
	}
	return filepath.Join(root, YearLabel(year), relative)
}

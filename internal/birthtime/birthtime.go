// Package birthtime resolves the creation timestamp of filesystem entries,
// falling back to the modification time on filesystems or platforms that do
// not record birth times. Symbolic links are always inspected directly and
// never followed.
package birthtime

import (
	"os"
	"time"
)

// Stat returns the best available creation timestamp for path. When the
// platform exposes a birth time it is preferred; otherwise the modification
// time is returned.
func Stat(path string) (time.Time, error) {
	return stat(path)
}

// Year resolves the calendar year for path in local time.
func Year(path string) (int, error) {
	ts, err := Stat(path)
	if err != nil {
		return 0, err
	}
	return ts.Local().Year(), nil
}

func modTime(path string) (time.Time, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

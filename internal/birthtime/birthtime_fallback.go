//go:build !linux && !darwin && !freebsd && !netbsd

package birthtime

import "time"

func stat(path string) (time.Time, error) {
	return modTime(path)
}

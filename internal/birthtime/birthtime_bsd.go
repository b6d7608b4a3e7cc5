//go:build darwin || freebsd || netbsd

package birthtime

import (
	"os"
	"syscall"
	"time"
)

func stat(path string) (time.Time, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return time.Time{}, err
	}
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		ts := st.Birthtimespec
		if ts.Sec != 0 || ts.Nsec != 0 {
			return time.Unix(int64(ts.Sec), int64(ts.Nsec)), nil
		}
	}
	return info.ModTime(), nil
}

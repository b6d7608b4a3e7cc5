//go:build linux

package birthtime

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

func stat(path string) (time.Time, error) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME|unix.STATX_MTIME, &stx)
	switch {
	case err == nil:
		if stx.Mask&unix.STATX_BTIME != 0 && (stx.Btime.Sec != 0 || stx.Btime.Nsec != 0) {
			return statxTime(stx.Btime), nil
		}
		if stx.Mask&unix.STATX_MTIME != 0 {
			return statxTime(stx.Mtime), nil
		}
	case errors.Is(err, unix.ENOSYS), errors.Is(err, unix.EPERM):
		// Kernel predates statx or the call is filtered.
	default:
		return time.Time{}, &os.PathError{Op: "statx", Path: path, Err: err}
	}
	return modTime(path)
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}

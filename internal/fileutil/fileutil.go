// Package fileutil provides the low-level relocation primitives: a
// metadata-preserving copy and a rename-based move with a cross-device
// fallback. Destination-collision policy belongs to callers; both Move and
// Copy assume the caller already established that dst does not exist.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/google/uuid"
)

// Copy streams src to dst, preserving the source's permission bits and
// modification time so a later run resolves the copy to the same year.
func Copy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("preserve mode: %w", err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("preserve mtime: %w", err)
	}
	return nil
}

// CopySymlink recreates the symbolic link src at dst. The link target is
// carried over verbatim, never resolved.
func CopySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return fmt.Errorf("read link: %w", err)
	}
	return os.Symlink(target, dst)
}

// rename is swapped by tests to simulate cross-device moves.
var rename = os.Rename

// Move renames src to dst. When the rename crosses filesystems it falls back
// to copying src to a temporary name beside dst, renaming that into place,
// and removing src. The source survives until the destination is complete.
func Move(src, dst string) error {
	err := rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return err
	}

	info, err := os.Lstat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	tmp := dst + ".ys-" + uuid.NewString()[:8] + ".tmp"
	if info.Mode()&os.ModeSymlink != 0 {
		err = CopySymlink(src, tmp)
	} else {
		err = Copy(src, tmp)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("cross-device copy: %w", err)
	}

	if err := rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("finalize cross-device move: %w", err)
	}
	return os.Remove(src)
}

package organizer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// runLockPath derives the per-root lock file location under the system temp
// directory. Hashing the normalized root keeps the name stable across runs
// and filesystem-safe regardless of what the root path contains.
func runLockPath(root string) string {
	sum := sha256.Sum256([]byte(root))
	return filepath.Join(os.TempDir(), "yearsort-"+hex.EncodeToString(sum[:6])+".lock")
}

// acquireRunLock claims the exclusive per-root lock that keeps concurrent
// mutating runs off the same tree. The caller releases the returned lock.
func acquireRunLock(root string) (*flock.Flock, error) {
	lock := flock.New(runLockPath(root))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, Wrap(ErrLocked, "setup", "acquire run lock", "Unable to create or probe the lock file", err)
	}
	if !locked {
		return nil, Wrap(ErrLocked, "setup", "acquire run lock", fmt.Sprintf("Another run is already organizing %s", root), nil)
	}
	return lock, nil
}

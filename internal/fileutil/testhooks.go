package fileutil

// SetRenameForTests overrides the rename call during tests so cross-device
// behavior can be simulated without a second filesystem.
func SetRenameForTests(fn func(oldpath, newpath string) error) func() {
	previous := rename
	rename = fn
	return func() {
		rename = previous
	}
}

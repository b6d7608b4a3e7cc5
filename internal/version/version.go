// Package version reports the binary's version from build metadata. Release
// builds inject Version and Commit through -ldflags; everything else falls
// back to the module build info recorded by the toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

// String returns a human-readable version, with a short commit when known.
func String() string {
	version := Version
	if version == "dev" || version == "" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		} else {
			version = "development"
		}
	}
	if commit := shortCommit(); commit != "" {
		return fmt.Sprintf("%s (%s)", version, commit)
	}
	return version
}

func shortCommit() string {
	commit := Commit
	if commit == "unknown" || commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					commit = setting.Value
					break
				}
			}
		}
	}
	if commit == "unknown" || commit == "" {
		return ""
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return commit
}

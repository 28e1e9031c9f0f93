// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// Release builds set these with -ldflags -X. Empty values fall back to
// the VCS stamp the go command embeds in the binary.
var (
	// Version is the release version.
	Version = "0.1.0-dev"

	// GitCommit is the short commit hash.
	GitCommit = ""

	// GitDirty is "true" when the tree had uncommitted changes.
	GitDirty = ""

	// BuildTime is the UTC build or commit timestamp.
	BuildTime = ""
)

// Build describes the running binary.
type Build struct {
	Version string
	Commit  string
	Dirty   bool
	Time    string
}

// Current returns the build information of the running binary.
func Current() Build {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}
	return resolve(settings)
}

// resolve prefers the ldflags values and fills the gaps from the
// embedded vcs.* settings.
func resolve(settings []debug.BuildSetting) Build {
	build := Build{
		Version: Version,
		Commit:  GitCommit,
		Dirty:   GitDirty == "true",
		Time:    BuildTime,
	}
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			if build.Commit == "" {
				build.Commit = shortCommit(setting.Value)
			}
		case "vcs.modified":
			if GitDirty == "" {
				build.Dirty = setting.Value == "true"
			}
		case "vcs.time":
			if build.Time == "" {
				build.Time = setting.Value
			}
		}
	}
	if build.Commit == "" {
		build.Commit = "unknown"
	}
	if build.Time == "" {
		build.Time = "unknown"
	}
	return build
}

func shortCommit(revision string) string {
	if len(revision) > 7 {
		return revision[:7]
	}
	return revision
}

// String formats the build as "version (commit[-dirty], time)".
func (build Build) String() string {
	commit := build.Commit
	if build.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (%s, %s)", build.Version, commit, build.Time)
}

// Print writes the --version output for binary: the build line, then
// the Go version and platform.
func Print(w io.Writer, binary string) {
	fmt.Fprintf(w, "%s %s\n  Go: %s\n  Platform: %s/%s\n",
		binary, Current(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

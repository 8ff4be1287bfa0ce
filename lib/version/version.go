// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set via -ldflags at build time, for example:
//
//	go build -ldflags "-X github.com/droneplay/droneplay/lib/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = ""

	// BuildTime is the UTC timestamp of the build.
	BuildTime = ""

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// stamp is the commit and time the binary was built from, preferring
// ldflags values over the toolchain's VCS stamp.
type stamp struct {
	commit string
	time   string
	dirty  bool
}

func readStamp(read func() (*debug.BuildInfo, bool)) stamp {
	result := stamp{commit: GitCommit, time: BuildTime}
	if result.commit != "" && result.time != "" {
		return result
	}

	info, ok := read()
	if !ok {
		return result
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if result.commit == "" {
				result.commit = setting.Value
				if len(result.commit) > 12 {
					result.commit = result.commit[:12]
				}
			}
		case "vcs.time":
			if result.time == "" {
				result.time = setting.Value
			}
		case "vcs.modified":
			result.dirty = setting.Value == "true"
		}
	}
	return result
}

func (s stamp) String() string {
	commit, buildTime := s.commit, s.time
	if commit == "" {
		commit = "unknown"
	}
	if buildTime == "" {
		buildTime = "unknown"
	}
	dirty := ""
	if s.dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s%s, %s", commit, dirty, buildTime)
}

// Info returns a formatted version string suitable for --version output.
func Info() string {
	return fmt.Sprintf("%s (%s)", Version, readStamp(debug.ReadBuildInfo))
}

// Full returns detailed version information including Go version.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package version provides build-time version information.
package version

import (
	"fmt"
	"runtime/debug"
)

// Unknown marks a field that was not injected at build time.
const Unknown = "unknown"

// Info contains build-time version information injected via ldflags.
type Info struct {
	Version   string // Semantic version from git tags (e.g., "v1.2.3")
	GitCommit string // Short git commit hash (e.g., "abc1234")
	BuildTime string // Build timestamp in RFC3339 format
}

// New returns Info for the injected values. Missing commit and build time
// are filled from the VCS stamp of the binary when the toolchain recorded one.
func New(ver, commit, buildTime string) Info {
	info := Info{Version: ver, GitCommit: commit, BuildTime: buildTime}
	if info.Version == "" {
		info.Version = "dev"
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info = info.withBuildSettings(bi.Settings)
	}

	if info.GitCommit == "" {
		info.GitCommit = Unknown
	}
	if info.BuildTime == "" {
		info.BuildTime = Unknown
	}
	return info
}

func (i Info) withBuildSettings(settings []debug.BuildSetting) Info {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if isUnset(i.GitCommit) && s.Value != "" {
				i.GitCommit = shortCommit(s.Value)
			}
		case "vcs.time":
			if isUnset(i.BuildTime) && s.Value != "" {
				i.BuildTime = s.Value
			}
		}
	}
	return i
}

func isUnset(s string) bool {
	return s == "" || s == Unknown
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// String formats the info for -v output.
func (i Info) String() string {
	return fmt.Sprintf("lafusta %s (commit: %s, built: %s)", i.Version, i.GitCommit, i.BuildTime)
}

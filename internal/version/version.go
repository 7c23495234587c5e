// Package version identifies the numpad-demo build.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Version and Commit may be stamped by the release build:
//
//	go build -ldflags="-X github.com/muurk/numpad/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/numpad/internal/version.Commit=abc123" ./cmd/numpad-demo
//
// Unstamped builds take them from the module's VCS metadata, then from
// "dev-<build time>" and "unknown".
var (
	Version = ""
	Commit  = ""
)

// shortHash is how many characters of the revision are kept.
const shortHash = 7

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		v, c := fromSettings(info.Settings)
		if Version == "" {
			Version = v
		}
		if Commit == "" {
			Commit = c
		}
	}
	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromSettings derives a dev version from the commit date and a short,
// dirty-marked commit from the revision. Either may come back empty.
func fromSettings(settings []debug.BuildSetting) (version, commit string) {
	vcs := make(map[string]string, len(settings))
	for _, s := range settings {
		vcs[s.Key] = s.Value
	}

	if rev := vcs["vcs.revision"]; rev != "" {
		commit = rev[:min(len(rev), shortHash)]
		if vcs["vcs.modified"] == "true" {
			commit += "-dirty"
		}
	}
	if t, err := time.Parse(time.RFC3339, vcs["vcs.time"]); err == nil {
		version = "dev-" + t.Format("20060102")
	}
	return version, commit
}

// Full returns the version with its commit.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Banner is the one-line identification printed by the version command.
func Banner(program string) string {
	return program + " " + Full()
}

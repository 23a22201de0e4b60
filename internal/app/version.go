package app

import (
	"fmt"
	"runtime/debug"
)

// Release builds stamp these through ldflags, e.g.
//
//	go build -ldflags "-X github.com/heartmarshall/creatorhub-backend/internal/app.Version=1.4.0" ./cmd/api
//
// Plain "go build" from a checkout leaves them at their defaults; the VCS
// stamp the toolchain embeds fills Commit and BuildTime then.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the string logged at API startup.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = fromVCS(info.Settings, commit, built)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

// fromVCS only replaces values still at their "unknown" default.
func fromVCS(settings []debug.BuildSetting, commit, built string) (string, string) {
	var revision, modified string
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			if built == "unknown" && s.Value != "" {
				built = s.Value
			}
		}
	}
	if commit == "unknown" && revision != "" {
		if len(revision) > 12 {
			revision = revision[:12]
		}
		if modified == "true" {
			revision += "-dirty"
		}
		commit = revision
	}
	return commit, built
}

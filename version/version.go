// Package version provides the library version used in the client's
// User-Agent header.
//
// Version can be overridden at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/vcd/version.Version=1.2.0"
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is set at build time using -ldflags.
	Version = "dev"
	// GitCommit is set at build time using -ldflags.
	GitCommit = ""
)

// Info represents library version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
}

// GetVersionInfo returns the library version, falling back to module build
// info when the ldflags variables were not set.
func GetVersionInfo() *Info {
	info := &Info{
		Version:   Version,
		GitCommit: GitCommit,
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		for _, setting := range buildInfo.Settings {
			if setting.Key == "vcs.revision" && GitCommit == "" {
				info.GitCommit = setting.Value
				if len(info.GitCommit) > 7 {
					info.GitCommit = info.GitCommit[:7]
				}
			}
		}
	}

	return info
}

// GetShortVersion returns a short version string such as "1.2.0-abc1234".
func GetShortVersion() string {
	info := GetVersionInfo()
	if info.GitCommit != "" {
		return fmt.Sprintf("%s-%s", info.Version, info.GitCommit)
	}
	return info.Version
}

// UserAgent returns the value the client sends in its User-Agent header.
func UserAgent() string {
	return "vcd-client-go/" + Version
}

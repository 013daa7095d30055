package marblereplay

import "fmt"

// Version is the current version of the marble-replay library.
const Version = "0.4.0"

// GitCommit is the git commit hash (set by build flags)
var GitCommit string

// BuildTime is the build timestamp (set by build flags)
var BuildTime string

// VersionInfo returns detailed version information
func VersionInfo() map[string]string {
	info := map[string]string{
		"version": Version,
	}
	if GitCommit != "" {
		info["commit"] = GitCommit
	}
	if BuildTime != "" {
		info["buildTime"] = BuildTime
	}
	return info
}

// VersionString formats the version for CLI output, e.g. "0.4.0 (abc123, 2024-05-01)"
func VersionString() string {
	switch {
	case GitCommit != "" && BuildTime != "":
		return fmt.Sprintf("%s (%s, %s)", Version, GitCommit, BuildTime)
	case GitCommit != "":
		return fmt.Sprintf("%s (%s)", Version, GitCommit)
	default:
		return Version
	}
}

package contracts

import (
	"fmt"
	"runtime"
)

const (
	// ServiceName identifies the API in health and telemetry output
	ServiceName = "cash-flow-story-api"

	// Version is the current version of the application
	Version = "1.0.0"

	// APIVersion is the version of the HTTP contracts under /api
	APIVersion = "v1"
)

// Build metadata, set with -ldflags "-X cashflowstory/pkg/contracts.GitCommit=..."
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
	GitBranch = "unknown"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	Version      string `json:"version"`
	BuildTime    string `json:"build_time"`
	GitCommit    string `json:"git_commit"`
	GitBranch    string `json:"git_branch"`
	GoVersion    string `json:"go_version"`
	OS           string `json:"os"`
	Architecture string `json:"architecture"`
	APIVersion   string `json:"api_version"`
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:      Version,
		BuildTime:    BuildTime,
		GitCommit:    GitCommit,
		GitBranch:    GitBranch,
		GoVersion:    runtime.Version(),
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
		APIVersion:   APIVersion,
	}
}

// GetFullVersionString returns the one-line version printed by `cashflow --version`
func GetFullVersionString() string {
	info := GetVersionInfo()
	return fmt.Sprintf("cashflow v%s (commit %s, built %s, %s %s/%s)",
		info.Version, info.GitCommit, info.BuildTime, info.GoVersion, info.OS, info.Architecture)
}

// Package buildinfo holds build metadata for the repostatus binary.
// The linker injects values into cmd/repostatus/main.go; main() calls Set()
// to forward them here.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Set stores the build metadata received from linker-injected variables.
// Empty values keep the defaults.
func Set(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		date = d
	}
}

// Version returns the build version string.
func Version() string { return version }

// Commit returns the build commit hash.
func Commit() string { return commit }

// Date returns the build date string.
func Date() string { return date }

// Enrich replaces a missing commit with the VCS revision recorded by the Go toolchain.
func Enrich() {
	if commit != "none" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			commit = setting.Value
		}
	}
}

// String formats the metadata for --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built at: %s)", version, commit, date)
}

// Package version reports the detector build.
// The values can be set at build time using ldflags:
//
//	go build -ldflags "-X github.com/InfraSecConsult/surveillance-detector-go/internal/version.Version=v0.3.0 \
//	  -X github.com/InfraSecConsult/surveillance-detector-go/internal/version.CommitHash=$(git rev-parse --short HEAD)" ./cmd/detector
//
// Without ldflags the version comes from a VERSION file at the repository
// root and the commit from the VCS stamp Go embeds in the binary.
package version

import (
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
)

// Version is the application version. Set at build time via ldflags.
var Version = ""

// CommitHash is the git commit hash. Set at build time via ldflags.
var CommitHash = ""

// BuildTime is the build timestamp. Set at build time via ldflags.
var BuildTime = ""

// readBuildInfo is swapped in tests
var readBuildInfo = debug.ReadBuildInfo

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	GoVersion string `json:"go_version"`
}

// GetVersion returns the application version.
// Priority:
// 1. Build-time embedded version (ldflags)
// 2. VERSION file in current directory or parent directories
// 3. "dev" as fallback
func GetVersion() string {
	if Version != "" {
		return Version
	}
	for _, path := range []string{"VERSION", "../VERSION", "../../VERSION"} {
		if content, err := os.ReadFile(path); err == nil {
			if v := strings.TrimSpace(string(content)); v != "" {
				return v
			}
		}
	}
	return "dev"
}

// Commit returns the ldflags commit or the embedded VCS revision, shortened
func Commit() string {
	if CommitHash != "" {
		return CommitHash
	}
	info, ok := readBuildInfo()
	if !ok {
		return ""
	}
	var revision string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if revision != "" && dirty {
		revision += "-dirty"
	}
	return revision
}

// GetFullVersion returns version with commit hash if available
func GetFullVersion() string {
	v := GetVersion()
	if c := Commit(); c != "" {
		v += "+" + c
	}
	return v
}

// Get collects all build information
func Get() Info {
	return Info{
		Version:   GetVersion(),
		Commit:    Commit(),
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
}

// MarshalZerologObject lets the build info be logged with Object
func (i Info) MarshalZerologObject(e *zerolog.Event) {
	e.Str("version", i.Version).Str("go", i.GoVersion)
	if i.Commit != "" {
		e.Str("commit", i.Commit)
	}
	if i.BuildTime != "" {
		e.Str("build_time", i.BuildTime)
	}
}

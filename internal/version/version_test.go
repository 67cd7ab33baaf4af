package version

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime/debug"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setVars overrides the ldflags variables for one test
func setVars(t *testing.T, version, commit, buildTime string) {
	t.Helper()
	origVersion, origCommit, origBuildTime := Version, CommitHash, BuildTime
	Version, CommitHash, BuildTime = version, commit, buildTime
	t.Cleanup(func() { Version, CommitHash, BuildTime = origVersion, origCommit, origBuildTime })
}

func stubBuildInfo(t *testing.T, settings ...debug.BuildSetting) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: settings}, true
	}
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestGetVersion_DefaultsToDevWhenNoVersionSet(t *testing.T) {
	setVars(t, "", "", "")
	t.Chdir(t.TempDir())

	assert.Equal(t, "dev", GetVersion())
}

func TestGetVersion_UsesBuildTimeVersion(t *testing.T) {
	setVars(t, "v1.2.3", "", "")
	assert.Equal(t, "v1.2.3", GetVersion())
}

func TestGetVersion_ReadsVersionFile(t *testing.T) {
	setVars(t, "", "", "")
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "VERSION"), []byte("v2.0.0\n"), 0o644))

	assert.Equal(t, "v2.0.0", GetVersion())
}

func TestCommit(t *testing.T) {
	tests := []struct {
		name     string
		ldflags  string
		settings []debug.BuildSetting
		want     string
	}{
		{"ldflags win", "abc1234", []debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffffffff"}}, "abc1234"},
		{"vcs revision shortened", "", []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}}, "0123456"},
		{"dirty tree", "", []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
		}, "0123456-dirty"},
		{"no vcs stamp", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setVars(t, "v1.0.0", tt.ldflags, "")
			stubBuildInfo(t, tt.settings...)
			assert.Equal(t, tt.want, Commit())
		})
	}
}

func TestGetFullVersion(t *testing.T) {
	stubBuildInfo(t)

	setVars(t, "v1.0.0", "abc1234", "")
	assert.Equal(t, "v1.0.0+abc1234", GetFullVersion())

	setVars(t, "v1.0.0", "", "")
	assert.Equal(t, "v1.0.0", GetFullVersion())
}

func TestGet(t *testing.T) {
	setVars(t, "v3.0.0", "def5678", "2026-01-01T00:00:00Z")

	info := Get()
	assert.Equal(t, "v3.0.0", info.Version)
	assert.Equal(t, "def5678", info.Commit)
	assert.Equal(t, "2026-01-01T00:00:00Z", info.BuildTime)
	assert.NotEmpty(t, info.GoVersion)
}

func TestInfo_MarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Info().Object("build", Info{Version: "v1.0.0", GoVersion: "go1.24.1"}).Msg("")
	assert.JSONEq(t, `{"level":"info","build":{"version":"v1.0.0","go":"go1.24.1"}}`, buf.String())
}

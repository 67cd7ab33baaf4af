package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestInit_JSON(t *testing.T) {
	prevGlobal := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevGlobal
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	logger := Init(Config{Level: "warn", Format: "json", Output: &buf})

	logger.Info().Msg("dropped")
	logger.Warn().Str("handler", "ble").Msg("kept")
	componentLogger := Component("registry")
	componentLogger.Error().Msg("from component")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"handler":"ble"`)
	assert.Contains(t, out, `"component":"registry"`)
}

func TestInit_Console(t *testing.T) {
	prevGlobal := log.Logger
	t.Cleanup(func() { log.Logger = prevGlobal })

	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})
	log.Info().Msg("hello console")

	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), "hello console")
	assert.NotContains(t, buf.String(), `"message"`)
}

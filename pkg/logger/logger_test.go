package logger

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py-simplified/comparison-tool/pkg/config"
)

func TestNewDefaultsToInfo(t *testing.T) {
	log, err := New(config.LogConfig{})
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNewParsesLevel(t *testing.T) {
	log, err := New(config.LogConfig{Level: "debug"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestNewUnknownLevelFallsBack(t *testing.T) {
	log, err := New(config.LogConfig{Level: "loud"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNewCreatesLogDirectory(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "logs", "xlsxcmp.log")

	log, err := New(config.LogConfig{Level: "info", File: logFile, MaxSizeMB: 1})
	require.NoError(t, err)

	log.Info().Msg("hello")
	assert.DirExists(t, filepath.Join(dir, "logs"))
}

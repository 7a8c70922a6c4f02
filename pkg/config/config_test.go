package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ".", cfg.BasePath)
	assert.Equal(t, "_COMPARISON", cfg.OutputSuffix)
	assert.False(t, cfg.TextOnParseFailure)
	assert.Equal(t, 3, cfg.Auth.MaxAttempts)
	assert.NotEmpty(t, cfg.Auth.PasswordHash)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_path: /data/workbooks
output_suffix: _DIFF
text_on_parse_failure: true
auth:
  password_hash: abc123
  max_attempts: 5
log:
  level: debug
  file: logs/xlsxcmp.log
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/workbooks", cfg.BasePath)
	assert.Equal(t, "_DIFF", cfg.OutputSuffix)
	assert.True(t, cfg.TextOnParseFailure)
	assert.Equal(t, "abc123", cfg.Auth.PasswordHash)
	assert.Equal(t, 5, cfg.Auth.MaxAttempts)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "logs/xlsxcmp.log", cfg.Log.File)
	// Untouched keys keep their defaults.
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Auth.PasswordHash = "deadbeef"
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestFindPathPrefersFlag(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "flagged.yaml")
	require.NoError(t, os.WriteFile(flagPath, []byte("{}"), 0o644))

	envPath := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(envPath, []byte("{}"), 0o644))
	t.Setenv(EnvConfigPath, envPath)

	assert.Equal(t, flagPath, FindPath(flagPath))
	assert.Equal(t, envPath, FindPath(""))
	assert.Equal(t, envPath, FindPath(filepath.Join(dir, "missing.yaml")))
}

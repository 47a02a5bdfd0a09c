package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sghaida/sketchbook/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests in this file mutate the environment, so none of them run in parallel.

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvEnv, config.EnvLogPrefix, config.EnvFormat, config.EnvQuiet} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sketch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
	assert.Equal(t, "yaml", cfg.Format)
	assert.False(t, cfg.Quiet)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvEnv, "ci")
	t.Setenv(config.EnvLogPrefix, "[ci] ")
	t.Setenv(config.EnvFormat, "TEXT")
	t.Setenv(config.EnvQuiet, "true")

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Config{Env: "ci", LogPrefix: "[ci] ", Format: "text", Quiet: true}, cfg)
}

func TestLoadFromEnv_BadBoolKeepsDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvQuiet, "maybe")

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.Quiet)
}

func TestLoadFromEnv_InvalidFormat(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvFormat, "xml")

	_, err := config.LoadFromEnv()
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidFormat))
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("  ")
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "env: staging\nformat: text\nquiet: true\n")
	t.Setenv(config.EnvEnv, "prod")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env, "env wins over file")
	assert.Equal(t, "text", cfg.Format)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, "sketch: ", cfg.LogPrefix, "unset keys keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")

	_, err = config.Load(writeFile(t, "format: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")

	_, err = config.Load(writeFile(t, "format: json\n"))
	assert.ErrorIs(t, err, config.ErrInvalidFormat)
}

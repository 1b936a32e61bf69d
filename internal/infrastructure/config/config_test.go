package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Addr: ":8080", MinimumAge: 18}, cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("USER_API_ADDR", ":9090")
	t.Setenv("USER_API_MINIMUM_AGE", "21")
	t.Setenv("USER_API_LOG_DEVELOPMENT", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Addr: ":9090", MinimumAge: 21, LogDev: true}, cfg)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7070\"\nminimum_age: 16\n"), 0o600))
	t.Setenv("USER_API_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, 16, cfg.MinimumAge)
}

func TestLoad_RejectsNegativeMinimumAge(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("USER_API_MINIMUM_AGE", "-1")

	_, err := Load()
	assert.Error(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return dir
}

func TestSaveConfigCreatesDirectories(t *testing.T) {
	withTempHome(t)

	cfg := Config{APIKey: "test-key"}
	require.NoError(t, cfg.Save())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfigNonExistent(t *testing.T) {
	withTempHome(t)

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	withTempHome(t)

	original := Config{
		APIKey:    "dpt_verylongkeystring12345",
		ServerURL: "http://store.internal:8000",
		Username:  "testuser",
		Theme:     "dark",
		VimKeys:   true,
	}
	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &original, loaded)
}

func TestSaveConfigOverwritesExisting(t *testing.T) {
	withTempHome(t)

	cfg1 := Config{APIKey: "key1"}
	require.NoError(t, cfg1.Save())

	cfg2 := Config{APIKey: "key2"}
	require.NoError(t, cfg2.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "key2", loaded.APIKey)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	dir := withTempHome(t)

	cfgDir := filepath.Join(dir, ".datapoint")
	require.NoError(t, os.MkdirAll(cfgDir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config"), []byte(""), 0600))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := withTempHome(t)

	cfgDir := filepath.Join(dir, ".datapoint")
	require.NoError(t, os.MkdirAll(cfgDir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config"), []byte("invalid: yaml: content:"), 0600))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadConfigMissingAPIKey(t *testing.T) {
	withTempHome(t)

	cfg := Config{Username: "nobody"}
	require.NoError(t, cfg.Save())

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "api_key")
}

func TestConfigPermissionsStrictlyEnforced(t *testing.T) {
	withTempHome(t)

	cfg := Config{APIKey: "secret"}
	require.NoError(t, cfg.Save())

	require.NoError(t, os.Chmod(Path(), 0644))

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "permissions")
}

func TestPathReturnsCorrectLocation(t *testing.T) {
	path := Path()
	assert.Contains(t, path, ".datapoint")
	assert.Contains(t, path, "config")
}

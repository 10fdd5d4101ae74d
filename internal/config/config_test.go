package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/classdesk/internal/api"
)

func TestSaveConfigCreatesDirectories(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Config{
		APIKey: "test-key",
	}

	err := cfg.Save()
	require.NoError(t, err)

	// Verify file exists and has correct permissions
	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfigNonExistent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvLogLevel, "")

	original := Config{
		APIKey:         "cls_verylongkeystring12345",
		Username:       "johndoe",
		BaseURL:        "http://classroom.test:9000",
		DateLayout:     "2006-01-02",
		ResetOnCancel:  true,
		ResyncOnUpdate: true,
		LogLevel:       "debug",
	}

	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)
}

func TestSaveConfigOverwritesExisting(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, (&Config{APIKey: "key1"}).Save())
	require.NoError(t, (&Config{APIKey: "key2"}).Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "key2", loaded.APIKey)
}

func TestLoadRejectsOpenPermissions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, (&Config{APIKey: "key"}).Save())
	require.NoError(t, os.Chmod(Path(), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permissions too open")
}

func TestLoadRejectsMissingAPIKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.MkdirAll(Dir(), 0700))
	require.NoError(t, os.WriteFile(Path(), []byte("username: johndoe\n"), 0600))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing api_key")
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.MkdirAll(Dir(), 0700))
	require.NoError(t, os.WriteFile(Path(), []byte("api_key: [unterminated\n"), 0600))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, (&Config{APIKey: "key", BaseURL: "http://file.test"}).Save())
	t.Setenv(EnvAPIURL, "http://env.test")
	t.Setenv(EnvLogLevel, "warn")

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://env.test", loaded.BaseURL)
	assert.Equal(t, "warn", loaded.LogLevel)
}

func TestAPIBaseURLFallbacks(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	var nilCfg *Config
	assert.Equal(t, api.DefaultBaseURL, nilCfg.APIBaseURL())
	assert.Equal(t, api.DefaultBaseURL, (&Config{}).APIBaseURL())
	assert.Equal(t, "http://x.test", (&Config{BaseURL: "http://x.test"}).APIBaseURL())

	t.Setenv(EnvAPIURL, "http://env.test")
	assert.Equal(t, "http://env.test", nilCfg.APIBaseURL())
}

func TestDisplayDateLayoutDefault(t *testing.T) {
	var nilCfg *Config
	assert.Equal(t, DefaultDateLayout, nilCfg.DisplayDateLayout())
	assert.Equal(t, "02.01.2006", (&Config{DateLayout: "02.01.2006"}).DisplayDateLayout())
}

func TestNewClientUsesConfigValues(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	client := (&Config{APIKey: "k", BaseURL: "http://cfg.test/"}).NewClient()
	assert.Equal(t, "http://cfg.test", client.BaseURL())
}

func TestLoadDotEnvSetsVariables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvAPIURL+"=http://dotenv.test\n"), 0600))
	t.Setenv(EnvAPIURL, "")
	require.NoError(t, os.Unsetenv(EnvAPIURL))

	LoadDotEnv(path)
	assert.Equal(t, "http://dotenv.test", os.Getenv(EnvAPIURL))
}

func TestPathsLiveUnderHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	assert.Equal(t, filepath.Join(dir, ".classdesk", "config"), Path())
	assert.Equal(t, filepath.Join(dir, ".classdesk", "classdesk.log"), LogPath())
}

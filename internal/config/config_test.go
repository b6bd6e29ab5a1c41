package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/secplus/internal/store"
)

// isolate points every lookup path at fresh temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	for _, key := range []string{"SECPLUS_ENV", "SECPLUS_DB_PATH", "SECPLUS_LOG_LEVEL", "SECPLUS_CONTENT_DIR"} {
		// Setenv restores the original value on cleanup; unset so godotenv
		// sees the key as absent.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, filepath.Join(dir, "data", "secplus", "secplus.db"), cfg.DBPath)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.ContentDir)
	assert.Equal(t, store.DefaultMaxValueBytes, cfg.Storage.MaxValueBytes)

	_, err = os.Stat(filepath.Join(dir, "data", "secplus"))
	assert.True(t, os.IsNotExist(err), "loading config must not create the data dir")
}

func TestLoad_DBPathFromEnv(t *testing.T) {
	dir := isolate(t)
	want := filepath.Join(dir, "elsewhere", "study.db")
	t.Setenv("SECPLUS_DB_PATH", want)

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, want, cfg.DBPath)
}

func TestConfig_LogPath(t *testing.T) {
	db := filepath.Join("/var", "lib", "secplus", "study.db")

	cfg := &Config{}
	assert.Equal(t, filepath.Join("/var", "lib", "secplus", "secplus.log"), cfg.LogPath(db))

	cfg.Log.File = "/tmp/custom.log"
	assert.Equal(t, "/tmp/custom.log", cfg.LogPath(db))

	cfg.Log.File = LogOff
	assert.Empty(t, cfg.LogPath(db))
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: local
db_path: /tmp/study.db
log:
  level: debug
storage:
  max_value_bytes: 1024
`), 0o644))

	cfg, err := Load(Options{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "/tmp/study.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 1024, cfg.Storage.MaxValueBytes)
}

func TestLoad_SearchPath(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("content_dir: ./content\n"), 0o644))

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "./content", cfg.ContentDir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))
	t.Setenv("SECPLUS_LOG_LEVEL", "error")

	cfg, err := Load(Options{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SECPLUS_CONTENT_DIR=/srv/cards\n"), 0o644))

	cfg, err := Load(Options{EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "/srv/cards", cfg.ContentDir)
}

func TestLoad_MissingExplicitFiles(t *testing.T) {
	dir := isolate(t)

	_, err := Load(Options{EnvFile: filepath.Join(dir, "nope.env")})
	assert.Error(t, err)

	_, err = Load(Options{ConfigFile: filepath.Join(dir, "nope.yaml")})
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unclosed\n"), 0o644))

	_, err := Load(Options{ConfigFile: path})
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"dataDir": "/tmp/battleship",
		"bot": { "seed": 1234 },
		"archive": { "enabled": false }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "battleship.cfg.json"), []byte(cfg), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", GetString("logLevel"))
	assert.Equal(t, "/tmp/battleship", GetString("dataDir"))
	assert.Equal(t, int64(1234), GetInt64("bot.seed"))
	assert.Equal(t, false, GetBool("archive.enabled"))
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "battleship.cfg.json"), []byte(`{}`), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "info", GetString("logLevel"))
	assert.Equal(t, "./data", GetString("dataDir"))
	assert.Equal(t, int64(0), GetInt64("bot.seed"))
	assert.Equal(t, true, GetBool("archive.enabled"))
	assert.Equal(t, "./data/games.db", GetString("archive.path"))
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "info", GetString("logLevel"))
}

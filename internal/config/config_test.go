package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saiyan/training-app/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, config.CatalogSourceMemory, cfg.Catalog.Source)
	assert.Equal(t, time.Second, cfg.Session.RestTick)
	assert.Equal(t, time.Minute, cfg.Session.ElapsedTick)
	assert.Equal(t, "Warrior", cfg.User.Name)
	assert.Equal(t, 100, cfg.User.PowerLevel)
	assert.Equal(t, "info", cfg.Log.Level)

	loc, err := cfg.Streak.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoadConfig_File(t *testing.T) {
	dir := writeConfig(t, `
server:
  address: ":9090"
catalog:
  source: mongo
  seed: false
session:
  rest_tick: 500ms
  elapsed_tick: 30s
streak:
  timezone: Asia/Tokyo
user:
  name: Kakarot
  power_level: 9001
  goal: Endurance
`)
	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, config.CatalogSourceMongo, cfg.Catalog.Source)
	assert.False(t, cfg.Catalog.Seed)
	assert.Equal(t, 500*time.Millisecond, cfg.Session.RestTick)
	assert.Equal(t, 30*time.Second, cfg.Session.ElapsedTick)
	assert.Equal(t, "Kakarot", cfg.User.Name)
	assert.Equal(t, 9001, cfg.User.PowerLevel)
	assert.Equal(t, "Endurance", cfg.User.Goal)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":7070")
	t.Setenv("USER_POWER_LEVEL", "500")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Address)
	assert.Equal(t, 500, cfg.User.PowerLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown catalog":  "catalog:\n  source: postgres\n",
		"zero rest tick":   "session:\n  rest_tick: 0s\n",
		"negative power":   "user:\n  power_level: -1\n",
		"unknown timezone": "streak:\n  timezone: Mars/Olympus_Mons\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, content))
			require.Error(t, err)
		})
	}
}

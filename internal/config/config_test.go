package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SAVE_BACKEND", "SAVE_DIR", "SAVE_SLOT", "REDIS_URL", "SQLITE_PATH",
		"CATALOG_PATH", "PLAYER_NAME", "PLAYER_CLASS", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Save.Backend)
	assert.Equal(t, "./saves", cfg.Save.Dir)
	assert.Equal(t, "default", cfg.Save.Slot)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "./saves/village.db", cfg.SQLite.Path)
	assert.Equal(t, "", cfg.Catalog.Path)
	assert.Equal(t, "Chad", cfg.Player.Name)
	assert.Equal(t, "전사", cfg.Player.Class)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SAVE_BACKEND", " Redis ")
	t.Setenv("SAVE_SLOT", "hero")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")
	t.Setenv("PLAYER_NAME", "Leonidas")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CATALOG_PATH", "/etc/village/catalog.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Save.Backend)
	assert.Equal(t, "hero", cfg.Save.Slot)
	assert.Equal(t, "redis://cache:6379/2", cfg.Redis.URL)
	assert.Equal(t, "Leonidas", cfg.Player.Name)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/etc/village/catalog.yaml", cfg.Catalog.Path)
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("SAVE_BACKEND", "postgres")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Save:   SaveConfig{Backend: BackendMemory, Slot: "default"},
			Player: PlayerConfig{Name: "Chad", Class: "전사"},
		}
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Save.Slot = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Player.Name = "  "
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Player.Name = "Chad, the Bold"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Player.Class = "전사\n"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Save.Backend = BackendSQLite
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Save.Backend = BackendFile
	cfg.Save.Dir = "/tmp/saves"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_RejectsSeparatorInPlayerName(t *testing.T) {
	t.Setenv("SAVE_BACKEND", "memory")
	t.Setenv("PLAYER_NAME", "Chad,Jr")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PLAYER_NAME")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "noun.csv", cfg.Dictionary)
	assert.Equal(t, "チキュウ", cfg.Start)
	assert.Equal(t, "ツキノイシ", cfg.Target)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "gob", cfg.Cache.Backend)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "shiritori.yaml")

	cfg := DefaultConfig()
	cfg.Dictionary = "words.csv"
	cfg.Cache.Backend = "sqlite"
	cfg.Builder.SkipMalformed = true
	cfg.Solver.Workers = 4
	cfg.ReportDir = "logs"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SHIRITORI_CACHE_BACKEND", "sqlite")
	t.Setenv("SHIRITORI_DICTIONARY", "env.csv")
	t.Setenv("SHIRITORI_CACHE_ENABLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Cache.Backend)
	assert.Equal(t, "env.csv", cfg.Dictionary)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  backend: pickle\n"), 0o644))

	_, err := Load(path)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "cache.backend", cfgErr.Field)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{"empty dictionary", func(c *Config) { c.Dictionary = "" }, "dictionary"},
		{"tokenizer", func(c *Config) { c.Tokenizer.Dict = "mecab" }, "tokenizer.dict"},
		{"workers", func(c *Config) { c.Solver.Workers = -1 }, "solver.workers"},
		{"format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(cfg)
			var cfgErr *ConfigError
			require.ErrorAs(t, cfg.Validate(), &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable LoadConfig and ConfigPath consult.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ACRO_CONFIG", "ACRO_CATALOG", "ACRO_LIMIT", "ACRO_CUTOFF", "ACRO_LOG_LEVEL", "XDG_CONFIG_HOME"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_MissingFileIsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
catalog: refs/acronyms.yaml
limit: 5
cutoff: 0.7
historyKeep: 3
color: never
log:
  level: debug
  format: json
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "refs", "acronyms.yaml"), cfg.Catalog)
	assert.Equal(t, 5, cfg.Limit)
	assert.InDelta(t, 0.7, cfg.Cutoff, 1e-9)
	assert.Equal(t, 3, cfg.HistoryKeep)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, LoggingConfig{Level: "debug", Format: "json"}, cfg.Log)
}

func TestLoadConfig_FileCatalogEqualToDefaultIsResolved(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "catalog: acronyms.yaml\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), DefaultCatalog), cfg.Catalog)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig(writeConfig(t, "limit: 7\n"))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Limit)
	assert.Equal(t, DefaultCatalog, cfg.Catalog)
	assert.InDelta(t, 0.55, cfg.Cutoff, 1e-9)
	assert.Equal(t, 20, cfg.HistoryKeep)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ACRO_CATALOG", "/data/acro.yaml")
	t.Setenv("ACRO_LIMIT", "9")
	t.Setenv("ACRO_CUTOFF", "0.8")
	t.Setenv("ACRO_LOG_LEVEL", "info")

	cfg, err := LoadConfig(writeConfig(t, "limit: 5\ncatalog: /elsewhere.yaml\n"))
	require.NoError(t, err)
	assert.Equal(t, "/data/acro.yaml", cfg.Catalog)
	assert.Equal(t, 9, cfg.Limit)
	assert.InDelta(t, 0.8, cfg.Cutoff, 1e-9)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_BadEnvNumbersIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("ACRO_LIMIT", "many")
	t.Setenv("ACRO_CUTOFF", "high")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Limit)
	assert.InDelta(t, 0.55, cfg.Cutoff, 1e-9)
}

func TestLoadConfig_ParseError(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "limit: [oops\n")
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestConfigPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("ACRO_CONFIG", "/etc/acro.yaml")
	assert.Equal(t, "/etc/acro.yaml", ConfigPath())

	t.Setenv("ACRO_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "acro", "config.yaml"), ConfigPath())

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/me")
	assert.Equal(t, filepath.Join("/home/me", ".config", "acro", "config.yaml"), ConfigPath())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"cutoff one", func(c *Config) { c.Cutoff = 1 }, true},
		{"cutoff zero", func(c *Config) { c.Cutoff = 0 }, false},
		{"cutoff above one", func(c *Config) { c.Cutoff = 1.2 }, false},
		{"empty catalog", func(c *Config) { c.Catalog = " " }, false},
		{"negative history", func(c *Config) { c.HistoryKeep = -1 }, false},
		{"zero history", func(c *Config) { c.HistoryKeep = 0 }, true},
		{"bad color", func(c *Config) { c.Color = "rainbow" }, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if tt.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}

func TestConfig_EffectiveLimit(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 7, cfg.EffectiveLimit(7))
	assert.Equal(t, 3, cfg.EffectiveLimit(0))
	assert.Equal(t, 3, cfg.EffectiveLimit(-2))

	cfg.Limit = 5
	assert.Equal(t, 5, cfg.EffectiveLimit(0))

	cfg.Limit = 0
	assert.Equal(t, 3, cfg.EffectiveLimit(0))
}

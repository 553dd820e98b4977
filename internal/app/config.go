package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/corey/acro/internal/domain/index"
	"github.com/corey/acro/internal/logger"
	"gopkg.in/yaml.v3"
)

// DefaultCatalog is the catalog file used when nothing else is configured,
// resolved against the working directory.
const DefaultCatalog = "acronyms.yaml"

// Config is the user configuration.
type Config struct {
	Catalog     string        `yaml:"catalog"`
	Limit       int           `yaml:"limit"`
	Cutoff      float64       `yaml:"cutoff"`
	HistoryKeep int           `yaml:"historyKeep"`
	Color       string        `yaml:"color"` // auto, always, never
	Log         LoggingConfig `yaml:"log"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Catalog:     DefaultCatalog,
		Limit:       index.DefaultLimit,
		Cutoff:      index.DefaultCutoff,
		HistoryKeep: 20,
		Color:       "auto",
		Log: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// ConfigPath returns where the config file is looked up: $ACRO_CONFIG, else
// $XDG_CONFIG_HOME/acro/config.yaml, else ~/.config/acro/config.yaml.
func ConfigPath() string {
	if p := os.Getenv("ACRO_CONFIG"); p != "" {
		return p
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "acro", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "acro", "config.yaml")
}

// LoadConfig reads the YAML config at path (a missing file means defaults)
// and applies ACRO_* environment overrides. A relative catalog path in the
// file is resolved against the file's directory.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
			}
			// A pointer tells "catalog: acronyms.yaml" apart from the default.
			var set struct {
				Catalog *string `yaml:"catalog"`
			}
			if err := yaml.Unmarshal(data, &set); err != nil {
				return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
			}
			if set.Catalog != nil && cfg.Catalog != "" {
				cfg.Catalog = expandHome(cfg.Catalog)
				if !filepath.IsAbs(cfg.Catalog) {
					cfg.Catalog = filepath.Join(filepath.Dir(path), cfg.Catalog)
				}
			}
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// applyEnvOverrides reads ACRO_* environment variables and overrides the
// corresponding config fields. Unparsable numbers are ignored.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ACRO_CATALOG"); v != "" {
		cfg.Catalog = expandHome(v)
	}
	if v := os.Getenv("ACRO_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Limit = n
		}
	}
	if v := os.Getenv("ACRO_CUTOFF"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Cutoff = f
		}
	}
	if v := os.Getenv("ACRO_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// Validate rejects values the rest of the program cannot work with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Catalog) == "" {
		return fmt.Errorf("catalog path is empty")
	}
	if c.Cutoff <= 0 || c.Cutoff > 1 {
		return fmt.Errorf("cutoff %v out of range (0, 1]", c.Cutoff)
	}
	if c.HistoryKeep < 0 {
		return fmt.Errorf("historyKeep %d must not be negative", c.HistoryKeep)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color %q: want auto, always or never", c.Color)
	}
	if !logger.ValidLevel(c.Log.Level) {
		return fmt.Errorf("log level %q: want debug, info, warn or error", c.Log.Level)
	}
	return nil
}

// EffectiveLimit returns the effective result cap: n when positive, else the
// configured limit, else index.DefaultLimit.
func (c Config) EffectiveLimit(n int) int {
	if n > 0 {
		return n
	}
	if c.Limit > 0 {
		return c.Limit
	}
	return index.DefaultLimit
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

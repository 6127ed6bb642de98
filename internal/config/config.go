// Package config loads hyprbinds configuration from TOML and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full hyprbinds configuration.
type Config struct {
	// HyprctlPath is the hyprctl binary name or path.
	HyprctlPath string `mapstructure:"hyprctl_path"`
	// FixturePath optionally points at a binds JSON file used when
	// hyprctl is unavailable.
	FixturePath string `mapstructure:"fixture_path"`
	// Margin is subtracted from the terminal width before rendering.
	Margin int `mapstructure:"margin"`
	// ModMasks extends or overrides the built-in modifier mask labels.
	// Keys are decimal mask values ("64" = SUPER).
	ModMasks map[string]string `mapstructure:"modmasks"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // trace, debug, info, warn, error
	Format string `mapstructure:"format"` // console or json
}

// Load reads config.toml from the hyprbinds config directory (or the
// working directory for development) and applies HYPRBINDS_* overrides.
// A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("HYPRBINDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short forms: HYPRBINDS_LOG_LEVEL instead of HYPRBINDS_LOGGING_LEVEL.
	if err := v.BindEnv("logging.level", "HYPRBINDS_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("bind HYPRBINDS_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "HYPRBINDS_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("bind HYPRBINDS_LOG_FORMAT: %w", err)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.FixturePath = expandPath(cfg.FixturePath)
	return &cfg, nil
}

// ModMaskOverrides parses the modmasks section into mask values. A key
// that is not a decimal integer is a configuration error.
func (c *Config) ModMaskOverrides() (map[int]string, error) {
	if len(c.ModMasks) == 0 {
		return nil, nil
	}
	out := make(map[int]string, len(c.ModMasks))
	for key, label := range c.ModMasks {
		mask, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("modmasks: %q is not a mask value", key)
		}
		out[mask] = label
	}
	return out, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("hyprctl_path", "hyprctl")
	v.SetDefault("fixture_path", "")
	v.SetDefault("margin", 2)
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}

func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hyprbinds"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "hyprbinds"), nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

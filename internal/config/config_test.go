package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	appDir := filepath.Join(dir, "hyprbinds")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "config.toml"), []byte(content), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "hyprctl", cfg.HyprctlPath)
	require.Empty(t, cfg.FixturePath)
	require.Equal(t, 2, cfg.Margin)
	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFromFile(t *testing.T) {
	writeConfig(t, `
hyprctl_path = "/usr/local/bin/hyprctl"
margin = 4

[modmasks]
8 = "ALT"
64 = "MOD4"

[logging]
level = "debug"
format = "json"
`)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/usr/local/bin/hyprctl", cfg.HyprctlPath)
	require.Equal(t, 4, cfg.Margin)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)

	masks, err := cfg.ModMaskOverrides()
	require.NoError(t, err)
	require.Equal(t, map[int]string{8: "ALT", 64: "MOD4"}, masks)
}

func TestLoadMalformedFile(t *testing.T) {
	writeConfig(t, "hyprctl_path = [broken")

	_, err := Load()
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HYPRBINDS_HYPRCTL_PATH", "/opt/hyprctl")
	t.Setenv("HYPRBINDS_LOG_LEVEL", "trace")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/opt/hyprctl", cfg.HyprctlPath)
	require.Equal(t, "trace", cfg.Logging.Level)
}

func TestModMaskOverridesRejectsBadKey(t *testing.T) {
	cfg := &Config{ModMasks: map[string]string{"super": "SUPER"}}

	_, err := cfg.ModMaskOverrides()
	require.ErrorContains(t, err, "not a mask value")
}

func TestModMaskOverridesEmpty(t *testing.T) {
	masks, err := (&Config{}).ModMaskOverrides()
	require.NoError(t, err)
	require.Nil(t, masks)
}

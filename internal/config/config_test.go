// path: internal/config/config_test.go
package config

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

func isolateConfigDir(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestInitConfigDefaults(t *testing.T) {
	isolateConfigDir(t)

	cfg, err := InitConfig()
	require.NoError(t, err)
	require.Equal(t, DisplayDesktop, cfg.DisplayMode)
	require.Equal(t, ThemeClassic, cfg.Theme)
	require.True(t, cfg.ShowHP)
}

func TestSaveAndReload(t *testing.T) {
	isolateConfigDir(t)

	cfg, err := InitConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.SetDisplayMode(DisplayMobile))
	cfg.Theme = ThemeDark
	require.NoError(t, cfg.Save())

	path, err := xdg.SearchConfigFile(cfgFile)
	require.NoError(t, err)
	require.Equal(t, "config.json", filepath.Base(path))

	again, err := InitConfig()
	require.NoError(t, err)
	require.Equal(t, DisplayMobile, again.DisplayMode)
	require.Equal(t, ThemeDark, again.Theme)
}

func TestSetDisplayModeRejectsUnknown(t *testing.T) {
	cfg := DefaultConfig
	err := cfg.SetDisplayMode("holographic")
	require.Error(t, err)
	require.Equal(t, DisplayDesktop, cfg.DisplayMode)
}

func TestValidateRejectsUnknownTheme(t *testing.T) {
	cfg := DefaultConfig
	cfg.Theme = "neon"
	require.Error(t, cfg.Validate())
}

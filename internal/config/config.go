// path: internal/config/config.go
// Package config persists client display preferences under the XDG config
// directory.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var cfgFile = "hpchess/config.json"

// Display modes supported by the web client. Mobile collapses the side panel
// and enlarges touch targets.
const (
	DisplayDesktop = "desktop"
	DisplayMobile  = "mobile"
)

// Board color themes understood by the terminal and web clients.
const (
	ThemeClassic = "classic"
	ThemeDark    = "dark"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type Config struct {
	DisplayMode string `json:"display_mode"`
	Theme       string `json:"theme"`
	ShowHP      bool   `json:"show_hp"`
}

var DefaultConfig = Config{
	DisplayMode: DisplayDesktop,
	Theme:       ThemeClassic,
	ShowHP:      true,
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		readCfgFile(absPath, &config)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	switch c.DisplayMode {
	case DisplayDesktop, DisplayMobile:
	default:
		return &InvalidConfig{fmt.Sprintf("unknown display mode %q", c.DisplayMode)}
	}
	switch c.Theme {
	case ThemeClassic, ThemeDark:
	default:
		return &InvalidConfig{fmt.Sprintf("unknown theme %q", c.Theme)}
	}
	return nil
}

// SetDisplayMode validates and applies a new display mode.
func (c *Config) SetDisplayMode(mode string) error {
	prev := c.DisplayMode
	c.DisplayMode = mode
	if err := c.Validate(); err != nil {
		c.DisplayMode = prev
		return err
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) {
	configReader, err := os.ReadFile(filePath)
	if err == nil {
		_ = json.Unmarshal(configReader, &a)
	}
}

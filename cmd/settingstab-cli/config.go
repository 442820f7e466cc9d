package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-settingstab/pkg/host"
)

// Config holds CLI configuration.
type Config struct {
	Store  StoreConfig
	Page   string
	Assets AssetsConfig
	Log    LogConfig
}

// StoreConfig selects where option values live. Driver is one of memory,
// file or sqlite.
type StoreConfig struct {
	Driver string
	Path   string
}

// AssetsConfig holds the public base URL of the picker runtime.
type AssetsConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// LoadConfig reads configuration from file and env. Env var overrides use
// prefix SETTINGSTAB_. An explicit path wins over SETTINGSTAB_CONFIG.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("store.driver", "file")
	v.SetDefault("store.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "settingstab", "options.toml"))
	v.SetDefault("page", host.SettingsPage)
	v.SetDefault("assets.base_url", "/settingstab/")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("SETTINGSTAB_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "settingstab"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SETTINGSTAB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var missing viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &missing) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case "memory", "file", "sqlite":
	default:
		return Config{}, fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	return c, nil
}

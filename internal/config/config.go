// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads masterkey settings from defaults, config files, a
// .env file, MASTERKEY_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the complete set of masterkey settings.
type Config struct {
	Keys KeysConfig `mapstructure:"keys" yaml:"keys"`
	Log  LogConfig  `mapstructure:"log" yaml:"log"`
	TUI  TUIConfig  `mapstructure:"tui" yaml:"tui"`
}

// KeysConfig points at the HMAC key files used by the v1 and v3 algorithms.
type KeysConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	// File receives log output while the TUI is running.
	File string `mapstructure:"file" yaml:"file"`
}

// TUIConfig tunes the interactive form.
type TUIConfig struct {
	// DefaultPlatform is preselected when the form opens ("wii", "3ds", ...).
	DefaultPlatform string `mapstructure:"default_platform" yaml:"default_platform"`
	// Clipboard enables copying the computed key with "c".
	Clipboard bool `mapstructure:"clipboard" yaml:"clipboard"`
}

// Defaults returns the default values keyed the way viper expects them.
func Defaults() map[string]any {
	return map[string]any{
		"keys.dir":             "",
		"log.level":            "info",
		"log.file":             "",
		"tui.default_platform": "",
		"tui.clipboard":        true,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Masterkey")
		default: // Linux, macOS, etc.
			configDir = "/etc/masterkey"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "masterkey")
	}

	return filepath.Join(configDir, "masterkey.yaml"), nil
}

// LoadConfig builds a T from defaults, the first masterkey.yaml found (or
// the explicit path), .env, the environment and the flags of cmd. Flags are
// bound by name with dashes mapped to dots, so --keys-dir sets keys.dir.
//
// When no config file exists the populated T is returned together with a
// viper.ConfigFileNotFoundError so callers can write a default file.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("masterkey")
	v.SetConfigType("yaml")
	if configPath != nil {
		v.SetConfigFile(*configPath)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return c, err
		}
		notFound = nf
	}

	if err := loadDotEnv(".env"); err != nil {
		return c, err
	}
	v.SetEnvPrefix("masterkey")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "help" || f.Name == "version" {
			return
		}
		if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "."), f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return c, bindErr
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, notFound
}

// loadDotEnv exports the variables of path without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// WriteConfigFile writes c as YAML to the user or system config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}

// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package config loads and persists the Fortress configuration using
// viper. Precedence, lowest to highest: built-in defaults, config file
// (fortress.yaml), FORTRESS_* environment variables, command-line
// flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the persisted application configuration. Only preferences
// live here; generated passwords are never written anywhere.
type Config struct {
	// Language selects the UI language ("en", "de").
	Language string `mapstructure:"language" yaml:"language"`
	// GuessRate is the assumed attacker speed in guesses per second
	// used for crack-time estimates.
	GuessRate float64 `mapstructure:"guess_rate" yaml:"guess_rate"`
	// Generator holds default password generation preferences.
	Generator Generator `mapstructure:"generator" yaml:"generator"`
	// Passphrase holds default passphrase generation preferences.
	Passphrase Passphrase `mapstructure:"passphrase" yaml:"passphrase"`
}

// Generator are the persisted password generation defaults.
type Generator struct {
	Length           int  `mapstructure:"length" yaml:"length"`
	ExcludeAmbiguous bool `mapstructure:"exclude_ambiguous" yaml:"exclude_ambiguous"`
	RequireEach      bool `mapstructure:"require_each" yaml:"require_each"`
}

// Passphrase are the persisted passphrase generation defaults.
type Passphrase struct {
	Words     int    `mapstructure:"words" yaml:"words"`
	Separator string `mapstructure:"separator" yaml:"separator"`
}

// Defaults returns the built-in configuration defaults as a flat
// viper-keyed map.
func Defaults() map[string]any {
	return map[string]any{
		"language":                    "en",
		"guess_rate":                  1e10,
		"generator.length":            16,
		"generator.exclude_ambiguous": false,
		"generator.require_each":      false,
		"passphrase.words":            4,
		"passphrase.separator":        "-",
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Fortress")
		default: // Linux, macOS, etc.
			configDir = "/etc/fortress"
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "fortress")
	}

	return filepath.Join(configDir, "fortress.yaml"), nil
}

// LoadConfig resolves the configuration from defaults, the config file,
// environment variables and the command's flags, in that order of
// precedence.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("fortress")
	v.SetConfigType("yaml")

	// 3. An explicit --config path has the highest precedence for
	// file-based configuration.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	// 4. Add standard config locations
	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".") // Look for fortress.yaml in current dir

	// 5. Read in the primary config file. A missing file is fine, any
	// other read error is fatal.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	// 6. Read from environment variables (FORTRESS_GUESS_RATE etc.)
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("fortress")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 7. Command-line flags win over everything else.
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// WriteConfigFile persists the configuration to the user or system
// config path, creating the directory when needed.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600: the file only holds preferences today, but keep it private.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ConfigEnvVar points at an explicit settings file, overriding the default
// location in the configuration directory.
const ConfigEnvVar = "ARGSBAR_CONFIG"

// Settings holds application preferences.
type Settings struct {
	LogLevel         string `mapstructure:"log_level"`
	LogFile          string `mapstructure:"log_file"`
	ParamsFile       string `mapstructure:"params_file"`
	ShowDescriptions bool   `mapstructure:"show_descriptions"`
	Width            int    `mapstructure:"width"` // 0 means use the terminal width
}

// FlagBindings maps settings keys to the CLI flags that override them.
var FlagBindings = map[string]string{
	"log_level":   "log-level",
	"log_file":    "log-file",
	"params_file": "params",
	"width":       "width",
}

// LoadSettings reads settings from file, env and flags. Env var overrides
// use prefix ARGSBAR_ (e.g. ARGSBAR_PARAMS_FILE). Flags that were set on
// the command line win over everything else. flags may be nil.
func LoadSettings(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	defaultParams, err := DefaultParamsPath()
	if err != nil {
		defaultParams = paramsFile
	}

	v.SetDefault("log_level", "")
	v.SetDefault("log_file", "")
	v.SetDefault("params_file", defaultParams)
	v.SetDefault("show_descriptions", true)
	v.SetDefault("width", 0)

	v.SetConfigType("yaml")
	explicit := os.Getenv(ConfigEnvVar)
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
		v.SetConfigFile(explicit)
	} else if dir, err := GetConfigDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("settings")
	}

	v.SetEnvPrefix("ARGSBAR")
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range FlagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing settings file is fine unless ARGSBAR_CONFIG named it
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if s.ParamsFile != "" {
		s.ParamsFile = filepath.Clean(s.ParamsFile)
	}
	return s, nil
}

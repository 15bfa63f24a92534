package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/muurk/argsbar/internal/argsbar"
)

const (
	appName        = "argsbar"
	paramsFile     = "params.yaml"
	paramSetFormat = 1
)

// ParamSet represents a parameter definition file: the ordered list of
// fields the bar collects.
type ParamSet struct {
	Version int         `yaml:"version"`
	Params  []ParamSpec `yaml:"params"`
}

// ParamSpec describes one field in a ParamSet.
type ParamSpec struct {
	Name     string           `yaml:"name"`
	Desc     string           `yaml:"desc,omitempty"`
	Default  string           `yaml:"default,omitempty"` // Serialized, never validated
	Required bool             `yaml:"required,omitempty"`
	Encoding argsbar.Encoding `yaml:"encoding"`
}

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/argsbar or $HOME/.config/argsbar
//   - macOS: $HOME/.config/argsbar (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\argsbar
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			// Fallback to USERPROFILE\AppData\Local if LOCALAPPDATA not set
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// DefaultParamsPath returns the path of the parameter file inside the
// configuration directory.
func DefaultParamsPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, paramsFile), nil
}

// LoadParamSet reads and validates a parameter file.
func LoadParamSet(path string) (*ParamSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read params file: %w", err)
	}

	var set ParamSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse params file: %w", err)
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params file %s: %w", path, err)
	}

	return &set, nil
}

// Validate checks the format version and that every parameter has a
// unique, non-empty name.
func (s *ParamSet) Validate() error {
	if s.Version != paramSetFormat {
		return fmt.Errorf("unsupported params version: %d (expected %d)", s.Version, paramSetFormat)
	}

	seen := make(map[string]int, len(s.Params))
	for i, p := range s.Params {
		if p.Name == "" {
			return fmt.Errorf("param %d: name cannot be empty", i+1)
		}
		if first, dup := seen[p.Name]; dup {
			return fmt.Errorf("param %d: duplicate name %q (first defined as param %d)", i+1, p.Name, first)
		}
		seen[p.Name] = i + 1
	}
	return nil
}

// Parameters converts the specs into bar parameters, preserving order.
func (s *ParamSet) Parameters() []argsbar.InputParameter {
	params := make([]argsbar.InputParameter, len(s.Params))
	for i, p := range s.Params {
		params[i] = argsbar.NewInputParameter(p.Name,
			argsbar.WithDescription(p.Desc),
			argsbar.WithDefault(p.Default),
			argsbar.WithRequired(p.Required),
			argsbar.WithEncoding(p.Encoding),
		)
	}
	return params
}

// Save writes the parameter set to path.
// Performs an atomic write to prevent corruption on crash.
func (s *ParamSet) Save(path string) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid params: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create params directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}

	header := []byte(`# argsbar parameter definitions
# Each entry becomes one field in the bar, in order.
# encoding is one of: string, integer, numeric, boolean
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary params file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save params file: %w", err)
	}

	return nil
}

// DefaultParamSet returns an example parameter set covering every encoding.
func DefaultParamSet() *ParamSet {
	return &ParamSet{
		Version: paramSetFormat,
		Params: []ParamSpec{
			{
				Name:     "name",
				Desc:     "Name of the job to launch",
				Required: true,
				Encoding: argsbar.EncodingString,
			},
			{
				Name:     "workers",
				Desc:     "Number of worker processes",
				Default:  "4",
				Encoding: argsbar.EncodingInteger,
			},
			{
				Name:     "rate",
				Desc:     "Requests per second allowed per worker",
				Default:  "1.5",
				Encoding: argsbar.EncodingNumeric,
			},
			{
				Name:     "dry_run",
				Desc:     "Print the plan without executing it",
				Default:  "false",
				Encoding: argsbar.EncodingBoolean,
			},
		},
	}
}

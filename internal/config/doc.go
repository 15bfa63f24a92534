// Package config provides configuration management for argsbar.
//
// Two kinds of configuration live here:
//
//   - Settings: application preferences (log level, log file, which
//     parameter file to load, rendering options) merged by viper from
//     defaults, an optional settings.yaml, ARGSBAR_* environment variables
//     and CLI flags, in increasing order of precedence.
//   - ParamSet: a versioned YAML file listing the fields the bar collects.
//     Each entry maps onto one argsbar.InputParameter.
//
// # Configuration File Location
//
// Both files are stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/argsbar/ or $HOME/.config/argsbar/
//   - macOS: $HOME/.config/argsbar/
//   - Windows: %LOCALAPPDATA%\argsbar\
//
// ARGSBAR_CONFIG may name a settings file anywhere else.
//
// # Parameter File Format
//
//	version: 1
//	params:
//	  - name: workers
//	    desc: Number of worker processes
//	    default: "4"
//	    encoding: integer
//	  - name: dry_run
//	    encoding: boolean
//
// Defaults are kept as serialized text and never validated against the
// encoding. Unknown encoding names fail to load with a suggestion of the
// closest valid name.
//
// # Usage Example
//
//	settings, err := config.LoadSettings(cmd.Flags())
//	if err != nil {
//	    return err
//	}
//	set, err := config.LoadParamSet(settings.ParamsFile)
//	if err != nil {
//	    return err
//	}
//	bar := argsbar.NewBar(set.Parameters())
//
// Saves are atomic: data goes to a temporary file that is then renamed.
package config

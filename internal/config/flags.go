package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// ConfigFlag names the flag that points at an explicit config file.
const ConfigFlag = "config"

// RegisterFlags defines the configuration flags on fs. Defaults shown in
// help are the built-in defaults; only flags the user sets override the
// other sources.
func RegisterFlags(fs *pflag.FlagSet) {
	defaults := &Config{}
	setDefaults(defaults)

	fs.String(ConfigFlag, "", "Path to a config file (replaces the project config file)")
	for _, f := range fields {
		if f.flag == "" {
			continue
		}
		switch f.kind {
		case kindInt:
			n, _ := strconv.Atoi(f.get(defaults))
			fs.Int(f.flag, n, f.usage)
		case kindBool:
			fs.Bool(f.flag, f.get(defaults) == "true", f.usage)
		default:
			fs.String(f.flag, f.get(defaults), f.usage)
		}
	}
}

// applyFlags copies explicitly set flags into cfg.
func applyFlags(cfg *Config, fs *pflag.FlagSet, sources map[string]ConfigSource) error {
	if fs == nil {
		return nil
	}
	for _, f := range fields {
		if f.flag == "" {
			continue
		}
		fl := fs.Lookup(f.flag)
		if fl == nil || !fl.Changed {
			continue
		}
		if err := f.set(cfg, fl.Value.String()); err != nil {
			return fmt.Errorf("--%s: %w", f.flag, err)
		}
		if sources != nil {
			sources[f.name] = SourceFlag
		}
	}
	return nil
}

// explicitConfigFile returns the --config value, if set.
func explicitConfigFile(fs *pflag.FlagSet) string {
	if fs == nil {
		return ""
	}
	fl := fs.Lookup(ConfigFlag)
	if fl == nil || !fl.Changed {
		return ""
	}
	return fl.Value.String()
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/nibzard/kanban-go/internal/logging"
	"github.com/nibzard/kanban-go/internal/store"
)

// Load loads configuration for a project rooted at workDir. An empty
// workDir means the current directory. fs may be nil.
func Load(fs *pflag.FlagSet, workDir string) (*Config, error) {
	cws, err := LoadWithSources(fs, workDir)
	if err != nil {
		return nil, err
	}
	return cws.Config, nil
}

// LoadWithSources loads configuration and tracks the source of each value.
func LoadWithSources(fs *pflag.FlagSet, workDir string) (*ConfigWithSources, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		workDir = wd
	}

	cfg := &Config{}
	setDefaults(cfg)
	cws := &ConfigWithSources{Config: cfg, Sources: make(map[string]ConfigSource)}
	for _, name := range configFields() {
		cws.Sources[name] = SourceDefault
	}

	if userFile := findUserConfigFile(); userFile != "" {
		if err := loadConfigFile(cws, userFile, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userFile, err)
		}
	}

	projectFile := explicitConfigFile(fs)
	if projectFile != "" {
		projectFile = expandPath(projectFile)
		if !filepath.IsAbs(projectFile) {
			projectFile = filepath.Join(workDir, projectFile)
		}
	} else {
		projectFile = findProjectConfigFile(workDir)
	}
	if projectFile != "" {
		if err := loadConfigFile(cws, projectFile, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectFile, err)
		}
	}

	if err := loadFromEnv(cfg, cws.Sources); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if err := applyFlags(cfg, fs, cws.Sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	cfg.ProjectRoot = workDir
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}
	return cws, nil
}

// loadConfigFile decodes a TOML file over the current config. Only keys
// present in the file change, and those are attributed to source.
func loadConfigFile(cws *ConfigWithSources, path string, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cws.Config)
	if err != nil {
		return err
	}
	for _, key := range md.Keys() {
		name := key.String()
		if _, ok := cws.Sources[name]; ok {
			cws.Sources[name] = source
		}
	}
	for _, key := range md.Undecoded() {
		cws.Warnings = append(cws.Warnings, fmt.Sprintf("%s: unknown key %q", path, key.String()))
	}
	cws.Files = append(cws.Files, path)
	return nil
}

// finalizeConfig computes derived values and validates settings.
func finalizeConfig(cfg *Config) error {
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	if _, err := store.ParseBackend(cfg.Store); err != nil {
		return err
	}
	if cfg.StoreKey == "" {
		cfg.StoreKey = DefaultStoreKey
	}

	cfg.LogDir = expandPath(cfg.LogDir)
	cfg.DataDir = expandPath(cfg.DataDir)
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	if !filepath.IsAbs(cfg.DataDir) {
		cfg.DataDir = filepath.Join(cfg.ProjectRoot, cfg.DataDir)
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if _, err := logging.ParseFormatter(cfg.LogFormat); err != nil {
		return err
	}
	if cfg.Redis.DB < 0 {
		return fmt.Errorf("redis db must be >= 0, got %d", cfg.Redis.DB)
	}
	return nil
}

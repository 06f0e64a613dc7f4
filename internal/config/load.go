package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadWithSources loads configuration from multiple sources in priority
// order and tracks the source of each value:
// 1. Defaults
// 2. User config file (~/.yapper/yapper.toml or OS-specific config dir)
// 3. Project config file (yapper.toml or .yapper.toml in the working directory)
// 4. Environment variables
// 5. CLI flags
//
// Flags are registered on fs and parsed from args; fs.Args() holds whatever
// follows them.
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	cfg := &Config{WorkDir: wd}
	cws := &ConfigWithSources{
		Config:  cfg,
		Sources: make(map[string]ConfigSource),
	}

	// 1. Defaults
	setDefaults(cfg)
	for _, field := range configFields() {
		cws.Sources[field] = SourceDefault
	}

	// 2. User config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile, cws.Sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
		cws.Files = append(cws.Files, userConfigFile)
	}

	// 3. Project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(wd); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile, cws.Sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
		cws.Files = append(cws.Files, projectConfigFile)
	}

	// 4. Environment
	loadFromEnv(cfg, cws.Sources)

	// 5. CLI flags
	if err := parseFlags(cfg, fs, args, cws.Sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cws, nil
}

// loadConfigFile validates the TOML file at path and merges the keys it
// defines into cfg, recording source for each one.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	raw := map[string]interface{}{}
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return err
	}
	if err := validateDocument(path, raw); err != nil {
		return err
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	for _, field := range configFields() {
		if md.IsDefined(field) {
			sources[field] = source
		}
	}
	return nil
}

// finalizeConfig normalizes values and computes derived paths.
func finalizeConfig(cfg *Config) error {
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	cfg.OnCorrupt = strings.ToLower(strings.TrimSpace(cfg.OnCorrupt))

	if cfg.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.WorkDir = wd
	}

	cfg.DataFile = resolveDataFile(cfg.WorkDir, cfg.DataFile)
	return nil
}

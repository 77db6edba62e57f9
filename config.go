package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

type AnalyzeMode string

const (
	DeepMode   AnalyzeMode = "deep"
	SimpleMode AnalyzeMode = "simple"
)

// Config is loaded once at process start and passed explicitly into each
// component; nothing reads it as ambient state.
type Config struct {
	ProjectPath    string            `json:"project_path" yaml:"project_path"`
	Aliases        map[string]string `json:"alias_mappings" yaml:"alias_mappings"`
	IgnorePatterns []string          `json:"ignore_patterns" yaml:"ignore_patterns"`
	AnalyzeMode    AnalyzeMode       `json:"analyze_mode" yaml:"analyze_mode"`
	MaxDepth       int               `json:"max_depth" yaml:"max_depth"`
}

var configFileNames = []string{"fedep.config.json", "fedep.config.yaml", "fedep.config.yml"}

var defaultIgnorePatterns = []string{"node_modules", "dist", "build", ".git", ".history", ".DS_Store"}

func DefaultConfig(cwd string) *Config {
	return &Config{
		ProjectPath:    cwd,
		Aliases:        map[string]string{},
		IgnorePatterns: append([]string{}, defaultIgnorePatterns...),
		AnalyzeMode:    DeepMode,
		MaxDepth:       5,
	}
}

// LoadConfig loads the analyzer configuration from configPath, which may be a
// specific file or a directory searched for the known config file names. JSON
// configs are read as JSONC so comments and trailing commas are accepted;
// .yaml/.yml configs go through the YAML parser. A missing config in
// directory mode is not an error; defaults are used (mirroring the original
// behaviour of warning and continuing). A malformed or invalid config is
// fatal: it would invalidate every subsequent resolution.
func LoadConfig(configPath string, cwd string) (*Config, error) {
	actualPath := configPath
	explicit := true

	if configPath == "" {
		explicit = false
		actualPath = findConfigFile(cwd)
		if actualPath == "" {
			return DefaultConfig(cwd), nil
		}
	} else if info, err := os.Stat(configPath); err == nil && info.IsDir() {
		explicit = false
		actualPath = findConfigFile(configPath)
		if actualPath == "" {
			return DefaultConfig(configPath), nil
		}
	}

	content, err := os.ReadFile(actualPath)
	if err != nil {
		if explicit {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return DefaultConfig(cwd), nil
	}

	cfg := DefaultConfig(cwd)
	if strings.HasSuffix(actualPath, ".yaml") || strings.HasSuffix(actualPath, ".yml") {
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", actualPath, err)
		}
	} else {
		if err := json.Unmarshal(jsonc.ToJSON(content), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", actualPath, err)
		}
	}

	if !filepath.IsAbs(cfg.ProjectPath) {
		cfg.ProjectPath = filepath.Join(cwd, cfg.ProjectPath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func findConfigFile(dir string) string {
	for _, name := range configFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// Validate rejects configurations that would poison the whole run. This is
// the only error class that stops the process before analysis starts.
func (c *Config) Validate() error {
	if c.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be >= 1, got %d", c.MaxDepth)
	}
	if c.AnalyzeMode != DeepMode && c.AnalyzeMode != SimpleMode {
		return fmt.Errorf("analyze_mode must be %q or %q, got %q", DeepMode, SimpleMode, c.AnalyzeMode)
	}
	for prefix, target := range c.Aliases {
		if prefix == "" {
			return fmt.Errorf("alias prefix must not be empty (target %q)", target)
		}
		if target == "" {
			return fmt.Errorf("alias %q target must not be empty", prefix)
		}
		if strings.HasPrefix(target, "/") {
			return fmt.Errorf("alias %q target %q must be project-relative", prefix, target)
		}
	}
	return nil
}

// AliasTable builds the ordered alias table from the configured mapping.
func (c *Config) AliasTable() *AliasTable {
	return NewAliasTable(c.Aliases)
}

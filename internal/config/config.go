package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/llmsdocs/internal/errors"
)

// DefaultFileName is the configuration file looked up in the site root when
// no explicit path is given.
const DefaultFileName = "llmsdocs.yaml"

//go:embed categories.yaml
var defaultCategoriesYAML []byte

// Config represents the application configuration
type Config struct {
	Site       SiteConfig    `yaml:"site"`
	Paths      PathsConfig   `yaml:"paths"`
	Extract    ExtractConfig `yaml:"extract"`
	Categories []Category    `yaml:"categories,omitempty"`
}

// SiteConfig holds the values printed into generated documents and the index.
type SiteConfig struct {
	Name        string `yaml:"name"`
	Tagline     string `yaml:"tagline"`
	BaseURL     string `yaml:"base_url"`
	Package     string `yaml:"package"`
	RepoURL     string `yaml:"repo_url"`
	RegistryURL string `yaml:"registry_url"`
}

// PathsConfig locates inputs and outputs relative to the site root.
type PathsConfig struct {
	Components string   `yaml:"components"`
	Docs       string   `yaml:"docs"`
	Manifest   string   `yaml:"manifest"`
	Extension  string   `yaml:"extension"`
	Exclude    []string `yaml:"exclude,omitempty"`
}

// ExtractConfig tunes how component sources are read and rendered.
type ExtractConfig struct {
	LayoutTag    string `yaml:"layout_tag"`
	BrandSuffix  string `yaml:"brand_suffix"`
	CodeLanguage string `yaml:"code_language"`
	// MinLength is the rendered length a document must exceed to be written.
	MinLength int `yaml:"min_length"`
}

// Category groups component keys under one heading of the index.
type Category struct {
	Name       string   `yaml:"name"`
	Components []string `yaml:"components"`
}

// Default returns the built-in configuration for the AsterUI site.
func Default() *Config {
	cfg := &Config{}
	if err := applyDefaults(cfg); err != nil {
		// The embedded category table is part of the binary.
		panic(fmt.Sprintf("config: invalid embedded defaults: %v", err))
	}
	return cfg
}

// DefaultCategories parses the embedded category table.
func DefaultCategories() ([]Category, error) {
	var doc struct {
		Categories []Category `yaml:"categories"`
	}
	if err := yaml.Unmarshal(defaultCategoriesYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse embedded categories: %w", err)
	}
	return doc.Categories, nil
}

// Load loads configuration from the specified file. Fields left out of the
// file keep their defaults.
func Load(configPath string) (*Config, error) {
	loadEnvFiles(filepath.Dir(configPath))

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, derrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, derrors.ConfigInvalid(configPath, fmt.Errorf("failed to read config file: %w", err))
	}

	expanded, err := expandEnv(data)
	if err != nil {
		return nil, derrors.ConfigInvalid(configPath, fmt.Errorf("failed to parse config: %w", err))
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, derrors.ConfigInvalid(configPath, fmt.Errorf("failed to unmarshal config: %w", err))
	}

	if err := applyDefaults(&cfg); err != nil {
		return nil, derrors.ConfigInvalid(configPath, fmt.Errorf("failed to apply defaults: %w", err))
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads configPath when set. With an empty path it looks for
// DefaultFileName in siteRoot and falls back to Default when that is absent.
func LoadOrDefault(configPath, siteRoot string) (*Config, error) {
	if configPath != "" {
		return Load(configPath)
	}
	candidate := filepath.Join(siteRoot, DefaultFileName)
	if _, err := os.Stat(candidate); err == nil {
		return Load(candidate)
	}
	return Default(), nil
}

// Init writes the default configuration to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return derrors.ValidationFailed("config", fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath))
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return derrors.InternalError("marshal default configuration", err)
	}

	header := "# llmsdocs configuration. Paths are relative to the site root.\n"
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o600); err != nil {
		return derrors.WriteFailed(configPath, err)
	}
	return nil
}

// Resolve returns the path p relative to root unless it is already absolute.
func Resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

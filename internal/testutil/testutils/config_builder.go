package testutils

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/llmsdocs/internal/config"
)

// ConfigBuilder provides a fluent interface for creating test configurations.
type ConfigBuilder struct {
	config *config.Config
	t      *testing.T
}

// NewConfigBuilder starts from the built-in defaults.
func NewConfigBuilder(t *testing.T) *ConfigBuilder {
	return &ConfigBuilder{config: config.Default(), t: t}
}

// WithSite sets the site identity printed into pages and the index.
func (cb *ConfigBuilder) WithSite(name, baseURL, pkg string) *ConfigBuilder {
	cb.config.Site.Name = name
	cb.config.Site.BaseURL = baseURL
	cb.config.Site.Package = pkg
	return cb
}

// WithOutputs sets the docs directory and manifest path.
func (cb *ConfigBuilder) WithOutputs(docs, manifest string) *ConfigBuilder {
	cb.config.Paths.Docs = docs
	cb.config.Paths.Manifest = manifest
	return cb
}

// WithMinLength sets the length gate.
func (cb *ConfigBuilder) WithMinLength(n int) *ConfigBuilder {
	cb.config.Extract.MinLength = n
	return cb
}

// WithCategories replaces the category table.
func (cb *ConfigBuilder) WithCategories(categories ...config.Category) *ConfigBuilder {
	cb.config.Categories = categories
	return cb
}

// Build returns the built configuration.
func (cb *ConfigBuilder) Build() *config.Config {
	return cb.config
}

// BuildAndSave builds the configuration and saves it to a file.
func (cb *ConfigBuilder) BuildAndSave(filePath string) *config.Config {
	cb.t.Helper()
	data, err := yaml.Marshal(cb.config)
	if err != nil {
		cb.t.Fatalf("Failed to marshal config: %v", err)
	}

	if err := os.WriteFile(filePath, data, 0o600); err != nil {
		cb.t.Fatalf("Failed to save config to %s: %v", filePath, err)
	}
	return cb.config
}

package config

import (
	"fmt"
	"net/url"
	"strings"

	derrors "git.home.luguber.info/inful/llmsdocs/internal/errors"
)

// ValidateConfig validates the complete configuration structure.
func ValidateConfig(cfg *Config) error {
	validator := newConfigurationValidator(cfg)
	return validator.validate()
}

// configurationValidator coordinates validation across all configuration domains.
type configurationValidator struct {
	config *Config
}

func newConfigurationValidator(config *Config) *configurationValidator {
	return &configurationValidator{config: config}
}

func (cv *configurationValidator) validate() error {
	if err := cv.validateSite(); err != nil {
		return err
	}
	if err := cv.validatePaths(); err != nil {
		return err
	}
	if err := cv.validateExtract(); err != nil {
		return err
	}
	return cv.validateCategories()
}

func (cv *configurationValidator) validateSite() error {
	u, err := url.Parse(cv.config.Site.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return derrors.ValidationFailed("site.base_url", fmt.Sprintf("not an absolute URL: %q", cv.config.Site.BaseURL))
	}
	if strings.HasSuffix(cv.config.Site.BaseURL, "/") {
		return derrors.ValidationFailed("site.base_url", "must not end with a slash")
	}
	return nil
}

func (cv *configurationValidator) validatePaths() error {
	p := cv.config.Paths
	if !strings.HasPrefix(p.Extension, ".") {
		return derrors.ValidationFailed("paths.extension", fmt.Sprintf("must start with a dot: %q", p.Extension))
	}
	if p.Docs == p.Components {
		return derrors.ValidationFailed("paths.docs", "must differ from paths.components")
	}
	return nil
}

func (cv *configurationValidator) validateExtract() error {
	if cv.config.Extract.MinLength < 0 {
		return derrors.ValidationFailed("extract.min_length", "must not be negative")
	}
	return nil
}

// validateCategories checks names only. Keys are not checked against the
// component directory; unknown keys are skipped when the index is rendered.
func (cv *configurationValidator) validateCategories() error {
	seen := make(map[string]struct{}, len(cv.config.Categories))
	for i, c := range cv.config.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return derrors.ValidationFailed(fmt.Sprintf("categories[%d].name", i), "must not be empty")
		}
		if _, dup := seen[c.Name]; dup {
			return derrors.ValidationFailed(fmt.Sprintf("categories[%d].name", i), fmt.Sprintf("duplicate category %q", c.Name))
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}

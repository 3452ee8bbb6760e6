package config

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// SiteDefaultApplier handles Site configuration defaults.
type SiteDefaultApplier struct{}

func (s *SiteDefaultApplier) Domain() string { return "site" }

func (s *SiteDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Site.Name == "" {
		cfg.Site.Name = "AsterUI"
	}
	if cfg.Site.Tagline == "" {
		cfg.Site.Tagline = "React component library built on DaisyUI v5 with enterprise-level developer convenience"
	}
	if cfg.Site.BaseURL == "" {
		cfg.Site.BaseURL = "https://asterui.com"
	}
	if cfg.Site.Package == "" {
		cfg.Site.Package = "@aster-ui/react"
	}
	if cfg.Site.RepoURL == "" {
		cfg.Site.RepoURL = "https://github.com/edadma/asterui"
	}
	if cfg.Site.RegistryURL == "" {
		cfg.Site.RegistryURL = "https://www.npmjs.com/package/asterui"
	}
	return nil
}

// PathsDefaultApplier handles input/output location defaults.
type PathsDefaultApplier struct{}

func (p *PathsDefaultApplier) Domain() string { return "paths" }

func (p *PathsDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Paths.Components == "" {
		cfg.Paths.Components = "src/pages/components"
	}
	if cfg.Paths.Docs == "" {
		cfg.Paths.Docs = "public/docs"
	}
	if cfg.Paths.Manifest == "" {
		cfg.Paths.Manifest = "public/llms.txt"
	}
	if cfg.Paths.Extension == "" {
		cfg.Paths.Extension = ".astro"
	}
	if cfg.Paths.Exclude == nil {
		cfg.Paths.Exclude = []string{"index.astro"}
	}
	return nil
}

// ExtractDefaultApplier handles extraction and rendering defaults.
type ExtractDefaultApplier struct{}

func (e *ExtractDefaultApplier) Domain() string { return "extract" }

func (e *ExtractDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Extract.LayoutTag == "" {
		cfg.Extract.LayoutTag = "Layout"
	}
	if cfg.Extract.BrandSuffix == "" {
		cfg.Extract.BrandSuffix = cfg.Site.Name
	}
	if cfg.Extract.CodeLanguage == "" {
		cfg.Extract.CodeLanguage = "tsx"
	}
	if cfg.Extract.MinLength == 0 {
		cfg.Extract.MinLength = 100
	}
	return nil
}

// CategoriesDefaultApplier installs the embedded category table when none is configured.
type CategoriesDefaultApplier struct{}

func (c *CategoriesDefaultApplier) Domain() string { return "categories" }

func (c *CategoriesDefaultApplier) ApplyDefaults(cfg *Config) error {
	if len(cfg.Categories) > 0 {
		return nil
	}
	cats, err := DefaultCategories()
	if err != nil {
		return err
	}
	cfg.Categories = cats
	return nil
}

// defaultAppliers runs in order; extract defaults read the site name.
func defaultAppliers() []DefaultApplier {
	return []DefaultApplier{
		&SiteDefaultApplier{},
		&PathsDefaultApplier{},
		&ExtractDefaultApplier{},
		&CategoriesDefaultApplier{},
	}
}

func applyDefaults(cfg *Config) error {
	for _, a := range defaultAppliers() {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}

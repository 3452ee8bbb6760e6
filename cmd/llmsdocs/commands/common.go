package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/llmsdocs/internal/config"
	"git.home.luguber.info/inful/llmsdocs/internal/version"
)

// Global is shared state bound into every command's Run method.
type Global struct {
	Logger  *slog.Logger
	Context context.Context
	// Stdout receives the progress lines; logs go to stderr.
	Stdout io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: llmsdocs.yaml in the site root, if present)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate component docs and llms.txt (default)"`
	Verify   VerifyCmd   `cmd:"" help:"Check generated docs and llms.txt links"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate whenever a component page changes"`
	Init     InitCmd     `cmd:"" help:"Write a configuration file with the built-in defaults"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// NewParser builds the kong parser for cli.
func NewParser(cli *CLI, extra ...kong.Option) (*kong.Kong, error) {
	opts := []kong.Option{
		kong.Name("llmsdocs"),
		kong.Description("Generate LLM-friendly markdown docs and an llms.txt index from Astro component pages."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	}
	return kong.New(cli, append(opts, extra...)...)
}

// SiteFlag selects the site root; paths from the config are relative to it.
type SiteFlag struct {
	Site string `short:"s" help:"Site root directory" default:"."`
}

// loadConfig resolves the config for site, honoring --config.
func (c *CLI) loadConfig(site string) (*config.Config, error) {
	return config.LoadOrDefault(c.Config, site)
}

// configPath is the file watch mode should follow, if any.
func (c *CLI) configPath(site string) string {
	if c.Config != "" {
		return c.Config
	}
	return filepath.Join(site, config.DefaultFileName)
}

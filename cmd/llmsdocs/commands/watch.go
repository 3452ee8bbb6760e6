package commands

import (
	"context"
	"time"

	"git.home.luguber.info/inful/llmsdocs/internal/pipeline"
	"git.home.luguber.info/inful/llmsdocs/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	SiteFlag
	Workers  int           `short:"w" help:"Number of component pages rendered concurrently" default:"1"`
	Debounce time.Duration `help:"Quiet period before regenerating" default:"300ms"`
}

func (w *WatchCmd) Run(glob *Global, root *CLI) error {
	cfg, err := root.loadConfig(w.Site)
	if err != nil {
		return err
	}
	componentsDir := pipeline.NewGenerator(cfg, w.Site).ComponentsDir()

	// The config is re-read on every rebuild so edits to it apply without a restart.
	rebuild := func(ctx context.Context) error {
		cfg, err := root.loadConfig(w.Site)
		if err != nil {
			return err
		}
		_, err = pipeline.NewGenerator(cfg, w.Site,
			pipeline.WithOutput(glob.Stdout),
			pipeline.WithWorkers(w.Workers),
		).Run(ctx)
		return err
	}

	return watch.New(componentsDir, rebuild,
		watch.WithExtension(cfg.Paths.Extension),
		watch.WithDelay(w.Debounce),
		watch.WithFiles(root.configPath(w.Site)),
	).Run(glob.Context)
}

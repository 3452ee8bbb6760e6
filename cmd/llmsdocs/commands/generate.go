package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	prom "github.com/prometheus/client_golang/prometheus"

	derrors "git.home.luguber.info/inful/llmsdocs/internal/errors"
	"git.home.luguber.info/inful/llmsdocs/internal/logfields"
	"git.home.luguber.info/inful/llmsdocs/internal/manifest"
	"git.home.luguber.info/inful/llmsdocs/internal/metrics"
	"git.home.luguber.info/inful/llmsdocs/internal/pipeline"
)

// GenerateCmd implements the default 'generate' command.
type GenerateCmd struct {
	SiteFlag
	Workers     int    `short:"w" help:"Number of component pages rendered concurrently" default:"1"`
	Report      string `help:"Write a JSON build report to this path"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in textfile format to this path"`
}

func (g *GenerateCmd) Run(glob *Global, root *CLI) error {
	cfg, err := root.loadConfig(g.Site)
	if err != nil {
		return err
	}

	opts := []pipeline.Option{
		pipeline.WithOutput(glob.Stdout),
		pipeline.WithWorkers(g.Workers),
	}
	var rec *metrics.PrometheusRecorder
	if g.MetricsFile != "" {
		rec = metrics.NewPrometheusRecorder(prom.NewRegistry())
		opts = append(opts, pipeline.WithRecorder(rec))
	}

	glob.Logger.Debug("Starting generation", logfields.Path(g.Site), logfields.Workers(g.Workers))
	res, runErr := pipeline.NewGenerator(cfg, g.Site, opts...).Run(glob.Context)

	// Metrics describe failed runs too.
	if rec != nil {
		if err := rec.WriteTextfile(g.MetricsFile); err != nil {
			glob.Logger.Warn("Failed to write metrics file", logfields.Path(g.MetricsFile), logfields.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	if g.Report != "" {
		return writeReport(glob.Logger, g.Report, res.Report)
	}
	return nil
}

// writeReport stores the build report, logging which pages changed since the
// report already at path.
func writeReport(logger *slog.Logger, path string, report *manifest.BuildManifest) error {
	if data, err := os.ReadFile(path); err == nil {
		if prev, err := manifest.FromJSON(data); err == nil {
			changed := report.Changed(prev)
			logger.Info("Compared with previous report",
				logfields.Count(len(changed)),
				slog.Any("changed", changed),
				slog.Bool("inputs_changed", prev.InputsHash != report.InputsHash))
		}
	}

	data, err := report.ToJSON()
	if err != nil {
		return derrors.InternalError("encode build report", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return derrors.WriteFailed(path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return derrors.WriteFailed(path, err)
	}
	logger.Debug("Wrote build report", logfields.Path(path), logfields.RunID(report.ID))
	return nil
}

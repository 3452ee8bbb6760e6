// Package pipeline drives a generator run: discover component sources,
// extract and render each one, write the pages that pass the length gate and
// finish with the llms.txt manifest.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
	"unicode/utf8"

	"git.home.luguber.info/inful/llmsdocs/internal/config"
	derrors "git.home.luguber.info/inful/llmsdocs/internal/errors"
	"git.home.luguber.info/inful/llmsdocs/internal/extract"
	"git.home.luguber.info/inful/llmsdocs/internal/index"
	"git.home.luguber.info/inful/llmsdocs/internal/logfields"
	"git.home.luguber.info/inful/llmsdocs/internal/manifest"
	"git.home.luguber.info/inful/llmsdocs/internal/metrics"
	"git.home.luguber.info/inful/llmsdocs/internal/render"
)

// Stage names used for logging and metrics.
const (
	StageDiscover = "discover"
	StageRender   = "render"
	StageWrite    = "write"
	StageIndex    = "index"
)

// Generator runs the pipeline for one site root.
type Generator struct {
	cfg       *config.Config
	root      string
	extractor *extract.Extractor
	renderOpt render.Options
	out       io.Writer
	recorder  metrics.Recorder
	workers   int
	now       func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithOutput sets where progress lines are printed (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(g *Generator) {
		if w != nil {
			g.out = w
		}
	}
}

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithWorkers renders up to n sources concurrently. Output order and content
// do not depend on n.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.workers = n
		}
	}
}

// WithClock overrides the time source used for the build report.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// NewGenerator builds a Generator for the site rooted at root.
func NewGenerator(cfg *config.Config, root string, opts ...Option) *Generator {
	g := &Generator{
		cfg:  cfg,
		root: root,
		extractor: extract.New(extract.Options{
			LayoutTag:   cfg.Extract.LayoutTag,
			BrandSuffix: cfg.Extract.BrandSuffix,
		}),
		renderOpt: render.Options{
			Package:      cfg.Site.Package,
			CodeLanguage: cfg.Extract.CodeLanguage,
		},
		out:      os.Stdout,
		recorder: metrics.NoopRecorder{},
		workers:  1,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Page is one rendered component before the length gate.
type Page struct {
	Source   Source
	Title    string
	Markdown string
	hash     string
}

// Result describes a finished run.
type Result struct {
	Components   *index.ComponentMap
	Written      []string
	Skipped      []string
	ManifestPath string
	Report       *manifest.BuildManifest
}

// ComponentsDir is the resolved component source directory.
func (g *Generator) ComponentsDir() string { return config.Resolve(g.root, g.cfg.Paths.Components) }

// DocsDir is the resolved page output directory.
func (g *Generator) DocsDir() string { return config.Resolve(g.root, g.cfg.Paths.Docs) }

// ManifestPath is the resolved llms.txt location.
func (g *Generator) ManifestPath() string { return config.Resolve(g.root, g.cfg.Paths.Manifest) }

// Run executes the whole pipeline. Filesystem errors stop the run; nothing
// about a source's content can.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	start := g.now()
	report := manifest.New(start)
	logger := slog.Default().With(logfields.RunID(report.ID))

	res, err := g.run(ctx, logger, report)
	elapsed := g.now().Sub(start)
	g.recorder.ObserveBuildDuration(elapsed)

	switch {
	case err == nil:
		report.Finish(string(metrics.BuildSuccess), elapsed)
		g.recorder.IncBuildOutcome(metrics.BuildSuccess)
	case ctx.Err() != nil:
		report.Finish(string(metrics.BuildCanceled), elapsed)
		g.recorder.IncBuildOutcome(metrics.BuildCanceled)
	default:
		report.Finish(string(metrics.BuildFailed), elapsed)
		g.recorder.IncBuildOutcome(metrics.BuildFailed)
	}
	if res != nil {
		res.Report = report
	}
	return res, err
}

func (g *Generator) run(ctx context.Context, logger *slog.Logger, report *manifest.BuildManifest) (*Result, error) {
	srcDir := g.ComponentsDir()
	report.Inputs.SourceDir = srcDir
	if h, err := manifest.HashConfig(g.cfg); err == nil {
		report.Inputs.ConfigHash = h
	}

	stageStart := time.Now()
	sources, err := Discover(srcDir, g.cfg.Paths.Extension, g.cfg.Paths.Exclude)
	if err != nil {
		return nil, derrors.SourceDirMissing(srcDir, err)
	}
	g.recorder.ObserveStageDuration(StageDiscover, time.Since(stageStart))
	logger.Info("Discovered component sources", logfields.Path(srcDir), logfields.Count(len(sources)))

	docsDir := g.DocsDir()
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		return nil, derrors.WriteFailed(docsDir, err)
	}

	res := &Result{Components: index.NewComponentMap(), ManifestPath: g.ManifestPath()}

	if g.workers <= 1 {
		for _, src := range sources {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			page, err := g.renderSource(src)
			if err != nil {
				return nil, err
			}
			if err := g.commit(page, docsDir, res, report, logger); err != nil {
				return nil, err
			}
		}
	} else {
		pages, err := g.renderParallel(ctx, sources)
		if err != nil {
			return nil, err
		}
		for _, page := range pages {
			if err := g.commit(page, docsDir, res, report, logger); err != nil {
				return nil, err
			}
		}
	}

	stageStart = time.Now()
	content := index.Generate(res.Components, g.cfg.Categories, g.cfg.Site)
	if err := os.MkdirAll(filepath.Dir(res.ManifestPath), 0o755); err != nil {
		return nil, derrors.WriteFailed(res.ManifestPath, err)
	}
	if err := writeFile(res.ManifestPath, content); err != nil {
		return nil, err
	}
	g.recorder.ObserveStageDuration(StageIndex, time.Since(stageStart))
	g.recorder.SetComponentsIndexed(res.Components.Len())
	report.Outputs.Manifest = res.ManifestPath
	report.Outputs.ManifestFingerprint = manifest.Fingerprint(content)

	_, _ = fmt.Fprintf(g.out, "\nGenerated %d component docs in %s/\n", res.Components.Len(), g.cfg.Paths.Docs)
	_, _ = fmt.Fprintf(g.out, "Updated %s\n", g.cfg.Paths.Manifest)
	logger.Info("Generation complete",
		logfields.Count(res.Components.Len()),
		slog.Int("skipped", len(res.Skipped)),
		logfields.Path(res.ManifestPath))

	return res, nil
}

// RenderSource reads and renders one source without writing anything.
func (g *Generator) RenderSource(src Source) (Page, error) {
	return g.renderSource(src)
}

func (g *Generator) renderSource(src Source) (Page, error) {
	start := time.Now()
	content, err := os.ReadFile(src.Path)
	if err != nil {
		return Page{}, derrors.ReadFailed(src.Path, err)
	}

	c := g.extractor.Extract(string(content))
	md := render.Component(c, g.renderOpt)
	g.recorder.ObserveStageDuration(StageRender, time.Since(start))

	return Page{
		Source:   src,
		Title:    c.Title,
		Markdown: md,
		hash:     manifest.HashSource(content),
	}, nil
}

// renderParallel renders sources on a bounded pool and returns the pages in
// source order. The first error wins.
func (g *Generator) renderParallel(ctx context.Context, sources []Source) ([]Page, error) {
	pages := make([]Page, len(sources))
	errs := make([]error, len(sources))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < g.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				pages[i], errs[i] = g.renderSource(sources[i])
			}
		}()
	}

feed:
	for i := range sources {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return pages, nil
}

// commit applies the length gate and writes the page when it passes.
func (g *Generator) commit(page Page, docsDir string, res *Result, report *manifest.BuildManifest, logger *slog.Logger) error {
	key := page.Source.Key
	report.Inputs.Sources = append(report.Inputs.Sources, manifest.SourceInput{Key: key, Path: page.Source.Path, Hash: page.hash})

	if !Qualifies(page.Markdown, g.cfg.Extract.MinLength) {
		n := utf8.RuneCountInString(page.Markdown)
		res.Skipped = append(res.Skipped, key)
		report.Outputs.Skipped = append(report.Outputs.Skipped, manifest.Skipped{Key: key, Length: n})
		g.recorder.IncComponentResult(metrics.ResultSkipped)
		logger.Debug("Skipping component with too little content",
			logfields.Component(key), logfields.Length(n))
		return nil
	}

	start := time.Now()
	path := filepath.Join(docsDir, key+".md")
	if err := writeFile(path, page.Markdown); err != nil {
		return err
	}
	g.recorder.ObserveStageDuration(StageWrite, time.Since(start))
	g.recorder.IncComponentResult(metrics.ResultWritten)

	res.Components.Add(key, page.Title)
	res.Written = append(res.Written, path)
	report.AddDoc(key, page.Title, path, page.Markdown)

	_, _ = fmt.Fprintf(g.out, "  Created: %s/%s.md\n", filepath.Base(docsDir), key)
	logger.Debug("Wrote component page", logfields.Component(key), logfields.Title(page.Title), logfields.Path(path))
	return nil
}

// Qualifies reports whether a rendered page is long enough to publish: its
// length in characters must be strictly greater than minLength.
func Qualifies(markdown string, minLength int) bool {
	return utf8.RuneCountInString(markdown) > minLength
}

package commands

import (
	"fmt"
	"log/slog"

	derrors "git.home.luguber.info/inful/llmsdocs/internal/errors"
	"git.home.luguber.info/inful/llmsdocs/internal/logfields"
	"git.home.luguber.info/inful/llmsdocs/internal/pipeline"
	"git.home.luguber.info/inful/llmsdocs/internal/verify"
)

// VerifyCmd implements the 'verify' command.
type VerifyCmd struct {
	SiteFlag
	Strict bool `help:"Also fail when a page is not listed in llms.txt"`
}

func (v *VerifyCmd) Run(glob *Global, root *CLI) error {
	cfg, err := root.loadConfig(v.Site)
	if err != nil {
		return err
	}
	gen := pipeline.NewGenerator(cfg, v.Site)

	res, err := verify.Output(gen.DocsDir(), gen.ManifestPath(), cfg.Site.BaseURL)
	if err != nil {
		return derrors.Wrap(err, derrors.CategoryFileSystem, derrors.SeverityFatal, "cannot read generated docs").
			WithContext("path", gen.DocsDir())
	}

	problems := 0
	for _, key := range res.Keys() {
		for _, issue := range res.Pages[key].Issues {
			_, _ = fmt.Fprintf(glob.Stdout, "%s.md: %s\n", key, issue)
			problems++
		}
	}
	for _, l := range res.BrokenLinks {
		_, _ = fmt.Fprintf(glob.Stdout, "llms.txt: broken link [%s](%s)\n", l.Text, l.Destination)
		problems++
	}
	for _, key := range res.Unlinked {
		_, _ = fmt.Fprintf(glob.Stdout, "%s.md: not listed in llms.txt\n", key)
		if v.Strict {
			problems++
		}
	}

	glob.Logger.Info("Verification finished", logfields.Count(len(res.Pages)), slog.Int("problems", problems))
	if problems > 0 {
		return derrors.VerificationFailed(problems)
	}
	_, _ = fmt.Fprintf(glob.Stdout, "Verified %d component docs\n", len(res.Pages))
	return nil
}

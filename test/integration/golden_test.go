package integration

import (
	"context"
	"flag"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/llmsdocs/internal/config"
	"git.home.luguber.info/inful/llmsdocs/internal/pipeline"
	"git.home.luguber.info/inful/llmsdocs/internal/testutil/testutils"
	"git.home.luguber.info/inful/llmsdocs/internal/verify"
)

var updateGolden = flag.Bool("update-golden", false, "Update golden files")

// TestGolden_Default generates the fixture site with the built-in config.
// This test verifies:
// - one page per component above the length gate
// - the example array wins over code variables
// - the category index lists only known keys, in table order.
func TestGolden_Default(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping golden test in short mode")
	}

	runGoldenTest(t, "", "../../test/testdata/golden/default", *updateGolden)
}

// TestGolden_CustomSite applies a config file with a different site identity
// and category table.
// This test verifies:
// - package name flows into every Import line
// - base URL, links and boilerplate follow the site config
// - unknown category keys are dropped silently.
func TestGolden_CustomSite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping golden test in short mode")
	}

	runGoldenTest(t, "../../test/testdata/configs/nebula.yaml", "../../test/testdata/golden/nebula", *updateGolden)
}

// TestGolden_OutputVerifies runs the verifier over freshly generated output.
func TestGolden_OutputVerifies(t *testing.T) {
	site := testutils.CopySite(t, fixtureSite)
	cfg := config.Default()
	gen := pipeline.NewGenerator(cfg, site, pipeline.WithOutput(io.Discard), pipeline.WithWorkers(4))

	_, err := gen.Run(context.Background())
	require.NoError(t, err)

	res, err := verify.Output(gen.DocsDir(), gen.ManifestPath(), cfg.Site.BaseURL)
	require.NoError(t, err)
	require.True(t, res.OK(), "verification issues: %+v", res)
	require.Equal(t, []string{"button", "card", "modal", "sparkline"}, res.Keys())
	require.Equal(t, []string{"sparkline"}, res.Unlinked)
	require.FileExists(t, filepath.Join(site, "public", "llms.txt"))
}

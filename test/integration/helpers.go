package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/llmsdocs/internal/config"
	"git.home.luguber.info/inful/llmsdocs/internal/pipeline"
	"git.home.luguber.info/inful/llmsdocs/internal/testutil/testutils"
)

const fixtureSite = "../../test/testdata/site"

func loadGoldenConfig(t *testing.T, configPath string) *config.Config {
	t.Helper()
	if configPath == "" {
		return config.Default()
	}
	cfg, err := config.Load(configPath)
	require.NoError(t, err, "failed to load config")
	return cfg
}

// listFiles returns the slash-separated paths of all regular files below root.
func listFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

// runGoldenTest generates the fixture site with the given config and compares
// public/ against goldenDirPath.
func runGoldenTest(t *testing.T, configPath, goldenDirPath string, updateGolden bool) {
	t.Helper()

	site := testutils.CopySite(t, fixtureSite)
	cfg := loadGoldenConfig(t, configPath)
	var out bytes.Buffer

	res, err := pipeline.NewGenerator(cfg, site, pipeline.WithOutput(&out)).Run(context.Background())
	require.NoError(t, err, "generation failed")
	require.Equal(t, "success", res.Report.Status)

	outputDir := filepath.Join(site, "public")
	if updateGolden {
		require.NoError(t, os.RemoveAll(goldenDirPath))
		require.NoError(t, os.CopyFS(goldenDirPath, os.DirFS(outputDir)))
		t.Logf("Updated golden files in %s", goldenDirPath)
		return
	}

	want := listFiles(t, goldenDirPath)
	got := listFiles(t, outputDir)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output files differ from golden (-want +got):\n%s\nRun with -update-golden to update", diff)
	}
	for _, rel := range want {
		wantData, err := os.ReadFile(filepath.Join(goldenDirPath, rel))
		require.NoError(t, err)
		gotData, err := os.ReadFile(filepath.Join(outputDir, rel))
		require.NoError(t, err)
		if diff := cmp.Diff(string(wantData), string(gotData)); diff != "" {
			t.Errorf("%s differs from golden (-want +got):\n%s", rel, diff)
		}
	}
}

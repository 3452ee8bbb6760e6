package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscover_SortsFiltersAndExcludes(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"tabs.astro", "index.astro", "button.astro", "README.md", "alert.astro"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested.astro"), 0o755))

	got, err := Discover(dir, ".astro", []string{"index.astro"})
	require.NoError(t, err)

	require.Equal(t, []Source{
		{Key: "alert", Path: filepath.Join(dir, "alert.astro")},
		{Key: "button", Path: filepath.Join(dir, "button.astro")},
		{Key: "tabs", Path: filepath.Join(dir, "tabs.astro")},
	}, got)
}

func TestDiscover_Fixture(t *testing.T) {
	got, err := Discover(filepath.Join(fixtureSite, "src", "pages", "components"), ".astro", []string{"index.astro"})
	require.NoError(t, err)

	keys := make([]string, 0, len(got))
	for _, s := range got {
		keys = append(keys, s.Key)
	}
	require.Equal(t, []string{"button", "card", "divider", "modal", "sparkline"}, keys)
}

func TestDiscover_MissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"), ".astro", nil)
	require.Error(t, err)
}

package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const goldenDir = "../../test/testdata/golden/default"

func TestPage_GoldenPagesPass(t *testing.T) {
	tests := []struct {
		key      string
		title    string
		examples int
		tables   int
	}{
		{"button", "Button", 2, 2},
		{"card", "Card", 2, 1},
		{"modal", "Modal", 1, 0},
		{"sparkline", "Sparkline", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join(goldenDir, "docs", tt.key+".md"))
			require.NoError(t, err)

			r := Page(src)
			require.True(t, r.OK(), "issues: %v", r.Issues)
			require.Equal(t, tt.title, r.Title)
			require.Equal(t, tt.examples, r.Examples)
			require.Equal(t, tt.tables, r.Tables)
		})
	}
}

func TestPage_Issues(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		issue string
	}{
		{
			name:  "no heading",
			src:   "Just text.\n\n**Import:** `import { X } from 'x'`\n",
			issue: "page does not start with an H1 heading",
		},
		{
			name:  "no import",
			src:   "# X\n\nText.\n",
			issue: "missing Import line",
		},
		{
			name:  "example without code",
			src:   "# X\n\n**Import:** `x`\n\n## Examples\n\n### Basic\n\nNo code here.\n",
			issue: `example "Basic" has no code block`,
		},
		{
			name:  "api heading without table",
			src:   "# X\n\n**Import:** `x`\n\n## API\n\n### X\n\nNothing.\n",
			issue: `API table "X" has no table`,
		},
		{
			name: "api table with three columns",
			src: "# X\n\n**Import:** `x`\n\n## API\n\n### X\n\n" +
				"| Property | Description | Type |\n|---|---|---|\n| `a` | b | `c` |\n",
			issue: `API table "X" has 3 columns, want 4`,
		},
		{
			name:  "second h1",
			src:   "# X\n\n**Import:** `x`\n\n# Y\n",
			issue: `unexpected H1 "Y"`,
		},
		{
			name:  "empty",
			src:   "",
			issue: "page is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Page([]byte(tt.src))
			require.False(t, r.OK())
			require.Contains(t, r.Issues, tt.issue)
		})
	}
}

func TestPage_EscapedPipeStaysInOneCell(t *testing.T) {
	src := "# X\n\n**Import:** `x`\n\n## API\n\n### X\n\n" +
		"| Property | Description | Type | Default |\n" +
		"|----------|-------------|------|---------|\n" +
		"| `size` | Size | `'sm' \\| 'lg'` | `-` |\n"

	r := Page([]byte(src))

	require.True(t, r.OK(), "issues: %v", r.Issues)
	require.Equal(t, 1, r.Tables)
}

func TestPage_InlineMarkupIsFlattened(t *testing.T) {
	src := "# The *Date* `Picker`\n\n**Import:** `import { DatePicker } from 'x'`\n\n" +
		"## Examples\n\n### With `range` **mode**\n\n```tsx\n<DatePicker />\n```\n"

	r := Page([]byte(src))

	require.True(t, r.OK(), "issues: %v", r.Issues)
	require.Equal(t, "The Date Picker", r.Title)
	require.Equal(t, 1, r.Examples)
}

func TestManifestLinks_InlineMarkupInText(t *testing.T) {
	src := []byte("- [**Date** `Picker`](https://asterui.com/docs/date-picker.md): Pick a day\n" +
		"- [Time\nPicker](https://asterui.com/docs/time-picker.md)\n")

	require.Equal(t, []Link{
		{Text: "Date Picker", Destination: "https://asterui.com/docs/date-picker.md"},
		{Text: "Time Picker", Destination: "https://asterui.com/docs/time-picker.md"},
	}, ManifestLinks(src))
}

func TestManifestLinks(t *testing.T) {
	src, err := os.ReadFile(filepath.Join(goldenDir, "llms.txt"))
	require.NoError(t, err)

	links := ManifestLinks(src)

	require.Equal(t, []Link{
		{Text: "Button", Destination: "https://asterui.com/docs/button.md"},
		{Text: "Card", Destination: "https://asterui.com/docs/card.md"},
		{Text: "Modal", Destination: "https://asterui.com/docs/modal.md"},
	}, links)
}

func TestOutput_Golden(t *testing.T) {
	res, err := Output(filepath.Join(goldenDir, "docs"), filepath.Join(goldenDir, "llms.txt"), "https://asterui.com")
	require.NoError(t, err)

	require.True(t, res.OK())
	require.Equal(t, []string{"button", "card", "modal", "sparkline"}, res.Keys())
	require.Empty(t, res.BrokenLinks)
	require.Equal(t, []string{"sparkline"}, res.Unlinked)
}

func TestOutput_BrokenLink(t *testing.T) {
	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	require.NoError(t, os.MkdirAll(docs, 0o755))
	manifest := filepath.Join(dir, "llms.txt")
	require.NoError(t, os.WriteFile(manifest, []byte("# Site\n\n- [Gone](https://asterui.com/docs/gone.md)\n"), 0o600))

	res, err := Output(docs, manifest, "https://asterui.com")
	require.NoError(t, err)

	require.False(t, res.OK())
	require.Equal(t, []Link{{Text: "Gone", Destination: "https://asterui.com/docs/gone.md"}}, res.BrokenLinks)
}

func TestOutput_MissingDir(t *testing.T) {
	_, err := Output(filepath.Join(t.TempDir(), "nope"), "llms.txt", "https://asterui.com")
	require.Error(t, err)
}

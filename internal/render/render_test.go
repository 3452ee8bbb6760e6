package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/llmsdocs/internal/extract"
)

var defaultOpts = Options{Package: "@aster-ui/react", CodeLanguage: "tsx"}

func TestComponent_TitleDescriptionImportOnly(t *testing.T) {
	got := Component(extract.Component{Title: "Button", Description: "A button."}, defaultOpts)

	want := "# Button\n\nA button.\n\n**Import:** `import { Button } from '@aster-ui/react'`\n"
	require.Equal(t, want, got)
	require.NotContains(t, got, "## Examples")
	require.NotContains(t, got, "## API")
}

func TestComponent_NoDescription(t *testing.T) {
	got := Component(extract.Component{Title: "Date Picker"}, defaultOpts)

	require.Equal(t, "# Date Picker\n\n**Import:** `import { DatePicker } from '@aster-ui/react'`\n", got)
}

func TestComponent_Examples(t *testing.T) {
	c := extract.Component{
		Title: "Tag",
		Examples: []extract.Example{
			{Title: "Basic", Description: "Plain tag.", Code: "<Tag>New</Tag>"},
			{Title: "Closable", Code: "<Tag closable />"},
		},
	}

	got := Component(c, defaultOpts)

	require.Contains(t, got, "## Examples\n\n### Basic\n\nPlain tag.\n\n```tsx\n<Tag>New</Tag>\n```\n")
	require.Contains(t, got, "### Closable\n\n```tsx\n<Tag closable />\n```\n")
	require.True(t, strings.HasSuffix(got, "```\n"))
}

func TestComponent_CodeLanguageOption(t *testing.T) {
	c := extract.Component{Title: "X", Examples: []extract.Example{{Title: "E", Code: "x"}}}

	got := Component(c, Options{Package: "pkg", CodeLanguage: "jsx"})

	require.Contains(t, got, "```jsx\nx\n```")
	require.Contains(t, got, "from 'pkg'")
}

func TestComponent_APISection(t *testing.T) {
	c := extract.Component{
		Title: "Button",
		APITables: []extract.APITable{{
			Name: "Button",
			Rows: []extract.APIRow{
				{Property: "type", Description: "Style", Type: "'a' | 'b'", Default: "a"},
				{Property: "onClick", Description: "Handler", Type: "() => void", Default: ""},
			},
		}},
	}

	got := Component(c, defaultOpts)

	want := "## API\n\n" +
		"### Button\n\n" +
		"| Property | Description | Type | Default |\n" +
		"|----------|-------------|------|---------|\n" +
		"| `type` | Style | `'a' \\| 'b'` | `a` |\n" +
		"| `onClick` | Handler | `() => void` | `-` |\n"
	require.True(t, strings.HasSuffix(got, want), got)
}

func TestAPITable_Empty(t *testing.T) {
	require.Empty(t, APITable(extract.APITable{Name: "Nothing"}))
}

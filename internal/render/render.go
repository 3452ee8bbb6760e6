// Package render turns an extracted component into its markdown page.
package render

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/llmsdocs/internal/extract"
)

// Options carries the site values printed into every page.
type Options struct {
	// Package is the import path shown in the Import line.
	Package string
	// CodeLanguage tags fenced example blocks.
	CodeLanguage string
}

// Component renders c. Sections without content are left out; the heading
// and Import line are always present.
func Component(c extract.Component, opts Options) string {
	lines := []string{fmt.Sprintf("# %s\n", c.Title)}
	if c.Description != "" {
		lines = append(lines, c.Description+"\n")
	}

	lines = append(lines, fmt.Sprintf("**Import:** `import { %s } from '%s'`\n",
		strings.ReplaceAll(c.Title, " ", ""), opts.Package))

	if len(c.Examples) > 0 {
		lines = append(lines, "## Examples\n")
		for _, ex := range c.Examples {
			lines = append(lines, fmt.Sprintf("### %s\n", ex.Title))
			if ex.Description != "" {
				lines = append(lines, ex.Description+"\n")
			}
			lines = append(lines, "```"+opts.CodeLanguage, ex.Code, "```\n")
		}
	}

	if len(c.APITables) > 0 {
		lines = append(lines, "## API\n")
		for _, t := range c.APITables {
			lines = append(lines, APITable(t), "")
		}
	}

	return strings.Join(lines, "\n")
}

// APITable renders one table under a level-three heading. Pipes in types are
// escaped so they do not split the column.
func APITable(t extract.APITable) string {
	if len(t.Rows) == 0 {
		return ""
	}

	lines := []string{
		fmt.Sprintf("### %s\n", t.Name),
		"| Property | Description | Type | Default |",
		"|----------|-------------|------|---------|",
	}
	for _, r := range t.Rows {
		def := r.Default
		if def == "" {
			def = "-"
		}
		lines = append(lines, fmt.Sprintf("| `%s` | %s | `%s` | `%s` |",
			r.Property, r.Description, strings.ReplaceAll(r.Type, "|", `\|`), def))
	}
	return strings.Join(lines, "\n")
}

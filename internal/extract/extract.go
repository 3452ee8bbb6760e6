// Package extract pulls titles, descriptions, examples and API tables out of
// Astro component pages.
//
// Extraction never fails. A pattern that does not match yields the zero value
// for that piece and the caller renders whatever was found.
package extract

import (
	"regexp"
	"strings"
)

// UnknownTitle is used when a page carries no title attribute.
const UnknownTitle = "Unknown"

// Example is one code sample shown on a component page.
type Example struct {
	Title       string
	Description string
	Code        string
}

// APIRow describes one property of a component.
type APIRow struct {
	Property    string
	Description string
	Type        string
	Default     string
}

// APITable is a named group of API rows, e.g. "Button" or "Button Group".
type APITable struct {
	Name string
	Rows []APIRow
}

// Component is everything extracted from a single source file.
type Component struct {
	Title       string
	Description string
	Examples    []Example
	APITables   []APITable
}

// Options controls the page conventions the extractor looks for.
type Options struct {
	// LayoutTag is the element carrying title="..." (default "Layout").
	LayoutTag string
	// BrandSuffix is removed from the end of titles as " - Brand".
	BrandSuffix string
}

// Extractor holds the compiled patterns for one set of Options.
type Extractor struct {
	titleRe *regexp.Regexp
	brandRe *regexp.Regexp
}

// New compiles an Extractor for opts.
func New(opts Options) *Extractor {
	tag := opts.LayoutTag
	if tag == "" {
		tag = "Layout"
	}
	e := &Extractor{
		titleRe: regexp.MustCompile(`<` + regexp.QuoteMeta(tag) + `\s+title="([^"]*)"`),
	}
	if opts.BrandSuffix != "" {
		e.brandRe = regexp.MustCompile(`\s*-\s*` + regexp.QuoteMeta(opts.BrandSuffix) + `$`)
	}
	return e
}

// Extract runs every extractor over source. Examples come from the
// examples array when it yields anything, otherwise from *Code variables.
func (e *Extractor) Extract(source string) Component {
	title, description := e.TitleDescription(source)
	fm := Frontmatter(source)

	examples := ExamplesArray(fm)
	if len(examples) == 0 {
		examples = CodeVariables(fm)
	}

	return Component{
		Title:       title,
		Description: description,
		Examples:    examples,
		APITables:   APITables(fm),
	}
}

// TitleDescription finds the layout title and the first description
// attribute anywhere in source.
func (e *Extractor) TitleDescription(source string) (title, description string) {
	title = UnknownTitle
	if m := e.titleRe.FindStringSubmatch(source); m != nil {
		title = m[1]
	}
	if m := descriptionRe.FindStringSubmatch(source); m != nil {
		description = m[1]
	}
	if e.brandRe != nil {
		title = e.brandRe.ReplaceAllLiteralString(title, "")
	}
	return title, description
}

// Frontmatter returns the text between the leading "---" fence pair, or ""
// when the source does not open with one.
func Frontmatter(source string) string {
	m := frontmatterRe.FindStringSubmatch(source)
	if m == nil {
		return ""
	}
	return m[1]
}

// ExamplesArray reads entries of `const examples = [...]`. Each entry must
// carry title, description and a backtick code field in that order.
func ExamplesArray(frontmatter string) []Example {
	m := examplesArrayRe.FindStringSubmatch(frontmatter)
	if m == nil {
		return nil
	}

	var examples []Example
	for _, e := range exampleEntryRe.FindAllStringSubmatch(m[1], -1) {
		examples = append(examples, Example{
			Title:       e[1],
			Description: e[2],
			Code:        strings.TrimSpace(e[3]),
		})
	}
	return examples
}

// CodeVariables reads `const fooBarCode = `...`;` declarations in order.
func CodeVariables(frontmatter string) []Example {
	var examples []Example
	for _, m := range codeVarRe.FindAllStringSubmatch(frontmatter, -1) {
		examples = append(examples, Example{
			Title: codeVarDisplayName(m[1]),
			Code:  strings.TrimSpace(m[2]),
		})
	}
	return examples
}

// APITables reads every `const fooApi = [...]` declaration. Declarations
// without a single well-formed row are left out.
func APITables(frontmatter string) []APITable {
	var tables []APITable
	for _, m := range apiDeclRe.FindAllStringSubmatch(frontmatter, -1) {
		var rows []APIRow
		for _, r := range apiRowRe.FindAllStringSubmatch(m[2], -1) {
			def := trimQuotes(strings.TrimSpace(r[4]))
			if def == "" {
				def = "-"
			}
			rows = append(rows, APIRow{
				Property:    r[1],
				Description: r[2],
				Type:        trimQuotes(strings.TrimSpace(r[3])),
				Default:     def,
			})
		}
		if len(rows) > 0 {
			tables = append(tables, APITable{Name: apiDisplayName(m[1]), Rows: rows})
		}
	}
	return tables
}

func trimQuotes(s string) string {
	return strings.Trim(s, `'"`)
}

package extract

import "regexp"

// Patterns over the frontmatter script. Lazy quantifiers mean a malformed
// examples entry can run on into the following entry; callers accept that.
var (
	descriptionRe = regexp.MustCompile(`description="([^"]*)"`)

	frontmatterRe = regexp.MustCompile(`(?s)\A---\n(.*?)\n---`)

	examplesArrayRe = regexp.MustCompile(`(?s)const examples\s*=\s*\[(.*?)\];`)
	exampleEntryRe  = regexp.MustCompile("(?s)title:\\s*['\"]([^'\"]+)['\"].*?description:\\s*['\"]([^'\"]*)['\"].*?code:\\s*`(.*?)`")

	codeVarRe = regexp.MustCompile("(?s)const\\s+(\\w+Code)\\s*=\\s*`(.*?)`;")

	apiDeclRe = regexp.MustCompile(`(?s)const\s+(\w+Api)\s*=\s*\[(.*?)\];`)
	apiRowRe  = regexp.MustCompile(`\{\s*property:\s*['"](\w+)['"],\s*description:\s*['"]([^'"]*)['"],\s*type:\s*([^,}]+?)(?:,\s*default:\s*([^,}]+?))?\s*,?\s*\}`)

	upperRe      = regexp.MustCompile(`([A-Z])`)
	camelBoundRe = regexp.MustCompile(`([a-z])([A-Z])`)
)

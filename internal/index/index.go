// Package index builds the llms.txt manifest linking every component page.
package index

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/llmsdocs/internal/config"
)

// Generate renders the manifest for components. Categories are emitted in
// table order; keys missing from components are skipped, and components not
// listed in any category do not appear.
func Generate(components *ComponentMap, categories []config.Category, site config.SiteConfig) string {
	lines := header(site)

	for _, cat := range categories {
		lines = append(lines, "### "+cat.Name, "")
		for _, key := range cat.Components {
			if title, ok := components.Title(key); ok {
				lines = append(lines, fmt.Sprintf("- [%s](%s)", title, DocURL(site.BaseURL, key)))
			}
		}
		lines = append(lines, "")
	}

	lines = append(lines, quickStart(site)...)
	lines = append(lines, testingSection(site)...)
	lines = append(lines, links(site)...)

	return strings.Join(lines, "\n")
}

// DocURL is the public location of a component page.
func DocURL(baseURL, key string) string {
	return fmt.Sprintf("%s/docs/%s.md", baseURL, key)
}

func header(site config.SiteConfig) []string {
	return []string{
		"# " + site.Name,
		"",
		"> " + site.Tagline,
		"",
		"## Overview",
		"",
		site.Name + " provides 100+ production-ready React components with:",
		"- Familiar, intuitive API patterns (Form.Item, Table columns, etc.)",
		"- DaisyUI v5 styling and theming",
		"- Full TypeScript support",
		"- Test-friendly attributes (data-testid, data-state, ARIA roles)",
		"- Prop pass-through for custom attributes",
		"",
		"## Installation",
		"",
		"```bash",
		"npm install " + site.Package,
		"```",
		"",
		"## Component Documentation",
		"",
	}
}

func quickStart(site config.SiteConfig) []string {
	return []string{
		"## Quick Start",
		"",
		"```tsx",
		"import { Form, Input, Button, Table } from '" + site.Package + "';",
		"",
		"// Form example",
		"<Form onFinish={handleSubmit}>",
		`  <Form.Item name="email" label="Email" rules={[{ required: true, type: 'email' }]}>`,
		"    <Input />",
		"  </Form.Item>",
		`  <Button type="primary" htmlType="submit">Submit</Button>`,
		"</Form>",
		"",
		"// Table example",
		"<Table",
		"  columns={[",
		"    { title: 'Name', dataIndex: 'name', sorter: true },",
		"    { title: 'Email', dataIndex: 'email' }",
		"  ]}",
		"  dataSource={users}",
		"  pagination={{ pageSize: 10 }}",
		"/>",
		"```",
		"",
	}
}

func testingSection(site config.SiteConfig) []string {
	return []string{
		"## Testing",
		"",
		"All components include:",
		"- `data-testid` attributes",
		"- `data-state` attributes for component state",
		"- Proper ARIA roles and labels",
		"- Predictable DOM structure",
		"- Prop pass-through (`...rest`) for custom attributes",
		"",
		"```tsx",
		"import { render, screen } from '@testing-library/react';",
		"import { Button, Modal } from '" + site.Package + "';",
		"",
		"screen.getByRole('button', { name: 'Submit' });",
		"screen.getByTestId('form-item-email');",
		"expect(screen.getByRole('dialog')).toHaveAttribute('data-state', 'open');",
		"```",
		"",
	}
}

func links(site config.SiteConfig) []string {
	return []string{
		"## Links",
		"",
		"- Website: " + site.BaseURL,
		"- Components: " + site.BaseURL + "/components",
		"- GitHub: " + site.RepoURL,
		"- npm: " + site.RegistryURL,
		"",
	}
}

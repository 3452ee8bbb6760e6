package verify

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Result covers a whole output tree.
type Result struct {
	Pages map[string]Report
	// BrokenLinks point at {base}/docs/{key}.md with no such page on disk.
	BrokenLinks []Link
	// Unlinked pages exist on disk but no category lists them.
	Unlinked []string
}

// OK reports whether every page passed and no manifest link is broken.
func (r *Result) OK() bool {
	if len(r.BrokenLinks) > 0 {
		return false
	}
	for _, p := range r.Pages {
		if !p.OK() {
			return false
		}
	}
	return true
}

// Keys returns the page keys in sorted order.
func (r *Result) Keys() []string {
	keys := make([]string, 0, len(r.Pages))
	for k := range r.Pages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Output checks every page in docsDir and the links in the manifest file.
func Output(docsDir, manifestPath, baseURL string) (*Result, error) {
	entries, err := os.ReadDir(docsDir)
	if err != nil {
		return nil, fmt.Errorf("read docs dir: %w", err)
	}

	res := &Result{Pages: make(map[string]Report)}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		src, err := os.ReadFile(filepath.Join(docsDir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", e.Name(), err)
		}
		res.Pages[strings.TrimSuffix(e.Name(), ".md")] = Page(src)
	}

	manifest, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	prefix := strings.TrimSuffix(baseURL, "/") + "/docs/"
	linked := make(map[string]struct{})
	for _, l := range ManifestLinks(manifest) {
		if !strings.HasPrefix(l.Destination, prefix) {
			continue
		}
		key := strings.TrimSuffix(strings.TrimPrefix(l.Destination, prefix), ".md")
		linked[key] = struct{}{}
		if _, ok := res.Pages[key]; !ok {
			res.BrokenLinks = append(res.BrokenLinks, l)
		}
	}

	for _, k := range res.Keys() {
		if _, ok := linked[k]; !ok {
			res.Unlinked = append(res.Unlinked, k)
		}
	}
	return res, nil
}

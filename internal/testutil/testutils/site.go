// Package testutils holds fixtures and assertions shared by generator tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"
)

// ComponentsDir is the default component directory below a site root.
var ComponentsDir = filepath.Join("src", "pages", "components")

// CopySite copies the fixture site at src into a fresh temp dir and returns
// its path.
func CopySite(t *testing.T, src string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.CopyFS(root, os.DirFS(src)); err != nil {
		t.Fatalf("Failed to copy fixture site %s: %v", src, err)
	}
	return root
}

// WriteComponent writes one component page into the default component
// directory of root, creating it if needed.
func WriteComponent(t *testing.T, root, name, content string) string {
	t.Helper()
	dir := filepath.Join(root, ComponentsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

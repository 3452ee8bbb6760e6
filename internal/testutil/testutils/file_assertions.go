package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// FileAssertions provides utilities for asserting file system state in tests.
type FileAssertions struct {
	t       *testing.T
	baseDir string
}

// NewFileAssertions creates a new file assertions helper.
func NewFileAssertions(t *testing.T, baseDir string) *FileAssertions {
	return &FileAssertions{
		t:       t,
		baseDir: baseDir,
	}
}

// AssertFileExists validates that a file exists.
func (fa *FileAssertions) AssertFileExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		fa.t.Errorf("Expected file to exist: %s", fullPath)
	}
	return fa
}

// AssertFileMissing validates that nothing was written at relativePath.
func (fa *FileAssertions) AssertFileMissing(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)
	if _, err := os.Stat(fullPath); err == nil {
		fa.t.Errorf("Expected no file at %s", fullPath)
	}
	return fa
}

// AssertFileContains validates that a file contains expected content.
func (fa *FileAssertions) AssertFileContains(relativePath, expectedContent string) *FileAssertions {
	fa.t.Helper()
	content, ok := fa.read(relativePath)
	if ok && !strings.Contains(content, expectedContent) {
		fa.t.Errorf("Expected file %s to contain %q\nActual content:\n%s",
			relativePath, expectedContent, content)
	}
	return fa
}

// AssertFileEquals compares a file byte for byte with a golden file.
func (fa *FileAssertions) AssertFileEquals(relativePath, goldenPath string) *FileAssertions {
	fa.t.Helper()
	content, ok := fa.read(relativePath)
	if !ok {
		return fa
	}
	// #nosec G304 - test helper, paths are controlled by test code
	want, err := os.ReadFile(goldenPath)
	if err != nil {
		fa.t.Errorf("Failed to read golden file %s: %v", goldenPath, err)
		return fa
	}
	if content != string(want) {
		fa.t.Errorf("File %s does not match %s\nWant:\n%s\nGot:\n%s", relativePath, goldenPath, want, content)
	}
	return fa
}

// AssertFileCount validates the number of files with extension ext directly
// in relativePath.
func (fa *FileAssertions) AssertFileCount(relativePath, ext string, count int) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		fa.t.Errorf("Failed to read directory %s: %v", fullPath, err)
		return fa
	}

	fileCount := 0
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ext {
			fileCount++
		}
	}

	if fileCount != count {
		fa.t.Errorf("Expected %d %s files in %s, found %d", count, ext, relativePath, fileCount)
	}
	return fa
}

func (fa *FileAssertions) read(relativePath string) (string, bool) {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)

	// #nosec G304 - test helper, paths are controlled by test code
	content, err := os.ReadFile(fullPath)
	if err != nil {
		fa.t.Errorf("Failed to read file %s: %v", fullPath, err)
		return "", false
	}
	return string(content), true
}

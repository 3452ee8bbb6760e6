package pipeline

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Source is one component page found on disk.
type Source struct {
	// Key is the file name without extension, e.g. "button".
	Key  string
	Path string
}

// Discover lists the files in dir ending in ext, minus the excluded names,
// sorted by file name. Subdirectories are not descended into.
func Discover(dir, ext string, exclude []string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var sources []Source
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ext || slices.Contains(exclude, name) {
			continue
		}
		sources = append(sources, Source{
			Key:  strings.TrimSuffix(name, ext),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(sources, func(i, j int) bool {
		return filepath.Base(sources[i].Path) < filepath.Base(sources[j].Path)
	})
	return sources, nil
}

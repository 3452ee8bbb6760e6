package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// loadEnvFiles loads the first of .env/.env.local found in dir. Existing
// process environment variables are not overwritten.
func loadEnvFiles(dir string) {
	for _, name := range []string{".env", ".env.local"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("Failed to load environment file", "path", path, "error", err)
			continue
		}
		slog.Debug("Loaded environment variables", "path", path)
		return
	}
}

// expandEnv replaces ${VAR} references inside scalar values and re-encodes
// the document, so expanded values are quoted as YAML requires.
func expandEnv(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return data, nil
	}
	expandEnvNode(&doc)
	return yaml.Marshal(&doc)
}

// expandEnvNode rewrites scalars in place. An expanded plain scalar drops its
// resolved tag so "${MIN}" can still fill an int field.
func expandEnvNode(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode {
		if v := os.ExpandEnv(n.Value); v != n.Value {
			n.Value = v
			if n.Style&yaml.TaggedStyle == 0 {
				n.Tag = ""
			}
		}
		return
	}
	for _, c := range n.Content {
		expandEnvNode(c)
	}
}

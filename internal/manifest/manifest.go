// Package manifest records what a generator run read and wrote.
//
// The report is optional JSON written next to the outputs when --report is
// set. Each page carries an mdfp fingerprint so CI can tell which pages
// changed between two runs without diffing the files.
package manifest

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/inful/mdfp"
)

// BuildManifest represents a complete record of a run's inputs and outputs.
type BuildManifest struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Inputs     Inputs    `json:"inputs"`
	InputsHash string    `json:"inputs_hash"` // Hash() when the run finished
	Outputs    Outputs   `json:"outputs"`
	Status     string    `json:"status"`
	Duration   int64     `json:"duration_ms"`
}

// Inputs captures all inputs to the run.
type Inputs struct {
	SourceDir  string        `json:"source_dir"`
	Sources    []SourceInput `json:"sources"`
	ConfigHash string        `json:"config_hash"`
}

// SourceInput is one component source that was read.
type SourceInput struct {
	Key  string `json:"key"`
	Path string `json:"path"`
	Hash string `json:"hash"`
}

// Outputs captures what the run produced.
type Outputs struct {
	Docs                []DocOutput `json:"docs"`
	Skipped             []Skipped   `json:"skipped,omitempty"`
	Manifest            string      `json:"manifest"`
	ManifestFingerprint string      `json:"manifest_fingerprint"`
}

// DocOutput is one written component page.
type DocOutput struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Path        string `json:"path"`
	Length      int    `json:"length"`
	Fingerprint string `json:"fingerprint"`
}

// Skipped is a source whose rendered page was too short to write.
type Skipped struct {
	Key    string `json:"key"`
	Length int    `json:"length"`
}

// New starts a manifest stamped with a fresh run ID.
func New(now time.Time) *BuildManifest {
	return &BuildManifest{
		ID:        uuid.NewString(),
		Timestamp: now.UTC(),
		Status:    "running",
	}
}

// Fingerprint returns the mdfp fingerprint of a generated markdown body.
// Generated pages carry no frontmatter.
func Fingerprint(body string) string {
	return mdfp.CalculateFingerprintFromParts("", body)
}

// HashSource returns the hex sha256 of a component source.
func HashSource(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

// HashConfig returns a stable hash of any JSON-serializable configuration value.
func HashConfig(cfg any) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config for hash: %w", err)
	}
	return fmt.Sprintf("%x", sha256.Sum256(data)), nil
}

// AddDoc records a written page.
func (m *BuildManifest) AddDoc(key, title, path, body string) {
	m.Outputs.Docs = append(m.Outputs.Docs, DocOutput{
		Key:         key,
		Title:       title,
		Path:        path,
		Length:      utf8.RuneCountInString(body),
		Fingerprint: Fingerprint(body),
	})
}

// Finish stamps the final status, duration and inputs hash.
func (m *BuildManifest) Finish(status string, d time.Duration) {
	m.Status = status
	m.Duration = d.Milliseconds()
	if h, err := m.Hash(); err == nil {
		m.InputsHash = h
	}
}

// ToJSON serializes the manifest to JSON.
func (m *BuildManifest) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return data, nil
}

// FromJSON deserializes a manifest from JSON.
func FromJSON(data []byte) (*BuildManifest, error) {
	var m BuildManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return &m, nil
}

// Hash computes a deterministic hash of the manifest's inputs. Two runs over
// identical sources and configuration hash the same.
func (m *BuildManifest) Hash() (string, error) {
	hashInput := struct {
		Sources    []SourceInput `json:"sources"`
		ConfigHash string        `json:"config_hash"`
	}{
		Sources:    m.Inputs.Sources,
		ConfigHash: m.Inputs.ConfigHash,
	}

	data, err := json.Marshal(hashInput)
	if err != nil {
		return "", fmt.Errorf("marshal for hash: %w", err)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash), nil
}

// Changed lists keys whose fingerprint differs from prev, plus keys new in m.
func (m *BuildManifest) Changed(prev *BuildManifest) []string {
	old := make(map[string]string)
	if prev != nil {
		for _, d := range prev.Outputs.Docs {
			old[d.Key] = d.Fingerprint
		}
	}
	var changed []string
	for _, d := range m.Outputs.Docs {
		if fp, ok := old[d.Key]; !ok || fp != d.Fingerprint {
			changed = append(changed, d.Key)
		}
	}
	return changed
}

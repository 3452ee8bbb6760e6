package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyComponent  = "component"
	KeyTitle      = "title"
	KeyPath       = "path"
	KeyStage      = "stage"
	KeyCount      = "count"
	KeyLength     = "length"
	KeyDurationMS = "duration_ms"
	KeyRunID      = "run_id"
	KeyWorkers    = "workers"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Component(key string) slog.Attr  { return slog.String(KeyComponent, key) }
func Title(t string) slog.Attr        { return slog.String(KeyTitle, t) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Length(n int) slog.Attr          { return slog.Int(KeyLength, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Workers(n int) slog.Attr         { return slog.Int(KeyWorkers, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

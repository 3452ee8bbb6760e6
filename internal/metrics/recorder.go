package metrics

import "time"

// ResultLabel enumerates per-component result categories for counters.
type ResultLabel string

const (
	ResultWritten ResultLabel = "written"
	ResultSkipped ResultLabel = "skipped"
)

// BuildOutcomeLabel is the final status of a generator run.
type BuildOutcomeLabel string

const (
	BuildSuccess  BuildOutcomeLabel = "success"
	BuildFailed   BuildOutcomeLabel = "failed"
	BuildCanceled BuildOutcomeLabel = "canceled"
)

// Recorder defines observability hooks for a generator run.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncComponentResult(result ResultLabel)
	IncBuildOutcome(outcome BuildOutcomeLabel)
	SetComponentsIndexed(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncComponentResult(ResultLabel)             {}
func (NoopRecorder) IncBuildOutcome(BuildOutcomeLabel)          {}
func (NoopRecorder) SetComponentsIndexed(int)                   {}

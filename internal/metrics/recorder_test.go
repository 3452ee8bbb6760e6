package metrics

import (
	"sync"
	"time"
)

// testRecorder counts calls made through the Recorder interface.
type testRecorder struct {
	mu             sync.Mutex
	stageDurations map[string]int
	results        map[ResultLabel]int
	buildDurations int
	buildOutcomes  map[BuildOutcomeLabel]int
	indexed        int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{
		stageDurations: map[string]int{},
		results:        map[ResultLabel]int{},
		buildOutcomes:  map[BuildOutcomeLabel]int{},
	}
}

func (t *testRecorder) ObserveStageDuration(stage string, _ time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stageDurations[stage]++
}

func (t *testRecorder) ObserveBuildDuration(_ time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buildDurations++
}

func (t *testRecorder) IncComponentResult(result ResultLabel) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results[result]++
}

func (t *testRecorder) IncBuildOutcome(outcome BuildOutcomeLabel) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buildOutcomes[outcome]++
}

func (t *testRecorder) SetComponentsIndexed(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.indexed = n
}

var _ Recorder = (*testRecorder)(nil)
var _ Recorder = NoopRecorder{}
var _ Recorder = (*PrometheusRecorder)(nil)

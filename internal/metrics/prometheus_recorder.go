package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once              sync.Once
	reg               *prom.Registry
	stageDuration     *prom.HistogramVec
	buildDuration     prom.Histogram
	componentResults  *prom.CounterVec
	buildOutcome      *prom.CounterVec
	componentsIndexed prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.once.Do(func() {
		pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "llmsdocs",
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual pipeline stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"})
		pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "llmsdocs",
			Name:      "build_duration_seconds",
			Help:      "Total generator run duration",
			Buckets:   prom.DefBuckets,
		})
		pr.componentResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "llmsdocs",
			Name:      "component_results_total",
			Help:      "Component sources by result (written or skipped)",
		}, []string{"result"})
		pr.buildOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "llmsdocs",
			Name:      "build_outcomes_total",
			Help:      "Generator runs by final status",
		}, []string{"outcome"})
		pr.componentsIndexed = prom.NewGauge(prom.GaugeOpts{
			Namespace: "llmsdocs",
			Name:      "components_indexed",
			Help:      "Components recorded in the last manifest",
		})
		reg.MustRegister(pr.stageDuration, pr.buildDuration, pr.componentResults, pr.buildOutcome, pr.componentsIndexed)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil || p.buildDuration == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncComponentResult(result ResultLabel) {
	if p == nil || p.componentResults == nil {
		return
	}
	p.componentResults.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome BuildOutcomeLabel) {
	if p == nil || p.buildOutcome == nil {
		return
	}
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetComponentsIndexed(n int) {
	if p == nil || p.componentsIndexed == nil {
		return
	}
	p.componentsIndexed.Set(float64(n))
}

// WriteTextfile writes the registry to path in the Prometheus text format.
// The file is replaced atomically.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}

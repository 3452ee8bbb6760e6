// Package metrics records generator metrics behind a small Recorder interface.
//
// Components default to NoopRecorder. The CLI swaps in a PrometheusRecorder
// when --metrics-file is set and writes the registry in the text exposition
// format after the run, ready for a node_exporter textfile collector on the
// CI host.
package metrics

// Package metrics exports run statistics in the Prometheus text format so a
// node-exporter textfile collector can pick them up after a docs build.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/docpost"
)

const namespace = "docpost"

// Recorder holds the gauges of the last run on a private registry.
type Recorder struct {
	registry        *prometheus.Registry
	filesProcessed  prometheus.Gauge
	headingFiles    prometheus.Gauge
	headingsDemoted prometheus.Gauge
	pathsRemoved    prometheus.Gauge
	duration        prometheus.Gauge
	lastRun         prometheus.Gauge
	lastSuccess     prometheus.Gauge
}

// NewRecorder creates a Recorder with all gauges registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		filesProcessed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "files_processed",
			Help:      "Markdown files trimmed by the last run.",
		}),
		headingFiles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "heading_files",
			Help:      "Markdown files that went through the heading pass in the last run.",
		}),
		headingsDemoted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "headings_demoted",
			Help:      "Heading lines demoted by the last run.",
		}),
		pathsRemoved: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "paths_removed",
			Help:      "Cleanup targets removed by the last run.",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last run.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run finished.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_success",
			Help:      "1 if the last run finished without error.",
		}),
	}

	r.registry.MustRegister(
		r.filesProcessed,
		r.headingFiles,
		r.headingsDemoted,
		r.pathsRemoved,
		r.duration,
		r.lastRun,
		r.lastSuccess,
	)
	return r
}

// Observe records report. runErr is the error the run ended with, if any.
func (r *Recorder) Observe(report *docpost.Report, runErr error) {
	if report != nil {
		r.filesProcessed.Set(float64(len(report.Files)))
		r.headingFiles.Set(float64(report.HeadingFiles()))
		r.headingsDemoted.Set(float64(report.HeadingsDemoted()))
		r.pathsRemoved.Set(float64(len(report.Removed)))
		r.duration.Set(report.Duration.Seconds())
	}
	r.lastRun.SetToCurrentTime()
	if runErr == nil {
		r.lastSuccess.Set(1)
	} else {
		r.lastSuccess.Set(0)
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the current values to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

/*
Copyright The Modelkeep Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package metrics exposes Prometheus collectors for artifact downloads and the catalog.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"modelkeep.sh/modelkeep/pkg/artifact"
)

const namespace = "modelkeep"

// Result labels.
const (
	ResultSuccess       = "success"
	ResultInvalidInput  = "invalid_input"
	ResultNameCollision = "name_collision"
	ResultFailed        = "failed"
	ResultNotFound      = "not_found"
)

// Metrics holds the collectors for one process. A nil *Metrics discards
// every observation.
type Metrics struct {
	registry *prometheus.Registry

	downloads       *prometheus.CounterVec
	downloadedBytes prometheus.Counter
	removals        *prometheus.CounterVec
	artifacts       prometheus.Gauge
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		downloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "downloads_total",
			Help:      "Artifact downloads by result.",
		}, []string{"result"}),
		downloadedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "downloaded_bytes_total",
			Help:      "Bytes of artifacts successfully downloaded.",
		}),
		removals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "removals_total",
			Help:      "Artifact removals by result.",
		}, []string{"result"}),
		artifacts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_artifacts",
			Help:      "Artifacts currently held in the catalog.",
		}),
	}
	m.registry.MustRegister(m.downloads, m.downloadedBytes, m.removals, m.artifacts)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveDownload records the outcome of a download.
func (m *Metrics) ObserveDownload(size int64, err error) {
	if m == nil {
		return
	}
	m.downloads.WithLabelValues(downloadResult(err)).Inc()
	if err == nil {
		m.downloadedBytes.Add(float64(size))
	}
}

// ObserveRemoval records the outcome of a removal.
func (m *Metrics) ObserveRemoval(deleted bool, err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	switch {
	case err != nil:
		result = ResultFailed
	case !deleted:
		result = ResultNotFound
	}
	m.removals.WithLabelValues(result).Inc()
}

// SetArtifacts records the current catalog size.
func (m *Metrics) SetArtifacts(n int) {
	if m == nil {
		return
	}
	m.artifacts.Set(float64(n))
}

// WriteTextfile writes the current values in the text exposition format, for
// use with a node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return errors.Wrapf(prometheus.WriteToTextfile(path, m.registry), "writing metrics to %s", path)
}

func downloadResult(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, artifact.ErrInvalidInput):
		return ResultInvalidInput
	case errors.Is(err, artifact.ErrNameCollision):
		return ResultNameCollision
	default:
		return ResultFailed
	}
}

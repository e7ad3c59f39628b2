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

package action

import (
	"log/slog"

	"modelkeep.sh/modelkeep/internal/logging"
	"modelkeep.sh/modelkeep/pkg/catalog"
	"modelkeep.sh/modelkeep/pkg/cli"
	"modelkeep.sh/modelkeep/pkg/downloader"
	"modelkeep.sh/modelkeep/pkg/getter"
	"modelkeep.sh/modelkeep/pkg/metrics"
)

// Configuration injects the dependencies that all actions share.
type Configuration struct {
	logging.LogHolder

	// Root is the artifact root. It does not change for the life of the
	// configuration.
	Root string

	// Store is the in-memory catalog of artifacts under Root.
	Store *catalog.Store

	// Downloader fetches new artifacts into Root.
	Downloader *downloader.Downloader

	// Metrics records action outcomes. It may be nil.
	Metrics *metrics.Metrics
}

// NewConfiguration builds a Configuration for the artifact root and transport
// options described by settings. The catalog starts empty; call Load to
// populate it.
func NewConfiguration(settings *cli.EnvSettings) *Configuration {
	cfg := new(Configuration)
	cfg.Init(settings)
	return cfg
}

// Init (re)initializes the configuration for settings, replacing the
// catalog, downloader and metrics.
func (cfg *Configuration) Init(settings *cli.EnvSettings) {
	m := metrics.New()

	d := downloader.NewDownloader(settings.ModelsDir, getter.All(settings.GetterOptions()...))
	d.Metrics = m
	d.Log = cfg.Logger()

	cfg.Root = settings.ModelsDir
	cfg.Store = catalog.NewStore()
	cfg.Downloader = d
	cfg.Metrics = m
}

// SetLogger replaces the logger used by the configuration and its downloader.
func (cfg *Configuration) SetLogger(h slog.Handler) {
	cfg.LogHolder.SetLogger(h)
	if cfg.Downloader != nil {
		cfg.Downloader.Log = cfg.Logger()
	}
}

// Load scans the artifact root and replaces the catalog with what it finds.
//
// A scan failure is logged and the catalog keeps whatever records the scan
// could still build, so the application starts with an empty catalog at
// worst. The error is returned for callers that want to surface it.
func (cfg *Configuration) Load() error {
	records, err := catalog.Scan(cfg.Root)
	if err != nil {
		cfg.Logger().Warn("unable to scan artifact root", "root", cfg.Root, "error", err)
	}
	cfg.Store.ReplaceAll(records)
	cfg.Logger().Debug("catalog loaded", "root", cfg.Root, "artifacts", len(records))
	cfg.updateGauge()
	return err
}

func (cfg *Configuration) updateGauge() {
	cfg.Metrics.SetArtifacts(cfg.Store.Len())
}

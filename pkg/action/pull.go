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
	"context"

	"modelkeep.sh/modelkeep/pkg/artifact"
	"modelkeep.sh/modelkeep/pkg/getter"
)

// SourceOptions configures how the source server is reached.
type SourceOptions struct {
	CaFile                string // --ca-file
	CertFile              string // --cert-file
	KeyFile               string // --key-file
	InsecureSkipTLSverify bool   // --insecure-skip-tls-verify
	Username              string // --username
	Password              string // --password
	PassCredentialsAll    bool   // --pass-credentials
}

func (o *SourceOptions) getterOptions() []getter.Option {
	return []getter.Option{
		getter.WithTLSClientConfig(o.CertFile, o.KeyFile, o.CaFile),
		getter.WithInsecureSkipVerifyTLS(o.InsecureSkipTLSverify),
		getter.WithBasicAuth(o.Username, o.Password),
		getter.WithPassCredentialsAll(o.PassCredentialsAll),
	}
}

// Pull is the action for downloading an artifact into the catalog.
//
// It provides the implementation of 'modelkeep pull'.
type Pull struct {
	SourceOptions

	cfg *Configuration

	// Name is the file name to store the artifact under. Empty uses the
	// file name from the URL.
	Name string
	// Progress, when set, receives the completed fraction of the transfer.
	Progress artifact.ProgressFunc
}

// NewPull creates a new Pull object with the given configuration.
func NewPull(cfg *Configuration) *Pull {
	return &Pull{cfg: cfg}
}

// Run downloads url and adds the resulting record to the catalog.
//
// Nothing is added to the catalog when the download fails, and the artifact
// root is left as it was.
func (p *Pull) Run(ctx context.Context, url string) (*artifact.Record, error) {
	rec, err := p.cfg.Downloader.Download(ctx, url, p.Name, p.Progress, p.getterOptions()...)
	if err != nil {
		return nil, err
	}
	p.cfg.Store.Append(rec)
	p.cfg.updateGauge()
	return rec, nil
}

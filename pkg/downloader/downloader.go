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

package downloader

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"modelkeep.sh/modelkeep/pkg/artifact"
	"modelkeep.sh/modelkeep/pkg/getter"
	"modelkeep.sh/modelkeep/pkg/metrics"
)

// acceptHeader is sent with every artifact request.
const acceptHeader = "application/octet-stream"

// Downloader handles downloading an artifact into the artifact root.
type Downloader struct {
	// Getters are the transports available, by URL scheme.
	Getters getter.Providers
	// Options are passed to the getter on every request.
	Options []getter.Option
	// Log receives debug and info messages. Nil discards them.
	Log *slog.Logger
	// Metrics records download outcomes. Nil discards them.
	Metrics *metrics.Metrics

	writer *AtomicWriter
}

// NewDownloader creates a Downloader writing into root.
func NewDownloader(root string, getters getter.Providers) *Downloader {
	return &Downloader{
		Getters: getters,
		writer:  NewAtomicWriter(root),
	}
}

// Root returns the directory artifacts are written to.
func (d *Downloader) Root() string {
	return d.writer.Root
}

// Download fetches the artifact at rawURL and stores it as requestedName.
//
// requestedName is given the artifact extension if it lacks it; when empty,
// the file name from the URL is used. The returned record describes the
// promoted file; adding it to a catalog is up to the caller.
//
// options are applied after d.Options for this download only.
//
// Errors match artifact.ErrInvalidInput, artifact.ErrNameCollision or
// artifact.ErrDownloadFailed.
func (d *Downloader) Download(ctx context.Context, rawURL, requestedName string, progress artifact.ProgressFunc, options ...getter.Option) (rec *artifact.Record, err error) {
	log := d.log()
	defer func() {
		var size int64
		if rec != nil {
			size = rec.SizeBytes
		}
		d.Metrics.ObserveDownload(size, err)
	}()

	u, name, err := d.resolve(rawURL, requestedName)
	if err != nil {
		return nil, err
	}
	g, err := d.Getters.ByScheme(u.Scheme)
	if err != nil {
		return nil, &artifact.DownloadError{Name: name, Err: err}
	}

	href := u.String()
	opts := []getter.Option{getter.WithURL(href), getter.WithAcceptHeader(acceptHeader)}
	opts = append(opts, d.Options...)
	opts = append(opts, options...)
	open := func(ctx context.Context) (*getter.Stream, error) {
		return g.Get(ctx, href, opts...)
	}

	log.Debug("downloading artifact", "url", href, "name", name)
	rec, err = d.writer.WriteArtifact(ctx, open, name, progress)
	if err != nil {
		log.Debug("download failed", "url", href, "name", name, "error", err)
		return nil, err
	}
	log.Info("downloaded artifact", "name", rec.Name, "path", rec.Path, "size", rec.SizeBytes)
	return rec, nil
}

// resolve validates the request and returns the source URL and the normalized
// destination file name.
func (d *Downloader) resolve(rawURL, requestedName string) (*url.URL, string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, "", artifact.InvalidInputf("artifact URL is empty")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, "", artifact.InvalidInputf("invalid artifact URL %q: %s", rawURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, "", artifact.InvalidInputf("artifact URL %q must be absolute", rawURL)
	}
	if !d.Getters.Provides(u.Scheme) {
		return nil, "", artifact.InvalidInputf("artifact URL scheme %q not supported", u.Scheme)
	}
	remote := path.Base(u.Path)
	if !artifact.HasExt(remote) {
		return nil, "", artifact.InvalidInputf("%q does not name a %s artifact", rawURL, artifact.Ext)
	}

	name := strings.TrimSpace(requestedName)
	if name == "" {
		name = remote
	}
	name = artifact.NormalizeName(name)
	if err := artifact.ValidateName(name); err != nil {
		return nil, "", err
	}
	return u, name, nil
}

func (d *Downloader) log() *slog.Logger {
	if d.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Log
}
